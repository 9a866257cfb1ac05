package chopper

// endTrimmer removes a bounded run of disallowed residues from the end of a
// peptide. The run is always taken whole: if the trailing run of disallowed
// residues is longer than max, nothing is removed.
type endTrimmer struct {
	set [256]bool
	max int
}

func newEndTrimmer(disallowed string, max int) endTrimmer {
	if disallowed == "" {
		max = 0
	}
	return endTrimmer{set: byteSet(disallowed), max: max}
}

// Trim returns s without its trailing disallowed run and the number of
// residues removed.
func (t endTrimmer) Trim(s string) (string, int) {
	if t.max <= 0 {
		return s, 0
	}
	i := len(s)
	for i > 0 && t.set[s[i-1]] {
		i--
		if len(s)-i > t.max {
			return s, 0
		}
	}
	return s[:i], len(s) - i
}
