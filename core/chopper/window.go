package chopper

// Peptide is one step of a traversal.
type Peptide struct {
	// Start is the offset of the untrimmed window.
	Start int
	// Position is the untrimmed window end; the cursor moves here. Trimming
	// never changes it, so the tiling schedule is independent of trimming.
	Position int
	// Seq is the peptide after end trimming.
	Seq string
	// Trimmed is the number of residues removed from the end.
	Trimmed int
}

// End returns the offset just past the trimmed peptide.
func (p Peptide) End() int { return p.Position - p.Trimmed }

// nextPeptide computes the window following cursor pos. ok is false once pos
// has reached the end of the sequence.
func (c *Chopper) nextPeptide(pos int) (p Peptide, ok bool) {
	n := len(c.seq)
	if pos >= n {
		return Peptide{Start: n, Position: n}, false
	}
	pl := c.cfg.PeptideLength
	start := max(pos-c.cfg.Overlap, 0)
	end := min(start+pl, n)
	if end-start < pl {
		// Short tail: slide left so the last peptide is still full length.
		start = end - pl
		if start < 0 {
			panic(&WindowUnderflowError{Position: pos, Start: start, End: end, PeptideLength: pl})
		}
	}
	seq, cut := c.trim.Trim(c.seq[start:end])
	return Peptide{Start: start, Position: end, Seq: seq, Trimmed: cut}, true
}
