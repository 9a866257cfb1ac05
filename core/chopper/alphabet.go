package chopper

// Alphabet lists the accepted residues: the 20 standard amino acids plus the
// ambiguity codes X, B, Z and J.
const Alphabet = "ACDEFGHIKLMNPQRSTVWYXBZJ"

var residues = byteSet(Alphabet)

func byteSet(chars string) (set [256]bool) {
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = true
	}
	return set
}

// ContainsResidue reports whether at least one byte of s belongs to Alphabet.
func ContainsResidue(s string) bool {
	for i := 0; i < len(s); i++ {
		if residues[s[i]] {
			return true
		}
	}
	return false
}

// FirstInvalid returns the offset and value of the first byte of s outside
// Alphabet. ok is false when every byte is a residue.
func FirstInvalid(s string) (i int, b byte, ok bool) {
	for i = 0; i < len(s); i++ {
		if !residues[s[i]] {
			return i, s[i], true
		}
	}
	return -1, 0, false
}
