package chopper

import "iter"

// Iterator is a single pull-based traversal over a Chopper's peptides.
// It is not safe for concurrent use; create one per goroutine.
type Iterator struct {
	c      *Chopper
	cursor int
	last   Peptide
}

// Iterator starts a new traversal at offset 0.
func (c *Chopper) Iterator() *Iterator {
	return &Iterator{c: c}
}

// NextPeptide advances the traversal. After the last peptide it returns the
// zero Peptide and false, and keeps doing so.
func (it *Iterator) NextPeptide() (Peptide, bool) {
	p, ok := it.c.nextPeptide(it.cursor)
	if !ok {
		return Peptide{}, false
	}
	it.cursor = p.Position
	it.last = p
	return p, true
}

// Next returns the next trimmed peptide, or "" and false when exhausted.
func (it *Iterator) Next() (string, bool) {
	p, ok := it.NextPeptide()
	return p.Seq, ok
}

// Cursor is how much of the sequence has been tiled so far.
func (it *Iterator) Cursor() int { return it.cursor }

// Last returns the most recently produced peptide. It is not cleared by
// exhaustion.
func (it *Iterator) Last() Peptide { return it.last }

// Done reports whether the traversal is exhausted.
func (it *Iterator) Done() bool { return it.cursor >= it.c.Len() }

// Reset rewinds the traversal to offset 0.
func (it *Iterator) Reset() {
	it.cursor = 0
	it.last = Peptide{}
}

// All yields the trimmed peptides in order.
func (c *Chopper) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		it := c.Iterator()
		for s, ok := it.Next(); ok; s, ok = it.Next() {
			if !yield(s) {
				return
			}
		}
	}
}

// Peptides yields each peptide with its 0-based index.
func (c *Chopper) Peptides() iter.Seq2[int, Peptide] {
	return func(yield func(int, Peptide) bool) {
		it := c.Iterator()
		for i := 0; ; i++ {
			p, ok := it.NextPeptide()
			if !ok || !yield(i, p) {
				return
			}
		}
	}
}

// Strings collects a full traversal.
func (c *Chopper) Strings() []string {
	var out []string
	for s := range c.All() {
		out = append(out, s)
	}
	return out
}

// Chop is New followed by Strings.
func Chop(seq string, cfg Config) ([]string, error) {
	c, err := New(seq, cfg)
	if err != nil {
		return nil, err
	}
	return c.Strings(), nil
}
