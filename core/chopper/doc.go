// Package chopper cuts a protein sequence into overlapping fixed-length
// peptides and trims undesirable residues from each peptide's C-terminal end.
//
// A Chopper is immutable once built. Every call to Iterator, All or Peptides
// starts an independent traversal at offset 0, so a single Chopper may be
// traversed any number of times, including from several goroutines at once.
//
// The package is domain-only: it never reads files or writes output.
package chopper
