package pretty

import (
	"fmt"
	"strings"

	"peptidechop/internal/engine"
)

// Options control the ASCII rendering.
type Options struct {
	// Widest indent+peptide span before the staircase restarts at the left
	// margin. If <=0, use default (60).
	MaxWidth int

	// Drawn once per residue trimmed from a peptide end.
	DotGlyph string
}

// DefaultOptions keeps the current look & feel.
var DefaultOptions = Options{
	MaxWidth: 60,
	DotGlyph: ".",
}

const linePrefix = "# "

func (o Options) maxWidth() int {
	if o.MaxWidth <= 0 {
		return DefaultOptions.MaxWidth
	}
	return o.MaxWidth
}

func (o Options) dot() string {
	if o.DotGlyph == "" {
		return DefaultOptions.DotGlyph
	}
	return o.DotGlyph
}

// RenderRecordWithOptions draws the peptides of one record as a staircase:
// each peptide is indented by its offset from the first peptide of its row
// group, so overlaps line up column by column.
//
//	# GFP (2 peptides)
//	#    1      0-7      KLMNPQR.
//	#    2      8-16             TVWYGSDE
//	#
func RenderRecordWithOptions(frags []engine.Fragment, opt Options) string {
	if len(frags) == 0 {
		return ""
	}
	width, dot := opt.maxWidth(), opt.dot()

	var b strings.Builder
	name := frags[0].SequenceID
	if d := frags[0].Description; d != "" {
		name += " " + d
	}
	fmt.Fprintf(&b, "%s%s (%d peptides)\n", linePrefix, name, len(frags))

	origin := frags[0].Start
	for _, f := range frags {
		span := f.Position - f.Start
		if f.Start < origin || f.Start-origin+span > width {
			origin = f.Start
		}
		fmt.Fprintf(&b, "%s%4d %6d-%-6d %s%s%s\n",
			linePrefix, f.Index, f.Start, f.End(),
			strings.Repeat(" ", f.Start-origin), f.Seq, strings.Repeat(dot, f.Trimmed),
		)
	}

	// spacer
	b.WriteString("#\n")
	return b.String()
}

// RenderRecord uses DefaultOptions.
func RenderRecord(frags []engine.Fragment) string {
	return RenderRecordWithOptions(frags, DefaultOptions)
}
