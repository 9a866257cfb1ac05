package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"peptidechop/core/chopper"
	"peptidechop/internal/engine"
	"peptidechop/pkg/api"
)

func sample() []engine.Fragment {
	return []engine.Fragment{
		{SequenceID: "GFP", SourceFile: "gfp.fa", Index: 1, Peptide: chopper.Peptide{Start: 0, Position: 8, Seq: "KLMNPQR", Trimmed: 1}},
		{SequenceID: "GFP", SourceFile: "gfp.fa", Index: 2, Peptide: chopper.Peptide{Start: 8, Position: 16, Seq: "TVWYGSDE"}},
	}
}

func render(t *testing.T, format string, opt Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, format, opt, sample()))
	return buf.String()
}

func TestFASTA(t *testing.T) {
	assert.Equal(t, ">GFP:peptide_1\nKLMNPQR\n>GFP:peptide_2\nTVWYGSDE\n", render(t, "fasta", Options{}))
}

func TestText(t *testing.T) {
	assert.Equal(t, "KLMNPQR\nTVWYGSDE\n", render(t, "text", Options{}))
}

func TestTSV(t *testing.T) {
	got := render(t, "tsv", Options{Header: true, SourceFile: true})
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, tsvHeader+"\tsource_file", lines[0])
	assert.Equal(t, "GFP\t1\t0\t7\t7\t1\tKLMNPQR\tgfp.fa", lines[1])
	assert.Equal(t, "GFP\t2\t8\t16\t8\t0\tTVWYGSDE\tgfp.fa", lines[2])
}

func TestJSONL(t *testing.T) {
	got := render(t, "jsonl", Options{})
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 2)
	var p api.PeptideV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &p))
	assert.Equal(t, api.PeptideV1{SequenceID: "GFP", Index: 1, Start: 0, End: 7, Length: 7, Trimmed: 1, Peptide: "KLMNPQR"}, p)
	assert.NotContains(t, lines[1], "source_file")
}

func TestJSON(t *testing.T) {
	var got []api.PeptideV1
	require.NoError(t, json.Unmarshal([]byte(render(t, "json", Options{SourceFile: true})), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "gfp.fa", got[1].SourceFile)
}

func TestJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, "json", Options{}, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAML(t *testing.T) {
	var got []api.PeptideV1
	require.NoError(t, yaml.Unmarshal([]byte(render(t, "yaml", Options{})), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "TVWYGSDE", got[1].Peptide)
	assert.Equal(t, 16, got[1].End)
}

func TestUnknownFormatDrainsInput(t *testing.T) {
	in, done := Start(&bytes.Buffer{}, "xml", Options{}, 1)
	for _, f := range sample() {
		in <- f
	}
	close(in)
	err := <-done
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"fasta", "json", "jsonl", "pretty", "text", "tsv", "yaml"}, Formats())
	assert.True(t, Known("fasta"))
	assert.False(t, Known("xml"))
	assert.Equal(t, "fasta", Ext("fasta"))
	assert.Equal(t, "txt", Ext("text"))
	assert.Equal(t, "txt", Ext("nope"))
}

func TestPrettyGroupsRecords(t *testing.T) {
	frags := append(sample(), sample()...)
	frags[2].SequenceID, frags[3].SequenceID = "YFP", "YFP"
	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, "pretty", Options{}, frags))
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "# GFP (2 peptides)\n"))
	assert.Equal(t, 1, strings.Count(out, "# YFP (2 peptides)\n"))
	assert.Contains(t, out, "KLMNPQR.\n")
	assert.Equal(t, "txt", Ext("pretty"))
}
