package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peptidechop/core/chopper"
)

func TestDefaults(t *testing.T) {
	s, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Equal(t, chopper.DefaultConfig(), s.Chop())
}

func TestLoadYAMLFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "chop.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("peptide-length: 15\noverlap: 5\ndisallowed-ends: gs\n"), 0o644))

	s, err := Load(NewViper(), fn)
	require.NoError(t, err)
	assert.Equal(t, 15, s.PeptideLength)
	assert.Equal(t, 5, s.Overlap)
	assert.Equal(t, "GS", s.Chop().DisallowedEnds)
	assert.Equal(t, "fasta", s.Output)
}

func TestLoadTOMLFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "chop.toml")
	require.NoError(t, os.WriteFile(fn, []byte("peptide-length = 12\noverlap = 6\noutput = \"tsv\"\n"), 0o644))

	s, err := Load(NewViper(), fn)
	require.NoError(t, err)
	assert.Equal(t, 12, s.PeptideLength)
	assert.Equal(t, "tsv", s.Output)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PEPTIDECHOP_PEPTIDE_LENGTH", "20")
	t.Setenv("PEPTIDECHOP_SKIP_INVALID", "true")
	s, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, 20, s.PeptideLength)
	assert.True(t, s.SkipInvalid)
}

func TestValidate(t *testing.T) {
	s := Defaults()
	s.Overlap = s.PeptideLength
	assert.ErrorIs(t, s.Validate(), chopper.ErrInvalidParameter)

	s = Defaults()
	s.Threads = -1
	assert.Error(t, s.Validate())

	s = Defaults()
	s.SplitDir, s.Out = "dir", "x.fa"
	assert.Error(t, s.Validate())
}

func TestTOMLRoundTrip(t *testing.T) {
	want := Defaults()
	want.PeptideLength = 9
	want.Overlap = 3
	var buf bytes.Buffer
	require.NoError(t, want.WriteTOML(&buf))

	fn := filepath.Join(t.TempDir(), "dump.toml")
	require.NoError(t, os.WriteFile(fn, buf.Bytes(), 0o644))
	got, err := Load(NewViper(), fn)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Defaults().WriteYAML(&buf))
	assert.Contains(t, buf.String(), "peptide-length: 18\n")
	assert.Contains(t, buf.String(), "disallowed-ends: GSDENQHPCAT\n")
}

func TestFlagsBindEveryKey(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs, Defaults(), []string{"fasta", "tsv"})
	require.NoError(t, fs.Parse([]string{"-l", "12", "--overlap=3", "-o", "tsv", "--dedupe"}))

	v := NewViper()
	require.NoError(t, v.BindPFlags(fs))
	s, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 12, s.PeptideLength)
	assert.Equal(t, 3, s.Overlap)
	assert.Equal(t, "tsv", s.Output)
	assert.True(t, s.Dedupe)
	assert.Equal(t, Defaults().DisallowedEnds, s.DisallowedEnds)

	// Every key viper knows about has a flag.
	for _, k := range v.AllKeys() {
		assert.NotNil(t, fs.Lookup(k), k)
	}
}

func TestValidateMessagesAreASCII(t *testing.T) {
	s := Defaults()
	s.Threads = -1
	assert.EqualError(t, s.Validate(), "--threads must be >= 0")

	s = Defaults()
	s.DedupeCap = -1
	assert.EqualError(t, s.Validate(), "--dedupe-cap must be >= 0")
}
