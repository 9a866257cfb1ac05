// Package settings resolves run settings from flags, PEPTIDECHOP_* environment
// variables and an optional YAML/TOML settings file (see: internal/app).
package settings

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"peptidechop/core/chopper"
	"peptidechop/internal/runutil"
)

// EnvPrefix namespaces environment overrides, e.g. PEPTIDECHOP_PEPTIDE_LENGTH=15.
const EnvPrefix = "PEPTIDECHOP"

// Settings is the fully resolved configuration of one run. Keys match the
// long flag names.
type Settings struct {
	// chopping
	PeptideLength  int    `mapstructure:"peptide-length" toml:"peptide-length" yaml:"peptide-length"`
	Overlap        int    `mapstructure:"overlap" toml:"overlap" yaml:"overlap"`
	DisallowedEnds string `mapstructure:"disallowed-ends" toml:"disallowed-ends" yaml:"disallowed-ends"`
	MaxEndTrim     int    `mapstructure:"max-end-trim" toml:"max-end-trim" yaml:"max-end-trim"`
	Strict         bool   `mapstructure:"strict" toml:"strict" yaml:"strict"`

	// output
	Output     string `mapstructure:"output" toml:"output" yaml:"output"`
	Out        string `mapstructure:"out" toml:"out" yaml:"out"`
	SplitDir   string `mapstructure:"split-dir" toml:"split-dir" yaml:"split-dir"`
	NoHeader   bool   `mapstructure:"no-header" toml:"no-header" yaml:"no-header"`
	SourceFile bool   `mapstructure:"source-file" toml:"source-file" yaml:"source-file"`
	Dedupe     bool   `mapstructure:"dedupe" toml:"dedupe" yaml:"dedupe"`
	DedupeCap  int    `mapstructure:"dedupe-cap" toml:"dedupe-cap" yaml:"dedupe-cap"`

	// run
	Threads     int  `mapstructure:"threads" toml:"threads" yaml:"threads"`
	SkipInvalid bool `mapstructure:"skip-invalid" toml:"skip-invalid" yaml:"skip-invalid"`

	// logging
	LogLevel  string `mapstructure:"log-level" toml:"log-level" yaml:"log-level"`
	LogFormat string `mapstructure:"log-format" toml:"log-format" yaml:"log-format"`
	Quiet     bool   `mapstructure:"quiet" toml:"quiet" yaml:"quiet"`
}

// Defaults mirrors the flag defaults.
func Defaults() Settings {
	c := chopper.DefaultConfig()
	return Settings{
		PeptideLength:  c.PeptideLength,
		Overlap:        c.Overlap,
		DisallowedEnds: c.DisallowedEnds,
		MaxEndTrim:     c.MaxEndTrim,
		Output:         "fasta",
		Out:            "-",
		DedupeCap:      runutil.DefaultDedupeCap,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// AddFlags registers one flag per settings key on fs, defaulting to d.
// Keys and flag names are identical so viper.BindPFlags maps them directly.
func AddFlags(fs *pflag.FlagSet, d Settings, formats []string) {
	// chopping
	fs.IntP("peptide-length", "l", d.PeptideLength, "residues per peptide before trimming")
	fs.Int("overlap", d.Overlap, "residues each window reaches back into the previous one (< peptide length)")
	fs.String("disallowed-ends", d.DisallowedEnds, "residues trimmed from peptide ends ('' disables)")
	fs.Int("max-end-trim", d.MaxEndTrim, "max trailing residues trimmed; longer runs are kept (0 disables)")
	fs.Bool("strict", d.Strict, fmt.Sprintf("reject sequences with any residue outside %s", chopper.Alphabet))
	// output
	fs.StringP("output", "o", d.Output, fmt.Sprintf("output format: %v", formats))
	fs.StringP("out", "O", d.Out, "output file ('-' for stdout)")
	fs.String("split-dir", d.SplitDir, "write one {name}_peptides file per record into this directory")
	fs.Bool("no-header", d.NoHeader, "suppress the tsv header line")
	fs.Bool("source-file", d.SourceFile, "include the source file in tsv/json/jsonl/yaml output")
	fs.Bool("dedupe", d.Dedupe, "drop peptides already emitted, in this or an earlier record")
	fs.Int("dedupe-cap", d.DedupeCap, "max distinct peptides remembered by --dedupe")
	// run
	fs.IntP("threads", "t", d.Threads, "worker threads (0=all CPUs)")
	fs.Bool("skip-invalid", d.SkipInvalid, "warn about unusable records instead of failing")
	// logging
	fs.String("log-level", d.LogLevel, "log level: debug | info | warn | error")
	fs.String("log-format", d.LogFormat, "log format: text | json")
	fs.BoolP("quiet", "q", d.Quiet, "only log errors")
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("peptide-length", d.PeptideLength)
	v.SetDefault("overlap", d.Overlap)
	v.SetDefault("disallowed-ends", d.DisallowedEnds)
	v.SetDefault("max-end-trim", d.MaxEndTrim)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("output", d.Output)
	v.SetDefault("out", d.Out)
	v.SetDefault("split-dir", d.SplitDir)
	v.SetDefault("no-header", d.NoHeader)
	v.SetDefault("source-file", d.SourceFile)
	v.SetDefault("dedupe", d.Dedupe)
	v.SetDefault("dedupe-cap", d.DedupeCap)
	v.SetDefault("threads", d.Threads)
	v.SetDefault("skip-invalid", d.SkipInvalid)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("log-format", d.LogFormat)
	v.SetDefault("quiet", d.Quiet)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file (if any) into v and decodes the merged result.
func Load(v *viper.Viper, file string) (Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read settings %s: %w", file, err)
		}
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, s.Validate()
}

// Chop returns the chopper parameters.
func (s Settings) Chop() chopper.Config {
	return chopper.Config{
		PeptideLength:  s.PeptideLength,
		Overlap:        s.Overlap,
		DisallowedEnds: strings.ToUpper(s.DisallowedEnds),
		MaxEndTrim:     s.MaxEndTrim,
		Strict:         s.Strict,
	}
}

// Validate checks everything that does not need input files.
func (s Settings) Validate() error {
	if err := s.Chop().Validate(); err != nil {
		return err
	}
	if s.Threads < 0 {
		return fmt.Errorf("--threads must be >= 0")
	}
	if s.DedupeCap < 0 {
		return fmt.Errorf("--dedupe-cap must be >= 0")
	}
	if s.SplitDir != "" && s.Out != "" && s.Out != "-" {
		return fmt.Errorf("--split-dir conflicts with --out")
	}
	return nil
}

// WriteTOML dumps s as a TOML settings file.
func (s Settings) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// WriteYAML dumps s as a YAML settings file.
func (s Settings) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
