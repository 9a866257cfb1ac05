package chopper

const (
	DefaultPeptideLength  = 18
	DefaultOverlap        = 10
	DefaultDisallowedEnds = "GSDENQHPCAT"
	DefaultMaxEndTrim     = 3
)

// Config holds the chopping parameters. Use DefaultConfig as a starting point;
// the zero value has PeptideLength 0 and is rejected by New.
type Config struct {
	// PeptideLength is the untrimmed length of every peptide.
	PeptideLength int `json:"peptide_length" yaml:"peptide_length" mapstructure:"peptide-length" toml:"peptide_length"`
	// Overlap is how far each window reaches back before the cursor.
	// Must be in [0, PeptideLength-1].
	Overlap int `json:"overlap" yaml:"overlap" mapstructure:"overlap" toml:"overlap"`
	// DisallowedEnds are residues stripped from the end of a peptide.
	DisallowedEnds string `json:"disallowed_ends" yaml:"disallowed_ends" mapstructure:"disallowed-ends" toml:"disallowed_ends"`
	// MaxEndTrim caps how many trailing residues are stripped. A longer
	// trailing run is kept intact. 0 disables trimming.
	MaxEndTrim int `json:"max_end_trim" yaml:"max_end_trim" mapstructure:"max-end-trim" toml:"max_end_trim"`
	// Strict requires every residue to be in Alphabet. Without it a sequence
	// only needs to contain one.
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict" toml:"strict"`
}

// DefaultConfig returns 18-residue peptides overlapping by 10, with up to 3
// trailing residues from GSDENQHPCAT trimmed.
func DefaultConfig() Config {
	return Config{
		PeptideLength:  DefaultPeptideLength,
		Overlap:        DefaultOverlap,
		DisallowedEnds: DefaultDisallowedEnds,
		MaxEndTrim:     DefaultMaxEndTrim,
	}
}

// Validate checks the parameters that do not depend on a sequence.
func (c Config) Validate() error {
	if c.PeptideLength < 1 {
		return paramErr("peptide length must be >= 1, got %d", c.PeptideLength)
	}
	if c.Overlap < 0 {
		return paramErr("overlap must be >= 0, got %d", c.Overlap)
	}
	if c.Overlap >= c.PeptideLength {
		return paramErr("overlap (%d) must be smaller than the peptide length (%d)", c.Overlap, c.PeptideLength)
	}
	if c.MaxEndTrim < 0 {
		return paramErr("max end trim must be >= 0, got %d", c.MaxEndTrim)
	}
	return nil
}

// Chopper yields the peptides of one sequence. It holds no traversal state.
type Chopper struct {
	seq  string
	cfg  Config
	trim endTrimmer
}

// New validates seq against cfg and returns a Chopper. On error the returned
// Chopper is nil.
func New(seq string, cfg Config) (*Chopper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(seq) < cfg.PeptideLength {
		return nil, seqErr("sequence length %d is smaller than the peptide length %d", len(seq), cfg.PeptideLength)
	}
	if cfg.Strict {
		if i, b, bad := FirstInvalid(seq); bad {
			return nil, seqErr("residue %q at %d is not one of %s", b, i+1, Alphabet)
		}
	} else if !ContainsResidue(seq) {
		return nil, seqErr("no amino acid residues found")
	}
	return &Chopper{
		seq:  seq,
		cfg:  cfg,
		trim: newEndTrimmer(cfg.DisallowedEnds, cfg.MaxEndTrim),
	}, nil
}

func (c *Chopper) Sequence() string { return c.seq }
func (c *Chopper) Config() Config   { return c.cfg }
func (c *Chopper) Len() int         { return len(c.seq) }
