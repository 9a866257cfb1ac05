// pkg/api/peptides_v1.go
package api

// PeptideV1 is the stable JSON/JSONL/YAML schema for one peptide.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PeptideV1 struct {
	SequenceID string `json:"sequence_id" yaml:"sequence_id" jsonschema:"description=FASTA record id the peptide was cut from"`
	Index      int    `json:"index" yaml:"index" jsonschema:"minimum=1,description=1-based peptide number within the record"`
	Start      int    `json:"start" yaml:"start" jsonschema:"minimum=0,description=0-based offset of the untrimmed window"`
	End        int    `json:"end" yaml:"end" jsonschema:"minimum=0,description=exclusive end of the trimmed peptide"`
	Length     int    `json:"length" yaml:"length"`
	Trimmed    int    `json:"trimmed,omitempty" yaml:"trimmed,omitempty" jsonschema:"description=residues removed from the C-terminal end"`
	Peptide    string `json:"peptide" yaml:"peptide"`
	SourceFile string `json:"source_file,omitempty" yaml:"source_file,omitempty"`
}
