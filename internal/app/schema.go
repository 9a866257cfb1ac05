// internal/app/schema.go
package app

import (
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"peptidechop/internal/jsonutil"
	"peptidechop/pkg/api"
)

func (r *runner) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of json/jsonl/yaml peptide records",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return jsonutil.EncodePretty(cmd.OutOrStdout(), PeptideSchema())
		},
	}
}

// PeptideSchema describes api.PeptideV1.
func PeptideSchema() *jsonschema.Schema {
	ref := &jsonschema.Reflector{ExpandedStruct: true}
	s := ref.Reflect(&api.PeptideV1{})
	s.Title = "PeptideV1"
	s.Description = "One peptide cut from a FASTA record."
	return s
}
