// internal/app/config.go
package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (r *runner) configCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as a settings file",
		Long: `Print the settings after merging defaults, the --settings file,
PEPTIDECHOP_* environment variables and flags. The output can be saved and
passed back with --settings.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case "toml":
				return r.s.WriteTOML(cmd.OutOrStdout())
			case "yaml":
				return r.s.WriteYAML(cmd.OutOrStdout())
			default:
				return usageError(fmt.Errorf("invalid --format %q (toml|yaml)", format))
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "settings format: toml | yaml")
	return cmd
}
