// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"peptidechop/internal/logging"
	"peptidechop/internal/settings"
	"peptidechop/internal/version"
	"peptidechop/internal/writers"
)

// runner holds the state of one invocation.
type runner struct {
	stdout, stderr io.Writer

	v   *viper.Viper
	s   settings.Settings
	log *slog.Logger

	settingsFile string
	seq, name    string
}

// RunContext executes the CLI with argv and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	r := &runner{stdout: stdout, stderr: stderr, v: settings.NewViper()}
	root := r.rootCommand()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil && err.Error() != "" && exitCode(err) != ExitCanceled {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		if exitCode(err) == ExitUsage {
			_, _ = fmt.Fprintln(stderr, "Run 'peptidechop --help' for usage.")
		}
	}
	return exitCode(err)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func (r *runner) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "peptidechop [flags] [FASTA ...]",
		Short: "Chop protein sequences into overlapping peptides",
		Long: `Chop protein sequences into overlapping fixed-length peptides.

Each FASTA record (plain, gzipped, or '-' for stdin) is cut into windows of
--peptide-length residues that reach --overlap residues back into the previous
window. The last window is shifted left so it is full length. Up to
--max-end-trim trailing residues from --disallowed-ends are removed from each
peptide; a longer trailing run is left untouched.`,
		Example: `  peptidechop proteins.fa
  peptidechop -l 15 --overlap 11 -o tsv proteins.fa.gz > peptides.tsv
  peptidechop -s MSKGEELFTGVVPILVELDGDVNGHKF --name GFP
  peptidechop --split-dir peptides/ *.fasta`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runChop(cmd.Context(), args)
		},
	}
	root.SetVersionTemplate("peptidechop version {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError(err) })

	pf := root.PersistentFlags()
	settings.AddFlags(pf, settings.Defaults(), writers.Formats())
	// input
	pf.StringVarP(&r.seq, "sequence", "s", "", "chop this raw sequence instead of (or before) FASTA inputs")
	pf.StringVar(&r.name, "name", "sequence", "record name for --sequence")
	pf.StringVar(&r.settingsFile, "settings", "", "YAML or TOML settings file")

	root.AddCommand(r.chopCommand(), r.watchCommand(), r.schemaCommand(), r.configCommand(), r.versionCommand())
	return root
}

// setup resolves settings and the logger before any command runs.
func (r *runner) setup(cmd *cobra.Command) error {
	if err := r.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	s, err := settings.Load(r.v, r.settingsFile)
	if err != nil {
		return usageError(err)
	}
	if !writers.Known(s.Output) {
		return usageError(fmt.Errorf("invalid --output %q (known: %v)", s.Output, writers.Formats()))
	}
	level := s.LogLevel
	if s.Quiet {
		level = "error"
	}
	log, err := logging.New(r.stderr, level, s.LogFormat)
	if err != nil {
		return usageError(err)
	}
	r.s, r.log = s, log
	return nil
}

func (r *runner) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "peptidechop version %s\n", version.Version)
			return err
		},
	}
}
