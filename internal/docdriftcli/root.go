package docdriftcli

import (
	"github.com/spf13/cobra"

	"docdrift/internal/version"
)

func NewRootCommand() *cobra.Command {
	opts := newDefaultOptions()
	cmd := &cobra.Command{
		Use:   "docdrift",
		Short: "Detect documentation drift from per-line git history",
		Long: "docdrift partitions a named Python definition into signature, " +
			"docstring, and body line ranges, queries git log -L for each, and " +
			"warns when the body or signature was edited after the docstring.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.Version = version.String()
	cmd.InitDefaultVersionFlag()
	if f := cmd.Flags().Lookup("version"); f != nil {
		f.Shorthand = "v"
	}

	withOptionsContext(cmd, opts)
	bindFlags(cmd, opts)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if opts := optionsFrom(cmd); opts != nil {
			return opts.Prepare(cmd)
		}
		return nil
	}

	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newRangesCommand())
	cmd.AddCommand(newHistoryCommand())
	return cmd
}
