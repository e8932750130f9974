package docdriftcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"docdrift/internal/core/drift"
	"docdrift/internal/core/pysrc"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file> <name>",
		Short: "Cross-check signature, docstring, and body edit history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(cmd)
			if opts == nil {
				return fmt.Errorf("options missing")
			}

			file, err := pysrc.Load(args[0])
			if err != nil {
				return err
			}

			checker := drift.NewChecker(file.Path, file.Definitions(), opts.historyClient(), drift.Options{
				MaxCount: opts.MaxCount,
			})
			warnings := checker.CheckConsistency(cmd.Context(), args[1])

			if opts.Jsonl {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), RenderWarningsJSONL(warnings))
				return nil
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), RenderWarnings(warnings))
			return nil
		},
	}
}
