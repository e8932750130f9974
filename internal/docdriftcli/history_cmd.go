package docdriftcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"docdrift/internal/core/locate"
	"docdrift/internal/core/pysrc"
)

func newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <file> <name>",
		Short: "Print raw line history for each category",
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

			defs := locate.FindDefinitions(file.Definitions(), args[1])
			client := opts.historyClient()
			out := cmd.OutOrStdout()

			for _, cat := range []RangeCategory{
				{Name: "signature", Ranges: locate.SignatureRanges(defs)},
				{Name: "docstring", Ranges: locate.DocCommentRanges(defs)},
				{Name: "body", Ranges: locate.BodyRanges(defs)},
			} {
				_, _ = fmt.Fprintf(out, "== %s ==\n", cat.Name)
				_, _ = fmt.Fprintln(out, client.FetchHistory(cmd.Context(), file.Path, cat.Ranges, opts.MaxCount))
			}
			return nil
		},
	}
}
