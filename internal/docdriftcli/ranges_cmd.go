package docdriftcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"docdrift/internal/core/locate"
	"docdrift/internal/core/pysrc"
)

func newRangesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ranges <file> <name>",
		Short: "Print definition, signature, docstring, and body line ranges",
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
			cats := []RangeCategory{
				{Name: "definition", Ranges: locate.DefinitionRanges(defs)},
				{Name: "signature", Ranges: locate.SignatureRanges(defs)},
				{Name: "docstring", Ranges: locate.DocCommentRanges(defs)},
				{Name: "body", Ranges: locate.BodyWithoutDocAll(defs)},
			}

			if opts.Jsonl {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), RenderRangesJSONL(cats))
				return nil
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), RenderRanges(cats))
			return nil
		},
	}
}
