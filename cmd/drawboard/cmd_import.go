package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/drawboard/internal/service"
)

func newImportCmd(c *cli) *cobra.Command {
	var layout string
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the board with teams from a CSV or XLSX file",
		Long: `Reads rows of (seeding number, team name) and seeds every team into a pot:
1-6 pot 1, 7-12 pot 2, 13-18 pot 3, anything else pot 1. All groups start
empty. Rows with a blank name or a non-numeric seed are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := c.runtime(ctx)
			if err != nil {
				return err
			}
			defer closeRuntime(rt, cmd.ErrOrStderr())

			if cmd.Flags().Changed("layout") {
				l, err := service.FindLayout(rt.Layouts, layout)
				if err != nil {
					return err
				}
				rt.Ingest.Layout = l
			}

			b, res, err := rt.Ingest.ImportFile(ctx, args[0])
			for _, e := range res.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), "skipped:", e)
			}
			if err != nil {
				return err
			}
			if err := rt.Session.Replace(ctx, b); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Summary())
			return nil
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "", "import layout name (see import.layouts_file)")
	return cmd
}
