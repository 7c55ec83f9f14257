package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/drawboard/internal/draw"
)

func newMoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "move TEAM TO",
		Short: "Move one team into a group or back to a pot",
		Long: `TEAM is an entry id (pot1-0) or a team name. TO is a group letter
(A-F, "group c") or a pot (pot2, p2).`,
		Example: `  drawboard move "Harbour FC" C
  drawboard move pot2-1 pot2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := draw.ParseContainer(args[1])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			rt, err := c.runtime(ctx)
			if err != nil {
				return err
			}
			defer closeRuntime(rt, cmd.ErrOrStderr())

			src, e, err := draw.Find(rt.Session.Board(), args[0])
			if err != nil {
				return err
			}
			changed, err := rt.Session.Move(ctx, e.ID, src, dst)
			if err != nil {
				return err
			}
			if !changed {
				return fmt.Errorf("%s was not moved", e.Name)
			}
			line := fmt.Sprintf("%s: %s -> %s", e.Name, src.Label(), dst.Label())
			if dst.Kind() == draw.KindGroup {
				line += fmt.Sprintf(" (%s)", draw.CapacityLabel(len(rt.Session.Board().Entries(dst))))
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}
