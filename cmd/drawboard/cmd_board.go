package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/drawboard/internal/tui"
)

func newBoardCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive draw board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBoard(cmd)
		},
	}
}

func (c *cli) runBoard(cmd *cobra.Command) error {
	ctx := cmd.Context()
	rt, err := c.runtime(ctx)
	if err != nil {
		return err
	}
	defer closeRuntime(rt, cmd.ErrOrStderr())

	model := tui.New(ctx, rt.Session, tui.Services{Ingest: rt.Ingest}, c.cfg.UI.Title, c.logger.Named("tui"))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
