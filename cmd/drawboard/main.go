package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/drawboard/internal/app"
	"github.com/jask/drawboard/internal/config"
	"github.com/jask/drawboard/internal/logging"
)

// cli carries the global flags and what PersistentPreRunE builds from them.
type cli struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&cli{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "drawboard",
		Short: "Manual group-stage draw board",
		Long: `drawboard seeds teams into three pots from a spreadsheet and lets you
move them, one at a time, into six groups. Every move is saved.

Run without arguments to open the interactive board.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBoard(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $DRAWBOARD_CONFIG or ~/.config/drawboard/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newBoardCmd(c),
		newImportCmd(c),
		newShowCmd(c),
		newMoveCmd(c),
		newResetCmd(c),
		newSampleCmd(c),
		newConfigCmd(c),
	)
	return root
}

func (c *cli) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	logger, err := logging.New(cfg.Log, c.verbose)
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

// runtime opens storage and restores the board. Callers must Close it.
func (c *cli) runtime(ctx context.Context) (*app.Runtime, error) {
	return app.Build(ctx, c.cfg, c.logger)
}

func closeRuntime(rt *app.Runtime, w io.Writer) {
	if err := rt.Close(); err != nil {
		fmt.Fprintln(w, "warning: close storage:", err)
	}
}
