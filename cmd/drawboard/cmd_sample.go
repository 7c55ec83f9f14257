package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/drawboard/internal/teamsheet"
)

func newSampleCmd(c *cli) *cobra.Command {
	var (
		teams int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "sample FILE",
		Short: "Write a made-up team sheet (.csv or .xlsx) to try the board with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if teams < 1 {
				return fmt.Errorf("--teams must be at least 1")
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			rows := teamsheet.Generate(teams, seed)
			path := args[0]
			switch strings.ToLower(filepath.Ext(path)) {
			case ".xlsx":
				if err := teamsheet.WriteXLSX(path, rows); err != nil {
					return err
				}
			case ".csv", ".txt":
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				if err := teamsheet.WriteCSV(f, rows); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("%s: use a .csv or .xlsx file name", path)
			}
			c.logger.Info("sample written", zap.String("path", path), zap.Int("teams", teams))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d teams to %s\n", teams, path)
			return nil
		},
	}
	cmd.Flags().IntVar(&teams, "teams", 18, "number of teams")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: time based)")
	return cmd
}
