package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jask/drawboard/internal/draw"
)

type containerView struct {
	Name     string     `yaml:"name"`
	Capacity string     `yaml:"capacity,omitempty"`
	Teams    []teamView `yaml:"teams"`
}

type teamView struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Pot  string `yaml:"pot"`
}

func newShowCmd(c *cli) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := c.runtime(ctx)
			if err != nil {
				return err
			}
			defer closeRuntime(rt, cmd.ErrOrStderr())
			return writeBoard(cmd.OutOrStdout(), rt.Session.Board(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}

func writeBoard(w io.Writer, b draw.Board, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		_, err := io.WriteString(w, renderText(b))
		return err
	case "json":
		data, err := draw.Encode(b)
		if err != nil {
			return err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", "  "); err != nil {
			return err
		}
		out.WriteByte('\n')
		_, err = w.Write(out.Bytes())
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(boardView(b)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func boardView(b draw.Board) []containerView {
	out := make([]containerView, 0, len(draw.Groups)+len(draw.Pots))
	for _, c := range draw.Containers() {
		entries := b.Entries(c)
		v := containerView{Name: c.Label(), Teams: make([]teamView, 0, len(entries))}
		if c.Kind() == draw.KindGroup {
			v.Capacity = draw.CapacityLabel(len(entries))
		}
		for _, e := range entries {
			v.Teams = append(v.Teams, teamView{ID: e.ID, Name: e.Name, Pot: e.PotID.Label()})
		}
		out = append(out, v)
	}
	return out
}

func renderText(b draw.Board) string {
	var sb strings.Builder
	for _, v := range boardView(b) {
		if v.Capacity != "" {
			fmt.Fprintf(&sb, "%s (%s)\n", v.Name, v.Capacity)
		} else {
			fmt.Fprintf(&sb, "%s (%d left)\n", v.Name, len(v.Teams))
		}
		if len(v.Teams) == 0 {
			sb.WriteString("  -\n")
		}
		for _, t := range v.Teams {
			fmt.Fprintf(&sb, "  %-24s %-8s %s\n", t.Name, t.ID, t.Pot)
		}
	}
	return sb.String()
}
