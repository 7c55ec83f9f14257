package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/drawboard/internal/draw"
)

// styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activeBox   = boxStyle.BorderForeground(lipgloss.Color("212"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	fullStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	heldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

const minBoxWidth = 18

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.title))
	b.WriteString("\n")
	b.WriteString(a.renderBoard())
	b.WriteString("\n")
	if a.held != nil {
		b.WriteString(heldStyle.Render(fmt.Sprintf("Holding: %s (from %s)", a.held.Name, a.held.Src.Label())))
		b.WriteString("\n")
	}
	if a.status != "" {
		b.WriteString(a.status)
		b.WriteString("\n")
	}
	if a.modal != modalNone {
		b.WriteString("\n")
		b.WriteString(a.renderModal())
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(a.helpLine()))
	return b.String()
}

func (a *App) renderBoard() string {
	// Border (2) plus padding (2) per box.
	inner := max(a.width/len(grid[0])-4, minBoxWidth)
	board := a.session.Board()
	rows := make([]string, 0, len(grid))
	for r, row := range grid {
		height := 0
		for _, c := range row {
			height = max(height, len(board.Entries(c)))
		}
		height = max(height, draw.GroupCapacity)
		boxes := make([]string, 0, len(row))
		for col, c := range row {
			active := r == a.row && col == a.col
			boxes = append(boxes, a.renderBox(c, board.Entries(c), inner, height, active))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderBox(c draw.ContainerID, entries []draw.Entry, width, height int, active bool) string {
	lines := make([]string, 0, height+1)
	lines = append(lines, a.boxHeader(c, len(entries), width))
	for i, e := range entries {
		name := ansi.Truncate(e.Name, width-2, "…")
		line := "  " + name
		if c.Kind() == draw.KindGroup {
			tag := dimStyle.Render(" " + strings.TrimPrefix(string(e.PotID), "pot"))
			line = "  " + ansi.Truncate(e.Name, width-4, "…") + tag
		}
		if a.held != nil && a.held.ID == e.ID {
			line = heldStyle.Render("* " + name)
		}
		if active && i == a.entry {
			line = cursorStyle.Render(ansi.Truncate(line, width, ""))
		}
		lines = append(lines, line)
	}
	if len(entries) == 0 {
		empty := dimStyle.Render("  (empty)")
		if active {
			empty = cursorStyle.Render("  (empty)")
		}
		lines = append(lines, empty)
	}
	for len(lines) < height+1 {
		lines = append(lines, "")
	}
	style := boxStyle
	if active {
		style = activeBox
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (a *App) boxHeader(c draw.ContainerID, n, width int) string {
	label := headerStyle.Render(c.Label())
	var count string
	if c.Kind() == draw.KindGroup {
		count = draw.CapacityLabel(n)
		switch {
		case n > draw.GroupCapacity:
			count = overStyle.Render(count)
		case n == draw.GroupCapacity:
			count = fullStyle.Render(count)
		default:
			count = dimStyle.Render(count)
		}
	} else {
		count = dimStyle.Render(fmt.Sprintf("%d left", n))
	}
	gap := max(width-lipgloss.Width(label)-lipgloss.Width(count), 1)
	return label + strings.Repeat(" ", gap) + count
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalConfirmReset:
		return titleStyle.Render("Reset the draw?") + "\nEvery team is removed and the saved board is deleted.\n[y] Yes  [n] No"
	case modalImport:
		body := titleStyle.Render("Import teams") + "\n" + a.input.View() +
			"\nRows are: seeding number, team name. Importing replaces the whole board.\n[enter] Import  [esc] Cancel"
		if a.lastImport != nil {
			body += fmt.Sprintf("\nLast import: %d imported, %d skipped", a.lastImport.Imported, a.lastImport.Skipped)
			if len(a.lastImport.Errors) > 0 {
				body += "\nFirst error: " + a.lastImport.Errors[0].Error()
				if len(a.lastImport.Errors) > 1 {
					body += fmt.Sprintf(" (+%d more)", len(a.lastImport.Errors)-1)
				}
			}
		}
		return body
	}
	return ""
}

func (a *App) helpLine() string {
	bindings := a.keys.ShortHelp()
	if a.modal == modalConfirmReset {
		bindings = a.keys.confirmHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}
