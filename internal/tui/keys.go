package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/drawboard/internal/draw"
)

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Pick    key.Binding
	Drop    key.Binding
	Cancel  key.Binding
	Target  key.Binding
	Import  key.Binding
	Reset   key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Deny    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next box")),
		Pick:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pick up/drop")),
		Drop:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Target:  key.NewBinding(key.WithKeys(targetKeys()...), key.WithHelp("A-F/1-3", "drop into group/pot")),
		Import:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		Reset:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Deny:    key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Target, k.Cancel, k.Import, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Next},
		{k.Pick, k.Drop, k.Target, k.Cancel},
		{k.Import, k.Reset, k.Quit},
	}
}

// targets maps the direct-drop keys to their containers.
var targets = func() map[string]draw.ContainerID {
	m := make(map[string]draw.ContainerID, 2*len(draw.Groups)+len(draw.Pots))
	for _, g := range draw.Groups {
		m[string(g)] = draw.GroupContainer(g)
		m[strings.ToLower(string(g))] = draw.GroupContainer(g)
	}
	for i, p := range draw.Pots {
		m[string(rune('1'+i))] = draw.PotContainer(p)
	}
	return m
}()

func targetKeys() []string {
	keys := make([]string, 0, len(targets))
	for _, g := range draw.Groups {
		keys = append(keys, string(g), strings.ToLower(string(g)))
	}
	for i := range draw.Pots {
		keys = append(keys, string(rune('1'+i)))
	}
	return keys
}

func (k keyMap) confirmHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Deny}
}
