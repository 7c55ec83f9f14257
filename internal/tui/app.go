package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/drawboard/internal/draw"
	"github.com/jask/drawboard/internal/service"
)

// App is the draw board: three rows of boxes (groups A-C, groups D-F,
// pots 1-3) and a cursor that can pick a team up and drop it elsewhere.
type App struct {
	ctx      context.Context
	session  *service.Session
	services Services
	log      *zap.Logger
	title    string
	keys     keyMap

	row, col, entry int
	held            *heldEntry

	modal      modalState
	input      textinput.Model
	status     string
	lastImport *service.IngestResult
	width      int
}

type Services struct {
	Ingest *service.IngestService
}

// heldEntry is the team picked up and the box it came from.
type heldEntry struct {
	ID   string
	Name string
	Src  draw.ContainerID
}

type modalState string

const (
	modalNone         modalState = ""
	modalImport       modalState = "import"
	modalConfirmReset modalState = "confirmReset"
)

// grid is the on-screen arrangement of the nine boxes.
var grid = [][]draw.ContainerID{
	{draw.GroupContainer(draw.GroupA), draw.GroupContainer(draw.GroupB), draw.GroupContainer(draw.GroupC)},
	{draw.GroupContainer(draw.GroupD), draw.GroupContainer(draw.GroupE), draw.GroupContainer(draw.GroupF)},
	{draw.PotContainer(draw.Pot1), draw.PotContainer(draw.Pot2), draw.PotContainer(draw.Pot3)},
}

func New(ctx context.Context, session *service.Session, services Services, title string, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	in := textinput.New()
	in.Prompt = "File: "
	in.Placeholder = "teams.csv or teams.xlsx"
	in.CharLimit = 512
	return &App{
		ctx:      ctx,
		session:  session,
		services: services,
		log:      log,
		title:    title,
		keys:     newKeyMap(),
		input:    in,
		row:      len(grid) - 1,
		width:    96,
	}
}

func (a *App) Init() tea.Cmd { return nil }

type errMsg struct{ error }

type ingestDoneMsg struct {
	Path   string
	Board  draw.Board
	Result service.IngestResult
	Err    error
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		return a, nil
	case errMsg:
		a.status = "error: " + m.Error()
		return a, nil
	case ingestDoneMsg:
		a.finishImport(m)
		return a, nil
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		return a.handleBoardKey(m)
	}
	return a, nil
}

func (a *App) handleBoardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Left):
		a.moveCursor(0, -1)
	case key.Matches(m, a.keys.Right):
		a.moveCursor(0, 1)
	case key.Matches(m, a.keys.Up):
		a.stepEntry(-1)
	case key.Matches(m, a.keys.Down):
		a.stepEntry(1)
	case key.Matches(m, a.keys.Next):
		a.nextContainer()
	case key.Matches(m, a.keys.Pick):
		if a.held != nil {
			a.drop(a.current())
		} else {
			a.pickUp()
		}
	case key.Matches(m, a.keys.Drop):
		if a.held != nil {
			a.drop(a.current())
		}
	case key.Matches(m, a.keys.Cancel):
		if a.held != nil {
			a.status = fmt.Sprintf("put %s back", a.held.Name)
			a.held = nil
		}
	case key.Matches(m, a.keys.Target):
		dst := targets[m.String()]
		if a.held != nil {
			a.drop(dst)
		} else {
			a.focus(dst)
		}
	case key.Matches(m, a.keys.Import):
		a.modal = modalImport
		a.input.Focus()
		return a, textinput.Blink
	case key.Matches(m, a.keys.Reset):
		a.modal = modalConfirmReset
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalConfirmReset:
		switch {
		case key.Matches(m, a.keys.Confirm):
			a.modal = modalNone
			a.reset()
		case key.Matches(m, a.keys.Deny):
			a.modal = modalNone
		}
		return a, nil
	case modalImport:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.input.Blur()
			return a, nil
		case tea.KeyEnter:
			path := strings.TrimSpace(a.input.Value())
			if path == "" {
				a.status = "enter a CSV or XLSX path"
				return a, nil
			}
			a.modal = modalNone
			a.input.Blur()
			return a, a.ingestCmd(path)
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(m)
		return a, cmd
	}
	return a, nil
}

// ingestCmd reads and parses the file off the update loop. The board is only
// replaced when the result message arrives.
func (a *App) ingestCmd(path string) tea.Cmd {
	abs := path
	if !filepath.IsAbs(path) {
		if p, err := filepath.Abs(path); err == nil {
			abs = p
		}
	}
	if a.services.Ingest == nil {
		return func() tea.Msg { return errMsg{errors.New("ingest service not configured")} }
	}
	a.status = "importing..."
	ingest, ctx := a.services.Ingest, a.ctx
	return func() tea.Msg {
		b, res, err := ingest.ImportFile(ctx, abs)
		return ingestDoneMsg{Path: abs, Board: b, Result: res, Err: err}
	}
}

func (a *App) finishImport(m ingestDoneMsg) {
	if m.Err != nil {
		if errors.Is(m.Err, service.ErrEmptyImport) {
			a.status = fmt.Sprintf("no valid teams found in %s; board unchanged", filepath.Base(m.Path))
		} else {
			a.status = "import failed: " + m.Err.Error()
		}
		a.log.Warn("import failed", zap.String("path", m.Path), zap.Error(m.Err))
		return
	}
	res := m.Result
	a.lastImport = &res
	a.held = nil
	a.row, a.col, a.entry = len(grid)-1, 0, 0
	if err := a.session.Replace(a.ctx, m.Board); err != nil {
		a.status = "imported but not saved: " + err.Error()
		return
	}
	a.status = res.Summary()
}

func (a *App) reset() {
	a.held = nil
	a.row, a.col, a.entry = len(grid)-1, 0, 0
	a.lastImport = nil
	if err := a.session.Reset(a.ctx); err != nil {
		a.status = "reset failed: " + err.Error()
		return
	}
	a.status = "board cleared"
}

func (a *App) pickUp() {
	c := a.current()
	entries := a.session.Board().Entries(c)
	if len(entries) == 0 {
		a.status = c.Label() + " is empty"
		return
	}
	e := entries[a.entry]
	a.held = &heldEntry{ID: e.ID, Name: e.Name, Src: c}
	a.status = fmt.Sprintf("holding %s; choose a box and press space", e.Name)
}

func (a *App) drop(dst draw.ContainerID) {
	h := a.held
	a.held = nil
	changed, err := a.session.Move(a.ctx, h.ID, h.Src, dst)
	switch {
	case !changed:
		a.status = fmt.Sprintf("%s is no longer in %s", h.Name, h.Src.Label())
		return
	case err != nil:
		a.status = "moved but not saved: " + err.Error()
	case dst.Kind() == draw.KindGroup:
		a.status = fmt.Sprintf("%s -> %s (%s)", h.Name, dst.Label(), draw.CapacityLabel(len(a.session.Board().Entries(dst))))
	default:
		a.status = fmt.Sprintf("%s -> %s", h.Name, dst.Label())
	}
	a.focus(dst)
	a.entry = max(len(a.session.Board().Entries(dst))-1, 0)
}

func (a *App) current() draw.ContainerID { return grid[a.row][a.col] }

func (a *App) focus(c draw.ContainerID) {
	for r, row := range grid {
		for col, id := range row {
			if id == c {
				a.row, a.col, a.entry = r, col, 0
				return
			}
		}
	}
}

func (a *App) moveCursor(dRow, dCol int) {
	a.row = clamp(a.row+dRow, 0, len(grid)-1)
	a.col = clamp(a.col+dCol, 0, len(grid[a.row])-1)
	a.clampEntry()
}

// stepEntry moves within a box and spills into the box above or below at
// the edges.
func (a *App) stepEntry(d int) {
	n := len(a.session.Board().Entries(a.current()))
	next := a.entry + d
	switch {
	case next >= 0 && next < n:
		a.entry = next
	case d < 0 && a.row > 0:
		a.row--
		a.entry = max(len(a.session.Board().Entries(a.current()))-1, 0)
	case d > 0 && a.row < len(grid)-1:
		a.row++
		a.entry = 0
	}
}

func (a *App) nextContainer() {
	a.col++
	if a.col >= len(grid[a.row]) {
		a.col = 0
		a.row = (a.row + 1) % len(grid)
	}
	a.entry = 0
}

func (a *App) clampEntry() {
	n := len(a.session.Board().Entries(a.current()))
	a.entry = clamp(a.entry, 0, max(n-1, 0))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
