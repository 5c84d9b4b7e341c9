package terminal

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiform/xiform/pkg/engine"
	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/input"
	"github.com/xiform/xiform/pkg/widgets"
)

// Translate converts a Bubble Tea message into an input event. Mouse
// positions are given in cells and mapped to the center of the cell.
// Messages with no equivalent report false.
func Translate(msg tea.Msg, cell graphics.Size) (input.Event, bool) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		x := msg.X*cell.Width + cell.Width/2
		y := msg.Y*cell.Height + cell.Height/2
		switch msg.Action {
		case tea.MouseActionMotion:
			return input.Move(x, y), true
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				return input.Down(x, y), true
			}
		case tea.MouseActionRelease:
			return input.Up(x, y), true
		}
	case tea.KeyMsg:
		return translateKey(msg)
	}
	return input.Event{}, false
}

func translateKey(msg tea.KeyMsg) (input.Event, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return input.Event{Kind: input.Quit}, true
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			return input.Text(string(msg.Runes)), true
		}
	case tea.KeySpace:
		return input.Text(" "), true
	case tea.KeyBackspace:
		return input.Press(input.KeyBackspace), true
	case tea.KeyDelete:
		return input.Press(input.KeyDelete), true
	case tea.KeyLeft:
		return input.Press(input.KeyLeft), true
	case tea.KeyRight:
		return input.Press(input.KeyRight), true
	case tea.KeyHome:
		return input.Press(input.KeyHome), true
	case tea.KeyEnd:
		return input.Press(input.KeyEnd), true
	case tea.KeyEnter:
		return input.Press(input.KeyEnter), true
	case tea.KeyEsc:
		return input.Press(input.KeyEscape), true
	case tea.KeyTab:
		return input.Press(input.KeyTab), true
	}
	return input.Event{}, false
}

// Model is a Bubble Tea model that renders a registry into a Grid. Each
// message that maps to an input event is queued and followed by one
// engine frame.
type Model struct {
	grid  *Grid
	queue *engine.Queue
	loop  *engine.Loop
	quit  bool
}

// NewModel returns a model for reg with an initial grid size.
func NewModel(reg *widgets.Registry, cols, rows int) *Model {
	grid := NewGrid(cols, rows)
	queue := engine.NewQueue(engine.MaxEventsPerFrame)
	return &Model{
		grid:  grid,
		queue: queue,
		loop:  engine.NewLoop(reg, grid, queue),
	}
}

// Grid returns the surface the model renders into.
func (m *Model) Grid() *Grid {
	return m.grid
}

// Loop returns the engine loop driving the registry.
func (m *Model) Loop() *engine.Loop {
	return m.loop
}

func (m *Model) Init() tea.Cmd {
	m.loop.Render()
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.grid.Resize(ws.Width, ws.Height)
		m.loop.Render()
		return m, nil
	}

	ev, ok := Translate(msg, m.grid.CellSize())
	if !ok {
		return m, nil
	}
	m.queue.Push(ev)
	if !m.loop.Frame() {
		m.quit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quit {
		return ""
	}
	return m.grid.Frame()
}

// Options configures Run.
type Options struct {
	// CellWidth and CellHeight override the cell size in surface units.
	CellWidth, CellHeight int
	// Background clears the grid each frame. Defaults to white.
	Background graphics.Color
}

// Run shows reg in the terminal until ctrl+c or ctx is cancelled. It
// returns the loop statistics of the session.
func Run(ctx context.Context, reg *widgets.Registry, opts Options) (engine.Stats, error) {
	m := NewModel(reg, 80, 24)
	m.grid.SetCellSize(opts.CellWidth, opts.CellHeight)
	m.loop.Background = opts.Background
	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return m.loop.Stats(), fmt.Errorf("bubble tea: %w", err)
	}
	return m.loop.Stats(), nil
}
