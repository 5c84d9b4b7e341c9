package terminal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/input"
	"github.com/xiform/xiform/pkg/widgets"
)

func TestTranslate(t *testing.T) {
	cell := graphics.Size{Width: CellWidth, Height: CellHeight}
	tests := []struct {
		name string
		msg  tea.Msg
		want input.Event
		ok   bool
	}{
		{"motion", tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionMotion}, input.Move(35, 50), true},
		{"left press", tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, input.Down(5, 10), true},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, input.Event{}, false},
		{"release", tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease}, input.Up(15, 30), true},
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é")}, input.Text("é"), true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, input.Text(" "), true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, input.Press(input.KeyBackspace), true},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, input.Press(input.KeyLeft), true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, input.Press(input.KeyEnter), true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, input.Event{Kind: input.Quit}, true},
		{"focus", tea.FocusMsg{}, input.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.msg, cell)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Translate() = %v %v, want %v %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestModel_ClickButton(t *testing.T) {
	reg := widgets.NewRegistry(0)
	clicks := 0
	btn := widgets.NewButton(20, 20, 60, 40, "OK")
	btn.OnClick = func() { clicks++ }
	h := reg.Register(btn)

	m := NewModel(reg, 20, 6)
	m.Init()

	// cell (3,1) maps to (35,30), inside the button
	m.Update(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionMotion})
	if !reg.Button(h).Hovered {
		t.Fatal("expected hover from mouse motion")
	}
	m.Update(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if m.View() == "" {
		t.Error("expected a rendered view")
	}
	if m.Grid().Cell(3, 1).BG != graphics.ColorDarkBlue {
		t.Errorf("button cell bg = %s, want hover color", m.Grid().Cell(3, 1).BG.Hex())
	}
}

func TestModel_TypeIntoEntry(t *testing.T) {
	reg := widgets.NewRegistry(0)
	h := reg.Register(widgets.TextEntry{X: 0, Y: 0, Width: 200, Height: 40})
	m := NewModel(reg, 20, 4)

	m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	if got := reg.TextEntry(h).Text(); got != "a" {
		t.Errorf("Text() = %q, want a", got)
	}
}

func TestModel_QuitAndResize(t *testing.T) {
	m := NewModel(widgets.NewRegistry(0), 10, 4)

	m.Update(tea.WindowSizeMsg{Width: 30, Height: 8})
	if m.Grid().Cols() != 30 || m.Grid().Rows() != 8 {
		t.Errorf("grid is %dx%d after resize", m.Grid().Cols(), m.Grid().Rows())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}
