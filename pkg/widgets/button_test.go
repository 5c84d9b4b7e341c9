package widgets_test

import (
	"testing"

	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/input"
	"github.com/xiform/xiform/pkg/widgets"
)

func TestButton_HoverPressRelease(t *testing.T) {
	b := widgets.NewButton(10, 10, 70, 30, "Go")
	origin := graphics.Point{X: 10, Y: 10}

	b.Update(input.Move(40, 20), origin)
	if !b.Hovered || b.Clicked {
		t.Fatalf("after move: hovered=%v clicked=%v, want true false", b.Hovered, b.Clicked)
	}
	b.Update(input.Down(40, 20), origin)
	if !b.Clicked {
		t.Fatal("expected clicked after press over button")
	}
	if b.CurrentColor() != graphics.ColorRed {
		t.Errorf("expected click color while pressed, got %s", b.CurrentColor().Hex())
	}
	b.Update(input.Up(40, 20), origin)
	if b.Clicked || !b.Hovered {
		t.Errorf("after release: hovered=%v clicked=%v, want true false", b.Hovered, b.Clicked)
	}
	if b.CurrentColor() != graphics.ColorDarkBlue {
		t.Errorf("expected hover color, got %s", b.CurrentColor().Hex())
	}
}

func TestButton_PressOutsideDoesNotClick(t *testing.T) {
	b := widgets.NewButton(10, 10, 70, 30, "Go")
	origin := graphics.Point{X: 10, Y: 10}

	b.Update(input.Down(5, 5), origin)
	if b.Clicked || b.Hovered {
		t.Errorf("press outside: hovered=%v clicked=%v", b.Hovered, b.Clicked)
	}
}

func TestButton_PressWithoutMoveUsesPressPosition(t *testing.T) {
	b := widgets.NewButton(10, 10, 70, 30, "Go")
	b.Update(input.Down(20, 20), graphics.Point{X: 10, Y: 10})
	if !b.Clicked {
		t.Error("expected press inside to click even without a prior move")
	}
}

func TestButton_HitTestIsHalfOpen(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 10, 10, true},
		{"last column", 79, 20, true},
		{"right edge", 80, 20, false},
		{"bottom edge", 40, 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := widgets.NewButton(10, 10, 70, 30, "")
			b.Update(input.Move(tt.x, tt.y), graphics.Point{X: 10, Y: 10})
			if b.Hovered != tt.want {
				t.Errorf("Hovered = %v, want %v", b.Hovered, tt.want)
			}
		})
	}
}

func TestButton_OnClick(t *testing.T) {
	clicks := 0
	b := widgets.NewButton(0, 0, 50, 20, "")
	b.OnClick = func() { clicks++ }
	var origin graphics.Point

	b.Update(input.Down(10, 10), origin)
	b.Update(input.Up(10, 10), origin)
	if clicks != 1 {
		t.Fatalf("expected 1 click, got %d", clicks)
	}

	// Released away from the button: no click.
	b.Update(input.Down(10, 10), origin)
	b.Update(input.Up(100, 100), origin)
	if clicks != 1 {
		t.Errorf("expected release outside to cancel, got %d clicks", clicks)
	}
}
