package widgets

import (
	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/input"
)

// Button is a push button that highlights under the pointer.
type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	// TextColor defaults to black.
	TextColor graphics.Color
	// Color is the idle background.
	Color graphics.Color
	// HoverColor is the background while the pointer is over the button.
	HoverColor graphics.Color
	// ClickColor is the background while the button is pressed.
	ClickColor graphics.Color
	FontSize   int
	Parent     Handle
	// OnClick is called when a press is released over the button.
	OnClick func()

	Hovered bool
	Clicked bool
}

// NewButton returns a button with the default palette.
func NewButton(x, y, width, height int, text string) Button {
	return Button{
		X: x, Y: y, Width: width, Height: height,
		Text:       text,
		TextColor:  graphics.ColorWhite,
		Color:      graphics.ColorBlue,
		HoverColor: graphics.ColorDarkBlue,
		ClickColor: graphics.ColorRed,
	}
}

func (b Button) Kind() Kind { return KindButton }
func (b Button) widget()    {}

// Bounds returns the button rectangle with its top-left corner at origin.
func (b *Button) Bounds(origin graphics.Point) graphics.Rect {
	return graphics.RectAt(origin, graphics.Size{Width: b.Width, Height: b.Height})
}

// Update tracks hover and press state. A release anywhere ends the press.
func (b *Button) Update(ev input.Event, origin graphics.Point) {
	switch ev.Kind {
	case input.PointerMove:
		b.Hovered = b.Bounds(origin).Contains(ev.Pos)
	case input.PointerDown:
		b.Hovered = b.Bounds(origin).Contains(ev.Pos)
		if b.Hovered {
			b.Clicked = true
		}
	case input.PointerUp:
		if b.Clicked && b.OnClick != nil && b.Bounds(origin).Contains(ev.Pos) {
			b.OnClick()
		}
		b.Clicked = false
	}
}

// CurrentColor returns the background for the current state.
func (b *Button) CurrentColor() graphics.Color {
	switch {
	case b.Clicked:
		return b.ClickColor
	case b.Hovered:
		return b.HoverColor
	default:
		return b.Color
	}
}

// Render draws the background and the text.
func (b *Button) Render(s graphics.Surface, origin graphics.Point) {
	s.DrawRect(b.Bounds(origin), b.CurrentColor(), graphics.Filled)
	s.DrawText(origin.Add(graphics.Point{X: buttonTextInset, Y: buttonTextInset}),
		b.Text, orColor(b.TextColor, defaultTextColor), orInt(b.FontSize, graphics.DefaultFontSize))
}
