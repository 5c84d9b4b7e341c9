package widgets

import (
	"github.com/xiform/xiform/pkg/graphics"
)

// Label is a line of text on an optional background box.
type Label struct {
	X, Y          int
	Width, Height int
	Text          string
	// TextColor defaults to black.
	TextColor graphics.Color
	// Color fills the box. A fully transparent color draws no box.
	Color    graphics.Color
	FontSize int
	Parent   Handle
}

// NewLabel returns a label.
func NewLabel(x, y, width, height int, text string, textColor, color graphics.Color) Label {
	return Label{
		X: x, Y: y, Width: width, Height: height,
		Text:      text,
		TextColor: textColor,
		Color:     color,
	}
}

func (l Label) Kind() Kind { return KindLabel }
func (l Label) widget()    {}

// Render draws the box and the inset text.
func (l *Label) Render(s graphics.Surface, origin graphics.Point) {
	if !l.Color.Transparent() {
		s.DrawRect(graphics.RectAt(origin, graphics.Size{Width: l.Width, Height: l.Height}), l.Color, graphics.Filled)
	}
	s.DrawText(origin.Add(graphics.Point{X: defaultTextInset, Y: defaultTextInset}),
		l.Text, orColor(l.TextColor, defaultTextColor), orInt(l.FontSize, graphics.DefaultFontSize))
}

// Text is bare text with no box.
type Text struct {
	X, Y     int
	Content  string
	Color    graphics.Color
	FontSize int
	Parent   Handle
}

// NewText returns a text widget.
func NewText(content string, x, y int, color graphics.Color, fontSize int) Text {
	return Text{X: x, Y: y, Content: content, Color: color, FontSize: fontSize}
}

func (t Text) Kind() Kind { return KindText }
func (t Text) widget()    {}

// Render draws the text at origin.
func (t *Text) Render(s graphics.Surface, origin graphics.Point) {
	s.DrawText(origin, t.Content, orColor(t.Color, defaultTextColor), orInt(t.FontSize, graphics.DefaultFontSize))
}
