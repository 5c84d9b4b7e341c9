package widgets

import (
	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/input"
	"github.com/xiform/xiform/pkg/textedit"
)

// Text entry layout defaults, in surface units.
const (
	DefaultGlyphAdvance = 10
	DefaultPadding      = 10
	caretWidth          = 2
)

// TextEntry is a single-line editable text field.
//
// A press inside the field focuses it and a press anywhere else blurs it;
// only a focused entry consumes text and key events. When the text is wider
// than the field it scrolls horizontally to keep the cursor in view.
//
// The zero value is usable and holds up to textedit.DefaultCapacity-1 runes.
type TextEntry struct {
	X, Y          int
	Width, Height int
	FontSize      int
	// TextColor defaults to black.
	TextColor graphics.Color
	// Color fills the field.
	Color graphics.Color
	// BorderColor outlines the field. Defaults to blue.
	BorderColor graphics.Color
	// GlyphAdvance is the width of one character. Defaults to DefaultGlyphAdvance.
	GlyphAdvance int
	// Padding is the left inset of the text. Zero means DefaultPadding,
	// negative means none.
	Padding int
	Parent  Handle
	// OnChange is called after each edit with the new text.
	OnChange func(string)
	// OnSubmit is called with the text when Enter is pressed.
	OnSubmit func(string)

	Active bool

	buf  textedit.Buffer
	view textedit.Viewport
}

// NewTextEntry returns an empty, unfocused entry.
func NewTextEntry(x, y, width, height, fontSize int, textColor, color graphics.Color) TextEntry {
	return TextEntry{
		X: x, Y: y, Width: width, Height: height,
		FontSize:  fontSize,
		TextColor: textColor,
		Color:     color,
		buf:       textedit.NewBuffer(textedit.DefaultCapacity),
	}
}

// WithCapacity returns a copy of the entry whose buffer holds up to
// capacity-1 runes. Existing text is kept, truncated if needed.
func (e TextEntry) WithCapacity(capacity int) TextEntry {
	text := e.buf.String()
	e.buf = textedit.NewBuffer(capacity)
	e.buf.SetText(text)
	e.view = textedit.Viewport{}
	e.scroll()
	return e
}

// WithText returns a copy of the entry holding text, with the cursor at
// the end.
func (e TextEntry) WithText(text string) TextEntry {
	e.buf = e.buf.Clone()
	e.buf.SetText(text)
	e.scroll()
	return e
}

func (e TextEntry) Kind() Kind { return KindTextEntry }
func (e TextEntry) widget()    {}

// Text returns the current contents.
func (e *TextEntry) Text() string {
	return e.buf.String()
}

// Cursor returns the cursor position in runes.
func (e *TextEntry) Cursor() int {
	return e.buf.Cursor()
}

// Offset returns the index of the leftmost visible rune.
func (e *TextEntry) Offset() int {
	return e.view.Offset()
}

// Capacity returns the buffer capacity.
func (e *TextEntry) Capacity() int {
	return e.buf.Capacity()
}

// MaxVisible returns how many characters fit in the field.
func (e *TextEntry) MaxVisible() int {
	return textedit.MaxVisible(e.Width, e.padding(), e.advance())
}

// Visible returns the substring currently shown.
func (e *TextEntry) Visible() string {
	return e.view.Visible(&e.buf, e.MaxVisible())
}

// Bounds returns the field rectangle with its top-left corner at origin.
func (e *TextEntry) Bounds(origin graphics.Point) graphics.Rect {
	return graphics.RectAt(origin, graphics.Size{Width: e.Width, Height: e.Height})
}

func (e *TextEntry) advance() int {
	return orInt(e.GlyphAdvance, DefaultGlyphAdvance)
}

func (e *TextEntry) padding() int {
	if e.Padding < 0 {
		return 0
	}
	return orInt(e.Padding, DefaultPadding)
}

func (e *TextEntry) scroll() {
	e.view.Scroll(e.buf.Cursor(), e.MaxVisible())
}

// Update handles focus changes and, while focused, editing.
func (e *TextEntry) Update(ev input.Event, origin graphics.Point) {
	if ev.Kind == input.PointerDown {
		e.Active = e.Bounds(origin).Contains(ev.Pos)
		return
	}
	if !e.Active {
		return
	}

	changed := false
	switch ev.Kind {
	case input.TextInput:
		changed = e.buf.Insert(ev.Text)
	case input.KeyDown:
		switch ev.Key {
		case input.KeyBackspace:
			changed = e.buf.Backspace()
		case input.KeyDelete:
			changed = e.buf.Delete()
		case input.KeyLeft:
			e.buf.Left()
		case input.KeyRight:
			e.buf.Right()
		case input.KeyHome:
			e.buf.Home()
		case input.KeyEnd:
			e.buf.End()
		case input.KeyEnter:
			if e.OnSubmit != nil {
				e.OnSubmit(e.buf.String())
			}
		}
	default:
		return
	}

	e.scroll()
	if changed && e.OnChange != nil {
		e.OnChange(e.buf.String())
	}
}

// Render draws the field, its visible text and, when focused, the caret.
func (e *TextEntry) Render(s graphics.Surface, origin graphics.Point) {
	bounds := e.Bounds(origin)
	s.DrawRect(bounds, e.Color, graphics.Filled)
	s.DrawRect(bounds, orColor(e.BorderColor, defaultBorder), graphics.Outline)

	e.scroll()
	fontSize := orInt(e.FontSize, graphics.DefaultFontSize)
	textColor := orColor(e.TextColor, defaultTextColor)
	s.DrawText(graphics.Point{X: origin.X + e.padding(), Y: origin.Y + defaultTextInset},
		e.Visible(), textColor, fontSize)

	if e.Active {
		caretX := origin.X + e.padding() + (e.buf.Cursor()-e.view.Offset())*e.advance()
		s.DrawRect(graphics.Rect{X: caretX, Y: origin.Y + defaultTextInset, Width: caretWidth, Height: fontSize},
			textColor, graphics.Filled)
	}
}
