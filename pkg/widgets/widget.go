package widgets

import (
	"fmt"

	"github.com/xiform/xiform/pkg/graphics"
)

// Kind identifies the concrete type of a Widget.
type Kind int

const (
	KindContainer Kind = iota
	KindButton
	KindLabel
	KindText
	KindSlider
	KindTextEntry
	KindShape
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "Container"
	case KindButton:
		return "Button"
	case KindLabel:
		return "Label"
	case KindText:
		return "Text"
	case KindSlider:
		return "Slider"
	case KindTextEntry:
		return "TextEntry"
	case KindShape:
		return "Shape"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Widget is implemented by the widget types in this package and no others.
type Widget interface {
	// Kind returns the concrete widget type.
	Kind() Kind
	widget()
}

// Handle addresses a widget stored in a Registry. The zero Handle refers to
// nothing; as a Parent it means "positioned in surface coordinates".
type Handle int

// Valid reports whether h can refer to a widget.
func (h Handle) Valid() bool {
	return h > 0
}

func (h Handle) index() int {
	return int(h) - 1
}

// defaults applied when a color or size field is left zero.
const (
	defaultTextInset = 5
	buttonTextInset  = 10
)

var (
	defaultTextColor = graphics.ColorBlack
	defaultBorder    = graphics.ColorBlue
)

func orColor(c, fallback graphics.Color) graphics.Color {
	if c == 0 {
		return fallback
	}
	return c
}

func orInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
