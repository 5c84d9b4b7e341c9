// Package input defines the normalized events the toolkit consumes.
//
// Backends translate their platform events (terminal mouse reports, window
// system messages, scripted test input) into Event values; the widget core
// never sees anything else.
package input

import (
	"fmt"

	"github.com/xiform/xiform/pkg/graphics"
)

// Kind identifies the type of an Event.
type Kind int

const (
	// PointerMove reports a new pointer position.
	PointerMove Kind = iota
	// PointerDown reports a primary button press at Pos.
	PointerDown
	// PointerUp reports a primary button release at Pos.
	PointerUp
	// TextInput carries one or more characters in Text.
	TextInput
	// KeyDown carries a non-text key in Key.
	KeyDown
	// Quit asks the loop to stop.
	Quit
)

func (k Kind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case TextInput:
		return "text"
	case KeyDown:
		return "key"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Key is a non-text key symbol.
type Key int

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyTab
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyTab:       "tab",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey returns the Key with the given name, as printed by Key.String.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name && k != KeyUnknown {
			return k, true
		}
	}
	return KeyUnknown, false
}

// Event is a single normalized input event.
type Event struct {
	Kind Kind
	// Pos is the pointer position in surface units. Set for pointer events.
	Pos graphics.Point
	// Text is the submitted text for TextInput events.
	Text string
	// Key is the key symbol for KeyDown events.
	Key Key
}

// Move builds a PointerMove event.
func Move(x, y int) Event {
	return Event{Kind: PointerMove, Pos: graphics.Point{X: x, Y: y}}
}

// Down builds a PointerDown event.
func Down(x, y int) Event {
	return Event{Kind: PointerDown, Pos: graphics.Point{X: x, Y: y}}
}

// Up builds a PointerUp event.
func Up(x, y int) Event {
	return Event{Kind: PointerUp, Pos: graphics.Point{X: x, Y: y}}
}

// Text builds a TextInput event.
func Text(s string) Event {
	return Event{Kind: TextInput, Text: s}
}

// Press builds a KeyDown event.
func Press(k Key) Event {
	return Event{Kind: KeyDown, Key: k}
}

// IsPointer reports whether the event carries a pointer position.
func (e Event) IsPointer() bool {
	return e.Kind == PointerMove || e.Kind == PointerDown || e.Kind == PointerUp
}

func (e Event) String() string {
	switch e.Kind {
	case PointerMove, PointerDown, PointerUp:
		return fmt.Sprintf("%s:%d,%d", e.Kind, e.Pos.X, e.Pos.Y)
	case TextInput:
		return fmt.Sprintf("text:%s", e.Text)
	case KeyDown:
		return fmt.Sprintf("key:%s", e.Key)
	default:
		return e.Kind.String()
	}
}
