package widgets

import (
	"math"
	"strconv"

	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/input"
)

// Slider selects an integer in [Min, Max] by dragging a square handle along
// a track.
//
// The handle is Height units wide and travels Width-Height units. Dragging
// starts only when the press lands on the handle itself; pressing elsewhere
// on the track does not move it. A slider with Min >= Max is fixed at Min.
type Slider struct {
	X, Y          int
	Width, Height int
	Min, Max      int
	Value         int
	// TrackColor defaults to white.
	TrackColor graphics.Color
	// HandleColor defaults to blue.
	HandleColor graphics.Color
	// TextColor is the value text color. Defaults to white.
	TextColor graphics.Color
	Parent    Handle
	// OnChange is called after a drag changes Value.
	OnChange func(int)

	Dragging bool
}

// NewSlider returns a slider starting at value, clamped into range.
func NewSlider(x, y, width, height, minValue, maxValue, value int) Slider {
	s := Slider{
		X: x, Y: y, Width: width, Height: height,
		Min: minValue, Max: maxValue,
	}
	s.Value = s.clamp(value)
	return s
}

func (s Slider) Kind() Kind { return KindSlider }
func (s Slider) widget()    {}

// Fixed reports whether the range is empty, pinning the value to Min.
func (s *Slider) Fixed() bool {
	return s.Max <= s.Min
}

func (s *Slider) clamp(v int) int {
	if s.Fixed() || v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Percent returns the position of Value in the range, from 0 to 1.
func (s *Slider) Percent() float64 {
	if s.Fixed() {
		return 0
	}
	return float64(s.clamp(s.Value)-s.Min) / float64(s.Max-s.Min)
}

func (s *Slider) travel() int {
	return max(0, s.Width-s.Height)
}

// Handle returns the handle rectangle for a slider whose top-left corner
// is at origin.
func (s *Slider) Handle(origin graphics.Point) graphics.Rect {
	hx := origin.X + int(math.Round(s.Percent()*float64(s.travel())))
	return graphics.Rect{X: hx, Y: origin.Y, Width: s.Height, Height: s.Height}
}

// valueAt maps a pointer x coordinate to a value.
func (s *Slider) valueAt(px, originX int) int {
	if s.Fixed() {
		return s.Min
	}
	travel := max(1, s.travel())
	return s.clamp(s.Min + (px-originX)*(s.Max-s.Min)/travel)
}

// Update runs the drag state machine.
func (s *Slider) Update(ev input.Event, origin graphics.Point) {
	switch ev.Kind {
	case input.PointerDown:
		if s.Handle(origin).Contains(ev.Pos) {
			s.Dragging = true
		}
	case input.PointerMove:
		if !s.Dragging {
			return
		}
		v := s.valueAt(ev.Pos.X, origin.X)
		if v != s.Value {
			s.Value = v
			if s.OnChange != nil {
				s.OnChange(v)
			}
		}
	case input.PointerUp:
		s.Dragging = false
	}
}

// Render draws the track, the handle and the value inside the handle.
func (s *Slider) Render(surf graphics.Surface, origin graphics.Point) {
	surf.DrawRect(graphics.RectAt(origin, graphics.Size{Width: s.Width, Height: s.Height}),
		orColor(s.TrackColor, graphics.ColorWhite), graphics.Filled)

	h := s.Handle(origin)
	surf.DrawRect(h, orColor(s.HandleColor, graphics.ColorBlue), graphics.Filled)

	surf.DrawText(graphics.Point{X: h.X + s.Height/4, Y: origin.Y + s.Height/4},
		strconv.Itoa(s.Value), orColor(s.TextColor, graphics.ColorWhite), max(1, s.Height/2))
}
