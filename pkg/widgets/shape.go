package widgets

import (
	"github.com/xiform/xiform/pkg/graphics"
)

// ShapeKind selects the primitive a Shape draws.
type ShapeKind int

const (
	// ShapeRect fills or outlines the bounds.
	ShapeRect ShapeKind = iota
	// ShapeCircle draws the largest circle centered in the bounds.
	ShapeCircle
	// ShapeTriangle draws an upright triangle with its apex at the top
	// center of the bounds.
	ShapeTriangle
)

// Shape is a non-interactive primitive, useful for decoration and for
// marking regions inside a container.
type Shape struct {
	X, Y          int
	Width, Height int
	Shape         ShapeKind
	Color         graphics.Color
	Mode          graphics.ShapeMode
	Parent        Handle
}

// NewShape returns a shape.
func NewShape(kind ShapeKind, x, y, width, height int, color graphics.Color, mode graphics.ShapeMode) Shape {
	return Shape{X: x, Y: y, Width: width, Height: height, Shape: kind, Color: color, Mode: mode}
}

func (s Shape) Kind() Kind { return KindShape }
func (s Shape) widget()    {}

// Render draws the primitive inside the bounds at origin.
func (s *Shape) Render(surf graphics.Surface, origin graphics.Point) {
	switch s.Shape {
	case ShapeCircle:
		radius := min(s.Width, s.Height) / 2
		surf.DrawCircle(origin.Add(graphics.Point{X: s.Width / 2, Y: s.Height / 2}), radius, s.Color, s.Mode)
	case ShapeTriangle:
		surf.DrawTriangle(
			origin.Add(graphics.Point{X: s.Width / 2}),
			origin.Add(graphics.Point{Y: s.Height}),
			origin.Add(graphics.Point{X: s.Width, Y: s.Height}),
			s.Color, s.Mode)
	default:
		surf.DrawRect(graphics.RectAt(origin, graphics.Size{Width: s.Width, Height: s.Height}), s.Color, s.Mode)
	}
}
