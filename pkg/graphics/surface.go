// Package graphics defines the geometry, colors and drawing surface the
// widget toolkit renders through.
//
// The toolkit never rasterizes anything itself. Every widget render routine
// is expressed as a handful of calls on a Surface, which backends implement:
// see pkg/raster for an in-memory image and pkg/terminal for a terminal grid.
package graphics

// ShapeMode selects between filling a shape and stroking its outline.
type ShapeMode int

const (
	// Filled paints the interior of the shape.
	Filled ShapeMode = iota
	// Outline paints only the one-unit border of the shape.
	Outline
)

func (m ShapeMode) String() string {
	if m == Outline {
		return "outline"
	}
	return "filled"
}

// DefaultFontSize is the text size used by labels, buttons and titles.
const DefaultFontSize = 16

// Surface is the drawing target for one frame.
//
// Implementations must treat a failing call as a no-op for that call only:
// a missing font or an out-of-range rectangle never aborts the frame.
type Surface interface {
	// Clear fills the entire surface with the given color.
	Clear(c Color)

	// DrawRect draws a rectangle in the given mode.
	DrawRect(r Rect, c Color, mode ShapeMode)

	// DrawText draws a single line of text with its top-left corner at p.
	DrawText(p Point, text string, c Color, size int)

	// DrawCircle draws a circle centered at center.
	DrawCircle(center Point, radius int, c Color, mode ShapeMode)

	// DrawTriangle draws the triangle a, b, c.
	DrawTriangle(a, b, c Point, col Color, mode ShapeMode)

	// Present makes the frame visible.
	Present() error
}
