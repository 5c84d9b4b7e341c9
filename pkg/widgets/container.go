package widgets

import (
	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/input"
)

// TitleBarHeight is the height of a container's title bar.
const TitleBarHeight = 30

const titleInset = 10

// Container is a rectangular frame that other widgets can be positioned in.
//
// A container with a Title draws a title bar across its top edge. When
// Movable is also set, pressing the pointer on the bar and moving it drags
// the container, and every widget parented to it, around the surface.
// Containers are not clamped to the surface while dragged.
type Container struct {
	X, Y          int
	Width, Height int
	// Color fills the body.
	Color graphics.Color
	// Title is drawn in the title bar. Empty means no title bar.
	Title string
	// Movable enables dragging by the title bar.
	Movable bool
	// TitleBarColor fills the title bar. Defaults to light gray.
	TitleBarColor graphics.Color
	// TitleColor is the title text color. Defaults to blue.
	TitleColor graphics.Color
	// BorderColor outlines the body. Defaults to Color.
	BorderColor graphics.Color

	dragging bool
	grab     graphics.Point
}

// NewContainer returns a container with the given geometry.
func NewContainer(x, y, width, height int, color graphics.Color, title string, movable bool) Container {
	return Container{
		X: x, Y: y, Width: width, Height: height,
		Color:   color,
		Title:   title,
		Movable: movable,
	}
}

func (c Container) Kind() Kind { return KindContainer }
func (c Container) widget()    {}

// Origin returns the top-left corner children are positioned against.
func (c *Container) Origin() graphics.Point {
	return graphics.Point{X: c.X, Y: c.Y}
}

// Bounds returns the container rectangle.
func (c *Container) Bounds() graphics.Rect {
	return graphics.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// TitleBar returns the title bar rectangle, or an empty Rect when the
// container has no title.
func (c *Container) TitleBar() graphics.Rect {
	if c.Title == "" {
		return graphics.Rect{}
	}
	return graphics.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: TitleBarHeight}
}

// Dragging reports whether the container is being dragged.
func (c *Container) Dragging() bool {
	return c.dragging
}

// GrabOffset returns the pointer position relative to the container origin
// at the moment the drag started.
func (c *Container) GrabOffset() graphics.Point {
	return c.grab
}

// Update advances the drag state machine.
func (c *Container) Update(ev input.Event) {
	if !c.Movable {
		c.dragging = false
		c.grab = graphics.Point{}
		return
	}
	switch ev.Kind {
	case input.PointerDown:
		if c.TitleBar().Contains(ev.Pos) {
			c.dragging = true
			c.grab = ev.Pos.Sub(c.Origin())
		}
	case input.PointerMove:
		if c.dragging {
			p := ev.Pos.Sub(c.grab)
			c.X, c.Y = p.X, p.Y
		}
	case input.PointerUp:
		c.dragging = false
	}
}

// Render draws the body, then the title bar and the outline.
func (c *Container) Render(s graphics.Surface) {
	body := c.Bounds()
	s.DrawRect(body, c.Color, graphics.Filled)

	if c.Title != "" {
		s.DrawRect(c.TitleBar(), orColor(c.TitleBarColor, graphics.ColorLightGray), graphics.Filled)
		s.DrawText(graphics.Point{X: c.X + titleInset, Y: c.Y + TitleBarHeight/4},
			c.Title, orColor(c.TitleColor, graphics.ColorBlue), graphics.DefaultFontSize)
		body.Y += TitleBarHeight
		body.Height -= TitleBarHeight
	}

	s.DrawRect(body, orColor(c.BorderColor, c.Color), graphics.Outline)
}
