package raster

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/xiform/xiform/pkg/graphics"
)

// Surface draws into an *image.RGBA.
type Surface struct {
	img   *image.RGBA
	fonts fontBank

	// OnPresent, if set, receives the finished frame on Present.
	OnPresent func(*image.RGBA) error

	presents int
}

var _ graphics.Surface = (*Surface)(nil)

// New returns a surface of the given size, cleared to transparent.
func New(width, height int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, max(0, width), max(0, height)))}
}

// Image returns the backing image. It is redrawn in place each frame.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Size returns the surface dimensions.
func (s *Surface) Size() graphics.Size {
	b := s.img.Bounds()
	return graphics.Size{Width: b.Dx(), Height: b.Dy()}
}

// Presents returns how many frames have been presented.
func (s *Surface) Presents() int {
	return s.presents
}

func (s *Surface) Clear(c graphics.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

func (s *Surface) DrawRect(r graphics.Rect, c graphics.Color, mode graphics.ShapeMode) {
	if r.Empty() {
		return
	}
	if mode == graphics.Filled {
		s.fill(r, c)
		return
	}
	s.fill(graphics.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: 1}, c)
	s.fill(graphics.Rect{X: r.X, Y: r.Y + r.Height - 1, Width: r.Width, Height: 1}, c)
	s.fill(graphics.Rect{X: r.X, Y: r.Y, Width: 1, Height: r.Height}, c)
	s.fill(graphics.Rect{X: r.X + r.Width - 1, Y: r.Y, Width: 1, Height: r.Height}, c)
}

func (s *Surface) bounds() graphics.Rect {
	b := s.img.Bounds()
	return graphics.Rect{X: b.Min.X, Y: b.Min.Y, Width: b.Dx(), Height: b.Dy()}
}

func (s *Surface) fill(r graphics.Rect, c graphics.Color) {
	r = r.Intersect(s.bounds())
	if r.Empty() {
		return
	}
	rect := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
	draw.Draw(s.img, rect, image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
}

func (s *Surface) plot(x, y int, c graphics.Color) {
	s.fill(graphics.Rect{X: x, Y: y, Width: 1, Height: 1}, c)
}

func (s *Surface) hspan(x0, x1, y int, c graphics.Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	s.fill(graphics.Rect{X: x0, Y: y, Width: x1 - x0 + 1, Height: 1}, c)
}

// DrawText renders text with its top-left corner at p. The line box is
// size pixels tall.
func (s *Surface) DrawText(p graphics.Point, text string, c graphics.Color, size int) {
	if text == "" || c.Transparent() {
		return
	}
	face, exact := s.fonts.face(size)
	m := face.Metrics()
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.P(p.X, p.Y+m.Ascent.Ceil()),
	}
	if exact || size <= 0 {
		d.DrawString(text)
		return
	}

	// The fallback bitmap face has one size; draw it natively and scale
	// the result into the requested line box.
	width := d.MeasureString(text).Ceil()
	height := m.Height.Ceil()
	if width <= 0 || height <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, width, height))
	d.Dst = tmp
	d.Dot = fixed.P(0, m.Ascent.Ceil())
	d.DrawString(text)
	dst := image.Rect(p.X, p.Y, p.X+width*size/height, p.Y+size)
	draw.NearestNeighbor.Scale(s.img, dst, tmp, tmp.Bounds(), draw.Over, nil)
}

// DrawCircle uses the midpoint circle algorithm.
func (s *Surface) DrawCircle(center graphics.Point, radius int, c graphics.Color, mode graphics.ShapeMode) {
	if radius < 0 {
		return
	}
	box := graphics.Rect{X: center.X - radius, Y: center.Y - radius, Width: 2*radius + 1, Height: 2*radius + 1}
	if box.Intersect(s.bounds()).Empty() {
		return
	}
	cx, cy := center.X, center.Y
	x, y := radius, 0
	err := 1 - radius
	for x >= y {
		if mode == graphics.Filled {
			s.hspan(cx-x, cx+x, cy+y, c)
			if y != 0 {
				s.hspan(cx-x, cx+x, cy-y, c)
			}
			if x != y {
				s.hspan(cx-y, cx+y, cy+x, c)
				s.hspan(cx-y, cx+y, cy-x, c)
			}
		} else {
			for _, pt := range [...][2]int{
				{cx + x, cy + y}, {cx + y, cy + x}, {cx - y, cy + x}, {cx - x, cy + y},
				{cx - x, cy - y}, {cx - y, cy - x}, {cx + y, cy - x}, {cx + x, cy - y},
			} {
				s.plot(pt[0], pt[1], c)
			}
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func (s *Surface) DrawTriangle(a, b, c graphics.Point, col graphics.Color, mode graphics.ShapeMode) {
	if mode == graphics.Outline {
		s.line(a, b, col)
		s.line(b, c, col)
		s.line(c, a, col)
		return
	}

	area := edge(a, b, c)
	if area == 0 {
		s.line(a, b, col)
		s.line(b, c, col)
		return
	}
	minX, minY := min(a.X, b.X, c.X), min(a.Y, b.Y, c.Y)
	box := graphics.Rect{
		X: minX, Y: minY,
		Width:  max(a.X, b.X, c.X) - minX + 1,
		Height: max(a.Y, b.Y, c.Y) - minY + 1,
	}.Intersect(s.bounds())
	if box.Empty() {
		return
	}
	minX, maxX := box.X, box.X+box.Width-1
	minY, maxY := box.Y, box.Y+box.Height-1
	for y := minY; y <= maxY; y++ {
		start, end := 0, -1
		for x := minX; x <= maxX; x++ {
			p := graphics.Point{X: x, Y: y}
			w0, w1, w2 := edge(b, c, p), edge(c, a, p), edge(a, b, p)
			if (area > 0 && w0 >= 0 && w1 >= 0 && w2 >= 0) || (area < 0 && w0 <= 0 && w1 <= 0 && w2 <= 0) {
				if end < start {
					start = x
				}
				end = x
			}
		}
		if end >= start {
			s.hspan(start, end, y, col)
		}
	}
}

// edge is twice the signed area of the triangle a, b, p.
func edge(a, b, p graphics.Point) int {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// line draws a one-pixel Bresenham line including both end points.
func (s *Surface) line(p0, p1 graphics.Point, c graphics.Color) {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	err := dx + dy
	x, y := p0.X, p0.Y
	for {
		s.plot(x, y, c)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Present hands the frame to OnPresent, if set.
func (s *Surface) Present() error {
	s.presents++
	if s.OnPresent != nil {
		return s.OnPresent(s.img)
	}
	return nil
}

// WritePNG encodes the current frame as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}
