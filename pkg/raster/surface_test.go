package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/font"

	xierrors "github.com/xiform/xiform/pkg/errors"
	"github.com/xiform/xiform/pkg/graphics"
)

func at(s *Surface, x, y int) color.RGBA {
	return s.Image().RGBAAt(x, y)
}

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func TestSurface_ClearAndFill(t *testing.T) {
	s := New(20, 20)
	s.Clear(graphics.ColorWhite)
	s.DrawRect(graphics.Rect{X: 5, Y: 5, Width: 4, Height: 3}, graphics.ColorRed, graphics.Filled)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{5, 5, red},
		{8, 7, red},
		{9, 7, white},
		{8, 8, white},
		{0, 0, white},
	}
	for _, tt := range tests {
		if got := at(s, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSurface_Outline(t *testing.T) {
	s := New(20, 20)
	s.Clear(graphics.ColorWhite)
	s.DrawRect(graphics.Rect{X: 2, Y: 2, Width: 10, Height: 6}, graphics.ColorBlue, graphics.Outline)

	for _, p := range [][2]int{{2, 2}, {11, 2}, {2, 7}, {11, 7}, {6, 2}, {2, 4}} {
		if got := at(s, p[0], p[1]); got != blue {
			t.Errorf("edge pixel %v = %v, want blue", p, got)
		}
	}
	if got := at(s, 6, 4); got != white {
		t.Errorf("interior pixel = %v, want white", got)
	}
}

func TestSurface_ClipsOffscreen(t *testing.T) {
	s := New(10, 10)
	s.Clear(graphics.ColorWhite)
	s.DrawRect(graphics.Rect{X: -5, Y: -5, Width: 8, Height: 8}, graphics.ColorRed, graphics.Filled)
	s.DrawRect(graphics.Rect{X: 50, Y: 50, Width: 8, Height: 8}, graphics.ColorRed, graphics.Filled)
	s.DrawCircle(graphics.Point{X: -100, Y: 5}, 20, graphics.ColorRed, graphics.Filled)
	s.DrawText(graphics.Point{X: 500, Y: 500}, "far away", graphics.ColorBlack, 16)

	if got := at(s, 2, 2); got != red {
		t.Errorf("clipped rect missing: %v", got)
	}
	if got := at(s, 3, 3); got != white {
		t.Errorf("rect overdrawn: %v", got)
	}
}

func TestSurface_TranslucentBlends(t *testing.T) {
	s := New(4, 4)
	s.Clear(graphics.ColorWhite)
	s.DrawRect(graphics.Rect{Width: 4, Height: 4}, graphics.ColorBlack.WithAlpha(128), graphics.Filled)
	got := at(s, 1, 1)
	if got.R < 100 || got.R > 150 || got.A != 255 {
		t.Errorf("blended pixel = %v, want mid gray", got)
	}
}

func TestSurface_Circle(t *testing.T) {
	s := New(40, 40)
	s.Clear(graphics.ColorWhite)
	s.DrawCircle(graphics.Point{X: 20, Y: 20}, 10, graphics.ColorRed, graphics.Outline)

	for _, p := range [][2]int{{30, 20}, {10, 20}, {20, 30}, {20, 10}} {
		if got := at(s, p[0], p[1]); got != red {
			t.Errorf("outline point %v = %v, want red", p, got)
		}
	}
	if got := at(s, 20, 20); got != white {
		t.Errorf("outline circle filled its center")
	}

	s.DrawCircle(graphics.Point{X: 20, Y: 20}, 10, graphics.ColorBlue, graphics.Filled)
	if got := at(s, 20, 20); got != blue {
		t.Errorf("filled circle center = %v", got)
	}
	if got := at(s, 28, 28); got != white {
		t.Errorf("filled circle spilled to corner: %v", got)
	}
}

func TestSurface_Triangle(t *testing.T) {
	s := New(40, 40)
	s.Clear(graphics.ColorWhite)
	a, b, c := graphics.Point{X: 20, Y: 5}, graphics.Point{X: 5, Y: 35}, graphics.Point{X: 35, Y: 35}

	s.DrawTriangle(a, b, c, graphics.ColorRed, graphics.Outline)
	for _, p := range []graphics.Point{a, b, c, {X: 20, Y: 35}} {
		if got := at(s, p.X, p.Y); got != red {
			t.Errorf("outline point %v = %v", p, got)
		}
	}
	if got := at(s, 20, 25); got != white {
		t.Errorf("outline triangle filled its interior")
	}

	s.DrawTriangle(a, c, b, graphics.ColorBlue, graphics.Filled)
	if got := at(s, 20, 25); got != blue {
		t.Errorf("filled triangle interior = %v", got)
	}
	if got := at(s, 6, 6); got != white {
		t.Errorf("filled triangle spilled: %v", got)
	}
}

func inked(s *Surface, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if at(s, x, y) != white {
				n++
			}
		}
	}
	return n
}

func TestSurface_Text(t *testing.T) {
	s := New(120, 40)
	s.Clear(graphics.ColorWhite)
	s.DrawText(graphics.Point{X: 10, Y: 10}, "Hello", graphics.ColorBlack, 16)

	if inked(s, image.Rect(10, 10, 80, 30)) == 0 {
		t.Error("text drew nothing")
	}
	if inked(s, image.Rect(0, 0, 120, 8)) != 0 {
		t.Error("text drew above its line box")
	}
}

func TestSurface_TextFallbackFaceScales(t *testing.T) {
	s := New(200, 60)
	s.fonts.once.Do(func() { s.fonts.cache = map[int]font.Face{} })
	s.Clear(graphics.ColorWhite)
	s.DrawText(graphics.Point{X: 0, Y: 0}, "W", graphics.ColorBlack, 26)

	if inked(s, image.Rect(0, 0, 200, 60)) == 0 {
		t.Fatal("fallback text drew nothing")
	}
	if inked(s, image.Rect(0, 26, 200, 60)) != 0 {
		t.Error("scaled text overflowed its line box")
	}
	if inked(s, image.Rect(0, 13, 200, 26)) == 0 {
		t.Error("expected text scaled past the native 13px height")
	}
}

type fontErrors struct{ errs []*xierrors.ToolkitError }

func (h *fontErrors) HandleError(err *xierrors.ToolkitError) { h.errs = append(h.errs, err) }
func (h *fontErrors) HandlePanic(*xierrors.PanicError)       {}

func TestSurface_BadFontIsReportedOnce(t *testing.T) {
	h := &fontErrors{}
	xierrors.SetHandler(h)
	t.Cleanup(func() { xierrors.SetHandler(nil) })

	s := New(200, 60)
	s.fonts.data = []byte("not a font")
	s.Clear(graphics.ColorWhite)
	s.DrawText(graphics.Point{}, "W", graphics.ColorBlack, 26)
	s.DrawText(graphics.Point{X: 100}, "W", graphics.ColorBlack, 26)

	if len(h.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Kind != xierrors.KindSurface {
		t.Errorf("kind = %v, want %v", h.errs[0].Kind, xierrors.KindSurface)
	}
	if inked(s, image.Rect(0, 0, 100, 60)) == 0 {
		t.Error("fallback face drew nothing")
	}
}

func TestSurface_PresentAndPNG(t *testing.T) {
	s := New(8, 8)
	s.Clear(graphics.ColorRed)

	var got *image.RGBA
	s.OnPresent = func(img *image.RGBA) error {
		got = img
		return errors.New("display gone")
	}
	if err := s.Present(); err == nil {
		t.Error("expected OnPresent error to propagate")
	}
	if got != s.Image() || s.Presents() != 1 {
		t.Error("OnPresent did not receive the frame")
	}

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, _, _ := img.At(3, 3).RGBA(); r>>8 != 255 {
		t.Errorf("decoded pixel red = %d", r>>8)
	}
}

func TestSurface_HugeTriangleIsClipped(t *testing.T) {
	s := New(20, 20)
	s.Clear(graphics.ColorWhite)
	const far = 1 << 20
	// Covers the whole surface; only the visible pixels are scanned.
	s.DrawTriangle(
		graphics.Point{X: -far, Y: -far},
		graphics.Point{X: 2 * far, Y: -far},
		graphics.Point{X: -far, Y: 2 * far},
		graphics.ColorRed, graphics.Filled)
	for _, p := range [][2]int{{0, 0}, {19, 0}, {0, 19}, {19, 19}} {
		if got := at(s, p[0], p[1]); got != red {
			t.Errorf("pixel %v = %v, want red", p, got)
		}
	}

	s.Clear(graphics.ColorWhite)
	s.DrawTriangle(
		graphics.Point{X: far, Y: far},
		graphics.Point{X: 2 * far, Y: far},
		graphics.Point{X: far, Y: 2 * far},
		graphics.ColorRed, graphics.Filled)
	s.DrawCircle(graphics.Point{X: -far, Y: -far}, far/2, graphics.ColorRed, graphics.Filled)
	if n := inked(s, s.Image().Bounds()); n != 0 {
		t.Errorf("offscreen shapes inked %d pixels", n)
	}
}
