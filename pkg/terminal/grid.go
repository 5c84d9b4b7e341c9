package terminal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/xiform/xiform/pkg/graphics"
)

// Default cell size in surface units. The text entry glyph advance is one
// cell wide.
const (
	CellWidth  = 10
	CellHeight = 20
)

// Cell is one character position.
type Cell struct {
	Rune rune
	FG   graphics.Color
	BG   graphics.Color
	// Cont marks the second half of a double-width rune.
	Cont bool
}

var blank = Cell{Rune: ' '}

// Grid is a graphics.Surface backed by a cols x rows character grid.
type Grid struct {
	cols, rows   int
	cellW, cellH int
	cells        []Cell

	frame    string
	presents int
	styles   map[[2]graphics.Color]lipgloss.Style
}

var _ graphics.Surface = (*Grid)(nil)

// NewGrid returns a blank grid using the default cell size.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{cellW: CellWidth, cellH: CellHeight, styles: map[[2]graphics.Color]lipgloss.Style{}}
	g.Resize(cols, rows)
	return g
}

// Resize discards the contents and changes the grid dimensions.
func (g *Grid) Resize(cols, rows int) {
	g.cols, g.rows = max(0, cols), max(0, rows)
	g.cells = make([]Cell, g.cols*g.rows)
	for i := range g.cells {
		g.cells[i] = blank
	}
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the surface units covered by one cell.
func (g *Grid) CellSize() graphics.Size {
	return graphics.Size{Width: g.cellW, Height: g.cellH}
}

// SetCellSize changes the surface units covered by one cell. Values below
// 1 keep the current size.
func (g *Grid) SetCellSize(width, height int) {
	if width >= 1 {
		g.cellW = width
	}
	if height >= 1 {
		g.cellH = height
	}
}

// Cell returns the cell at col, row, or a blank cell when out of range.
func (g *Grid) Cell(col, row int) Cell {
	if !g.in(col, row) {
		return blank
	}
	return g.cells[row*g.cols+col]
}

func (g *Grid) in(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.cols && row < g.rows
}

func (g *Grid) at(col, row int) *Cell {
	if !g.in(col, row) {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// paint sets the background of a cell and erases its rune.
func (g *Grid) paint(col, row int, c graphics.Color) {
	if cell := g.at(col, row); cell != nil {
		*cell = Cell{Rune: ' ', BG: c}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// span returns the cells covering [start, start+length) along one axis.
func span(start, length, unit int) (first, last int) {
	return floorDiv(start, unit), floorDiv(start+length-1, unit)
}

// clip limits an inclusive cell range to the grid. Nothing is visible when
// the returned first index exceeds the last.
func (g *Grid) clip(c0, c1, r0, r1 int) (int, int, int, int) {
	v := graphics.Rect{X: c0, Y: r0, Width: c1 - c0 + 1, Height: r1 - r0 + 1}.
		Intersect(graphics.Rect{Width: g.cols, Height: g.rows})
	return v.X, v.X + v.Width - 1, v.Y, v.Y + v.Height - 1
}

// center returns the surface position of the middle of a cell.
func (g *Grid) center(col, row int) (float64, float64) {
	return float64(col*g.cellW) + float64(g.cellW)/2, float64(row*g.cellH) + float64(g.cellH)/2
}

func (g *Grid) Clear(c graphics.Color) {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', BG: c}
	}
}

func (g *Grid) DrawRect(r graphics.Rect, c graphics.Color, mode graphics.ShapeMode) {
	if r.Empty() || c.Transparent() {
		return
	}
	c0, c1 := span(r.X, r.Width, g.cellW)
	r0, r1 := span(r.Y, r.Height, g.cellH)

	vc0, vc1, vr0, vr1 := g.clip(c0, c1, r0, r1)

	if mode == graphics.Filled {
		for row := vr0; row <= vr1; row++ {
			for col := vc0; col <= vc1; col++ {
				g.paint(col, row, c)
			}
		}
		return
	}

	for col := vc0; col <= vc1; col++ {
		g.border(col, r0, '─', c)
		g.border(col, r1, '─', c)
	}
	for row := vr0; row <= vr1; row++ {
		g.border(c0, row, '│', c)
		g.border(c1, row, '│', c)
	}
	g.border(c0, r0, '┌', c)
	g.border(c1, r0, '┐', c)
	g.border(c0, r1, '└', c)
	g.border(c1, r1, '┘', c)
}

func (g *Grid) border(col, row int, r rune, c graphics.Color) {
	if cell := g.at(col, row); cell != nil {
		cell.Rune, cell.FG, cell.Cont = r, c, false
	}
}

// DrawText writes text on the row containing the middle of its line box,
// starting in the column containing p.
func (g *Grid) DrawText(p graphics.Point, text string, c graphics.Color, size int) {
	if text == "" || c.Transparent() {
		return
	}
	row := floorDiv(p.Y+max(size, 1)/2, g.cellH)
	col := floorDiv(p.X, g.cellW)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cell := g.at(col, row); cell != nil {
			cell.Rune, cell.FG, cell.Cont = r, c, false
		}
		if w == 2 {
			if cell := g.at(col+1, row); cell != nil {
				cell.Rune, cell.FG, cell.Cont = 0, c, true
			}
		}
		col += w
	}
}

// DrawCircle paints the cells whose centers fall inside the circle, or
// within half a cell of its edge for an outline.
func (g *Grid) DrawCircle(center graphics.Point, radius int, c graphics.Color, mode graphics.ShapeMode) {
	if radius < 0 || c.Transparent() {
		return
	}
	c0, c1 := span(center.X-radius, 2*radius+1, g.cellW)
	r0, r1 := span(center.Y-radius, 2*radius+1, g.cellH)
	c0, c1, r0, r1 = g.clip(c0, c1, r0, r1)
	half := float64(g.cellW) / 2
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := g.center(col, row)
			d := math.Hypot(x-float64(center.X), y-float64(center.Y))
			if mode == graphics.Filled && d <= float64(radius) ||
				mode == graphics.Outline && math.Abs(d-float64(radius)) <= half {
				g.paint(col, row, c)
			}
		}
	}
}

func (g *Grid) DrawTriangle(a, b, c graphics.Point, col graphics.Color, mode graphics.ShapeMode) {
	if col.Transparent() {
		return
	}
	if mode == graphics.Outline {
		g.line(a, b, col)
		g.line(b, c, col)
		g.line(c, a, col)
		return
	}
	minX, maxX := min(a.X, b.X, c.X), max(a.X, b.X, c.X)
	minY, maxY := min(a.Y, b.Y, c.Y), max(a.Y, b.Y, c.Y)
	c0, c1 := span(minX, maxX-minX+1, g.cellW)
	r0, r1 := span(minY, maxY-minY+1, g.cellH)
	c0, c1, r0, r1 = g.clip(c0, c1, r0, r1)
	area := edge(a, b, float64(c.X), float64(c.Y))
	for row := r0; row <= r1; row++ {
		for cc := c0; cc <= c1; cc++ {
			x, y := g.center(cc, row)
			w0, w1, w2 := edge(b, c, x, y), edge(c, a, x, y), edge(a, b, x, y)
			if area > 0 && w0 >= 0 && w1 >= 0 && w2 >= 0 || area < 0 && w0 <= 0 && w1 <= 0 && w2 <= 0 {
				g.paint(cc, row, col)
			}
		}
	}
}

// edge is twice the signed area of the triangle a, b, (px, py).
func edge(a, b graphics.Point, px, py float64) float64 {
	return float64(b.X-a.X)*(py-float64(a.Y)) - float64(b.Y-a.Y)*(px-float64(a.X))
}

// line paints every cell the segment passes through, sampled at quarter
// cell steps.
func (g *Grid) line(p0, p1 graphics.Point, c graphics.Color) {
	dx, dy := float64(p1.X-p0.X), float64(p1.Y-p0.Y)
	step := float64(min(g.cellW, g.cellH)) / 4
	n := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))/step)) + 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x := float64(p0.X) + dx*t
		y := float64(p0.Y) + dy*t
		g.paint(floorDiv(int(math.Floor(x)), g.cellW), floorDiv(int(math.Floor(y)), g.cellH), c)
	}
}

// Present renders the grid into the frame returned by Frame.
func (g *Grid) Present() error {
	g.frame = g.Render()
	g.presents++
	return nil
}

// Frame returns the last presented frame.
func (g *Grid) Frame() string {
	return g.frame
}

// Presents returns how many frames have been presented.
func (g *Grid) Presents() int {
	return g.presents
}

// Text returns the grid contents without styling, one line per row.
func (g *Grid) Text() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row*g.cols+col]
			if cell.Cont {
				continue
			}
			b.WriteRune(cell.Rune)
		}
	}
	return b.String()
}

// Render styles the grid with lipgloss, one run per change of colors.
func (g *Grid) Render() string {
	var b strings.Builder
	var run strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var key [2]graphics.Color
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(g.style(key).Render(run.String()))
				run.Reset()
			}
		}
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row*g.cols+col]
			if cell.Cont {
				continue
			}
			k := [2]graphics.Color{cell.FG, cell.BG}
			if k != key {
				flush()
				key = k
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return b.String()
}

func (g *Grid) style(key [2]graphics.Color) lipgloss.Style {
	if s, ok := g.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg := key[0]; !fg.Transparent() {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg := key[1]; !bg.Transparent() {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	g.styles[key] = s
	return s
}
