package testing

import (
	"fmt"

	"github.com/xiform/xiform/pkg/graphics"
)

// DisplayOp is one recorded Surface call.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// Recorder is a graphics.Surface that records every call instead of
// drawing. The zero value is ready to use.
type Recorder struct {
	ops []DisplayOp

	// Presents counts calls to Present.
	Presents int
	// PresentErr, when set, is returned from Present.
	PresentErr error
}

var _ graphics.Surface = (*Recorder)(nil)

// Ops returns the operations recorded since the last Clear or Reset.
func (r *Recorder) Ops() []DisplayOp {
	return r.ops
}

// Reset discards recorded operations.
func (r *Recorder) Reset() {
	r.ops = nil
}

// Clear starts a new frame. Earlier operations are discarded since the
// clear paints over them.
func (r *Recorder) Clear(c graphics.Color) {
	r.ops = append(r.ops[:0], DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(c)),
	})
}

func (r *Recorder) DrawRect(rect graphics.Rect, c graphics.Color, mode graphics.ShapeMode) {
	r.ops = append(r.ops, DisplayOp{
		Op: "drawRect",
		Params: sortedMap(
			"rect", serializeRect(rect),
			"color", serializeColor(c),
			"mode", mode.String(),
		),
	})
}

func (r *Recorder) DrawText(p graphics.Point, text string, c graphics.Color, size int) {
	r.ops = append(r.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"x", p.X,
			"y", p.Y,
			"text", text,
			"color", serializeColor(c),
			"size", size,
		),
	})
}

func (r *Recorder) DrawCircle(center graphics.Point, radius int, c graphics.Color, mode graphics.ShapeMode) {
	r.ops = append(r.ops, DisplayOp{
		Op: "drawCircle",
		Params: sortedMap(
			"x", center.X,
			"y", center.Y,
			"radius", radius,
			"color", serializeColor(c),
			"mode", mode.String(),
		),
	})
}

func (r *Recorder) DrawTriangle(a, b, c graphics.Point, col graphics.Color, mode graphics.ShapeMode) {
	r.ops = append(r.ops, DisplayOp{
		Op: "drawTriangle",
		Params: sortedMap(
			"points", [][2]int{{a.X, a.Y}, {b.X, b.Y}, {c.X, c.Y}},
			"color", serializeColor(col),
			"mode", mode.String(),
		),
	})
}

func (r *Recorder) Present() error {
	r.Presents++
	return r.PresentErr
}

// Filter returns the recorded operations named op.
func (r *Recorder) Filter(op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range r.ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// Texts returns the text of every drawText operation in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, o := range r.Filter("drawText") {
		out = append(out, o.Params["text"].(string))
	}
	return out
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"x", r.X,
		"y", r.Y,
		"width", r.Width,
		"height", r.Height,
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// sortedMap creates a map from alternating key-value pairs. The snapshot
// encoder sorts map keys, so output is stable.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
