package testing

import (
	"fmt"

	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/input"
	"github.com/xiform/xiform/pkg/widgets"
)

// Tester drives a Registry with synthetic input and records what it
// renders. It runs the same per-frame steps as the engine loop without
// a display.
type Tester struct {
	reg      *widgets.Registry
	recorder *Recorder
	events   []input.Event
	pointer  graphics.Point
}

// NewTester returns a tester for reg.
func NewTester(reg *widgets.Registry) *Tester {
	return &Tester{reg: reg, recorder: &Recorder{}}
}

// Registry returns the registry under test.
func (t *Tester) Registry() *widgets.Registry {
	return t.reg
}

// Events returns every event dispatched so far.
func (t *Tester) Events() []input.Event {
	return t.events
}

// Pointer returns the last pointer position sent.
func (t *Tester) Pointer() graphics.Point {
	return t.pointer
}

// Dispatch delivers events in order. It returns false if one of them was
// a quit event; later events are not delivered.
func (t *Tester) Dispatch(events ...input.Event) bool {
	for _, ev := range events {
		t.events = append(t.events, ev)
		if ev.IsPointer() {
			t.pointer = ev.Pos
		}
		if !t.reg.ProcessEvent(ev) {
			return false
		}
	}
	return true
}

// Script parses and dispatches an input script.
func (t *Tester) Script(script string) error {
	events, err := input.ParseScript(script)
	if err != nil {
		return err
	}
	t.Dispatch(events...)
	return nil
}

// MoveTo moves the pointer to pos.
func (t *Tester) MoveTo(pos graphics.Point) {
	t.Dispatch(input.Move(pos.X, pos.Y))
}

// Tap simulates a press and release at the center of the widget at h.
func (t *Tester) Tap(h widgets.Handle) error {
	if _, ok := t.reg.KindOf(h); !ok {
		return fmt.Errorf("Tap: no widget with handle %d", h)
	}
	t.TapAt(t.reg.Bounds(h).Center())
	return nil
}

// Find evaluates f against the registry under test.
func (t *Tester) Find(f Finder) FinderResult {
	return Find(t.reg, f)
}

// TapOn taps the first widget f matches.
func (t *Tester) TapOn(f Finder) error {
	h := t.Find(f).FirstOrZero()
	if h == 0 {
		return fmt.Errorf("TapOn: no widget matches %s", f.Description())
	}
	return t.Tap(h)
}

// TapAt simulates a press and release at pos.
func (t *Tester) TapAt(pos graphics.Point) {
	t.Dispatch(input.Move(pos.X, pos.Y), input.Down(pos.X, pos.Y), input.Up(pos.X, pos.Y))
}

// DragFrom simulates a drag from start by delta.
func (t *Tester) DragFrom(start, delta graphics.Point) {
	end := start.Add(delta)
	t.Dispatch(
		input.Down(start.X, start.Y),
		input.Move(end.X, end.Y),
		input.Up(end.X, end.Y),
	)
}

// Type sends s as one text input event per rune.
func (t *Tester) Type(s string) {
	for _, r := range s {
		t.Dispatch(input.Text(string(r)))
	}
}

// Press sends a key press for each key.
func (t *Tester) Press(keys ...input.Key) {
	for _, k := range keys {
		t.Dispatch(input.Press(k))
	}
}

// Render draws one frame and returns its display operations.
func (t *Tester) Render() []DisplayOp {
	t.recorder.Reset()
	t.reg.RenderAll(t.recorder)
	return t.recorder.Ops()
}

// Recorder returns the surface Render draws into.
func (t *Tester) Recorder() *Recorder {
	return t.recorder
}

// CaptureSnapshot captures the registry's current state.
func (t *Tester) CaptureSnapshot() *Snapshot {
	return CaptureSnapshot(t.reg)
}
