package widgets

import (
	"fmt"

	"github.com/xiform/xiform/pkg/errors"
	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/input"
)

// DefaultCapacity is the registry size used when none is given.
const DefaultCapacity = 100

// slot records where a registered widget lives.
type slot struct {
	kind  Kind
	index int
}

// Registry owns an ordered, fixed-capacity set of widgets.
//
// Registration order is render order. Widgets are never removed. Each kind
// is stored in its own arena, allocated once at full capacity, so pointers
// returned by the typed accessors stay valid for the registry's lifetime.
//
// A Registry is not safe for concurrent use; it belongs to the goroutine
// running the event loop.
type Registry struct {
	capacity int
	slots    []slot

	containers []Container
	buttons    []Button
	labels     []Label
	texts      []Text
	sliders    []Slider
	entries    []TextEntry
	shapes     []Shape
}

// NewRegistry returns an empty registry holding at most capacity widgets.
// A capacity below 1 uses DefaultCapacity.
func NewRegistry(capacity int) *Registry {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Registry{
		capacity: capacity,
		slots:    make([]slot, 0, capacity),
	}
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int {
	return len(r.slots)
}

// Cap returns the maximum number of widgets.
func (r *Registry) Cap() int {
	return r.capacity
}

// Full reports whether further registrations will be dropped.
func (r *Registry) Full() bool {
	return len(r.slots) >= r.capacity
}

// Register copies w into the registry and returns its handle.
//
// When the registry is full the widget is dropped and the zero Handle is
// returned; this is a sizing limit, not an error. A Parent that does not
// name a registered container is reported and cleared.
func (r *Registry) Register(w Widget) Handle {
	if w == nil || r.Full() {
		return 0
	}
	if v, ok := deref(w); ok {
		if v == nil {
			return 0
		}
		w = v
	}

	var s slot
	switch v := w.(type) {
	case Container:
		if !v.Movable {
			v.dragging, v.grab = false, graphics.Point{}
		}
		s = slot{KindContainer, appendArena(&r.containers, v, r.capacity)}
	case Button:
		v.Parent = r.checkParent(v.Parent, KindButton)
		s = slot{KindButton, appendArena(&r.buttons, v, r.capacity)}
	case Label:
		v.Parent = r.checkParent(v.Parent, KindLabel)
		s = slot{KindLabel, appendArena(&r.labels, v, r.capacity)}
	case Text:
		v.Parent = r.checkParent(v.Parent, KindText)
		s = slot{KindText, appendArena(&r.texts, v, r.capacity)}
	case Slider:
		v.Parent = r.checkParent(v.Parent, KindSlider)
		v.Value = v.clamp(v.Value)
		s = slot{KindSlider, appendArena(&r.sliders, v, r.capacity)}
	case TextEntry:
		v.Parent = r.checkParent(v.Parent, KindTextEntry)
		v.buf = v.buf.Clone()
		s = slot{KindTextEntry, appendArena(&r.entries, v, r.capacity)}
	case Shape:
		v.Parent = r.checkParent(v.Parent, KindShape)
		s = slot{KindShape, appendArena(&r.shapes, v, r.capacity)}
	default:
		return 0
	}

	r.slots = append(r.slots, s)
	return Handle(len(r.slots))
}

// deref unwraps a pointer to a widget so that Register(&b) stores a copy of
// b just like Register(b) does.
func deref(w Widget) (Widget, bool) {
	switch v := w.(type) {
	case *Container:
		return derefOrNil(v)
	case *Button:
		return derefOrNil(v)
	case *Label:
		return derefOrNil(v)
	case *Text:
		return derefOrNil(v)
	case *Slider:
		return derefOrNil(v)
	case *TextEntry:
		return derefOrNil(v)
	case *Shape:
		return derefOrNil(v)
	}
	return nil, false
}

func derefOrNil[T Widget](p *T) (Widget, bool) {
	if p == nil {
		return nil, true
	}
	return *p, true
}

// appendArena appends v to *arena, allocating the arena at full capacity on
// first use so that it never moves.
func appendArena[T any](arena *[]T, v T, capacity int) int {
	if *arena == nil {
		*arena = make([]T, 0, capacity)
	}
	*arena = append(*arena, v)
	return len(*arena) - 1
}

func (r *Registry) checkParent(parent Handle, kind Kind) Handle {
	if !parent.Valid() {
		return 0
	}
	if r.Container(parent) == nil {
		errors.Report(&errors.ToolkitError{
			Op:   "widgets.Registry.Register",
			Kind: errors.KindRegistry,
			Err:  fmt.Errorf("%s parent %d is not a registered container", kind, parent),
		})
		return 0
	}
	return parent
}

func (r *Registry) lookup(h Handle) (slot, bool) {
	if !h.Valid() || h.index() >= len(r.slots) {
		return slot{}, false
	}
	return r.slots[h.index()], true
}

// Handles returns the handles of all registered widgets in render order.
func (r *Registry) Handles() []Handle {
	hs := make([]Handle, len(r.slots))
	for i := range r.slots {
		hs[i] = Handle(i + 1)
	}
	return hs
}

// KindOf returns the kind of the widget at h.
func (r *Registry) KindOf(h Handle) (Kind, bool) {
	s, ok := r.lookup(h)
	return s.kind, ok
}

// Widget returns a copy of the widget at h, or nil. A copied TextEntry
// gets its own buffer.
func (r *Registry) Widget(h Handle) Widget {
	s, ok := r.lookup(h)
	if !ok {
		return nil
	}
	switch s.kind {
	case KindContainer:
		return r.containers[s.index]
	case KindButton:
		return r.buttons[s.index]
	case KindLabel:
		return r.labels[s.index]
	case KindText:
		return r.texts[s.index]
	case KindSlider:
		return r.sliders[s.index]
	case KindTextEntry:
		e := r.entries[s.index]
		e.buf = e.buf.Clone()
		return e
	case KindShape:
		return r.shapes[s.index]
	}
	return nil
}

// Container returns the live container at h, or nil if h is not a container.
func (r *Registry) Container(h Handle) *Container {
	if s, ok := r.lookup(h); ok && s.kind == KindContainer {
		return &r.containers[s.index]
	}
	return nil
}

// Button returns the live button at h, or nil.
func (r *Registry) Button(h Handle) *Button {
	if s, ok := r.lookup(h); ok && s.kind == KindButton {
		return &r.buttons[s.index]
	}
	return nil
}

// Label returns the live label at h, or nil.
func (r *Registry) Label(h Handle) *Label {
	if s, ok := r.lookup(h); ok && s.kind == KindLabel {
		return &r.labels[s.index]
	}
	return nil
}

// Text returns the live text widget at h, or nil.
func (r *Registry) Text(h Handle) *Text {
	if s, ok := r.lookup(h); ok && s.kind == KindText {
		return &r.texts[s.index]
	}
	return nil
}

// Slider returns the live slider at h, or nil.
func (r *Registry) Slider(h Handle) *Slider {
	if s, ok := r.lookup(h); ok && s.kind == KindSlider {
		return &r.sliders[s.index]
	}
	return nil
}

// TextEntry returns the live text entry at h, or nil.
func (r *Registry) TextEntry(h Handle) *TextEntry {
	if s, ok := r.lookup(h); ok && s.kind == KindTextEntry {
		return &r.entries[s.index]
	}
	return nil
}

// Shape returns the live shape at h, or nil.
func (r *Registry) Shape(h Handle) *Shape {
	if s, ok := r.lookup(h); ok && s.kind == KindShape {
		return &r.shapes[s.index]
	}
	return nil
}

// Resolve returns the surface position of the widget at h: its own position
// offset by its parent container's, if it has one.
func (r *Registry) Resolve(h Handle) graphics.Point {
	s, ok := r.lookup(h)
	if !ok {
		return graphics.Point{}
	}
	return r.resolve(s)
}

func (r *Registry) resolve(s slot) graphics.Point {
	pos, parent := r.local(s)
	if c := r.Container(parent); c != nil {
		return c.Origin().Add(pos)
	}
	return pos
}

// local returns a widget's own position and its parent handle.
func (r *Registry) local(s slot) (graphics.Point, Handle) {
	switch s.kind {
	case KindContainer:
		c := &r.containers[s.index]
		return graphics.Point{X: c.X, Y: c.Y}, 0
	case KindButton:
		w := &r.buttons[s.index]
		return graphics.Point{X: w.X, Y: w.Y}, w.Parent
	case KindLabel:
		w := &r.labels[s.index]
		return graphics.Point{X: w.X, Y: w.Y}, w.Parent
	case KindText:
		w := &r.texts[s.index]
		return graphics.Point{X: w.X, Y: w.Y}, w.Parent
	case KindSlider:
		w := &r.sliders[s.index]
		return graphics.Point{X: w.X, Y: w.Y}, w.Parent
	case KindTextEntry:
		w := &r.entries[s.index]
		return graphics.Point{X: w.X, Y: w.Y}, w.Parent
	case KindShape:
		w := &r.shapes[s.index]
		return graphics.Point{X: w.X, Y: w.Y}, w.Parent
	}
	return graphics.Point{}, 0
}

// Parent returns the container the widget at h is positioned in, or zero.
func (r *Registry) Parent(h Handle) Handle {
	s, ok := r.lookup(h)
	if !ok {
		return 0
	}
	_, parent := r.local(s)
	return parent
}

// Bounds returns the surface rectangle of the widget at h. Text widgets
// have no box and report an empty rectangle at their position.
func (r *Registry) Bounds(h Handle) graphics.Rect {
	s, ok := r.lookup(h)
	if !ok {
		return graphics.Rect{}
	}
	origin := r.resolve(s)
	var size graphics.Size
	switch s.kind {
	case KindContainer:
		return r.containers[s.index].Bounds()
	case KindButton:
		w := &r.buttons[s.index]
		size = graphics.Size{Width: w.Width, Height: w.Height}
	case KindLabel:
		w := &r.labels[s.index]
		size = graphics.Size{Width: w.Width, Height: w.Height}
	case KindSlider:
		w := &r.sliders[s.index]
		size = graphics.Size{Width: w.Width, Height: w.Height}
	case KindTextEntry:
		w := &r.entries[s.index]
		size = graphics.Size{Width: w.Width, Height: w.Height}
	case KindShape:
		w := &r.shapes[s.index]
		size = graphics.Size{Width: w.Width, Height: w.Height}
	}
	return graphics.RectAt(origin, size)
}

// ProcessEvent delivers ev to every widget in registration order. It
// returns false for a Quit event, which no widget sees.
func (r *Registry) ProcessEvent(ev input.Event) bool {
	if ev.Kind == input.Quit {
		return false
	}
	for _, s := range r.slots {
		r.update(s, ev)
	}
	return true
}

func (r *Registry) update(s slot, ev input.Event) {
	defer errors.Recover("widgets.Registry.ProcessEvent")

	origin := r.resolve(s)
	switch s.kind {
	case KindContainer:
		r.containers[s.index].Update(ev)
	case KindButton:
		r.buttons[s.index].Update(ev, origin)
	case KindSlider:
		r.sliders[s.index].Update(ev, origin)
	case KindTextEntry:
		r.entries[s.index].Update(ev, origin)
	case KindLabel, KindText, KindShape:
		// not interactive
	}
}

// RenderAll draws every widget in registration order. A widget whose
// render panics is skipped for this frame and the panic is reported.
func (r *Registry) RenderAll(surf graphics.Surface) {
	for _, s := range r.slots {
		r.render(s, surf)
	}
}

func (r *Registry) render(s slot, surf graphics.Surface) {
	defer errors.Recover("widgets.Registry.RenderAll")

	origin := r.resolve(s)
	switch s.kind {
	case KindContainer:
		r.containers[s.index].Render(surf)
	case KindButton:
		r.buttons[s.index].Render(surf, origin)
	case KindLabel:
		r.labels[s.index].Render(surf, origin)
	case KindText:
		r.texts[s.index].Render(surf, origin)
	case KindSlider:
		r.sliders[s.index].Render(surf, origin)
	case KindTextEntry:
		r.entries[s.index].Render(surf, origin)
	case KindShape:
		r.shapes[s.index].Render(surf, origin)
	}
}
