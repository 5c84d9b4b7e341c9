package engine

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/xiform/xiform/pkg/errors"
	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/input"
	"github.com/xiform/xiform/pkg/widgets"
)

// MaxEventsPerFrame bounds how many queued events one frame drains.
const MaxEventsPerFrame = 64

// Loop drives a registry from a source onto a surface.
//
// A Loop is not safe for concurrent use. Only the Source may be fed from
// other goroutines.
type Loop struct {
	Registry *widgets.Registry
	Surface  graphics.Surface
	Source   Source
	// Background clears the surface before each frame. Defaults to white.
	Background graphics.Color
	// OnFrame, if set, is called after each frame is presented.
	OnFrame func(frame int)

	frames  int
	events  int
	timings *FrameTimingBuffer
}

// NewLoop returns a loop over the given collaborators.
func NewLoop(reg *widgets.Registry, surf graphics.Surface, src Source) *Loop {
	return &Loop{
		Registry: reg,
		Surface:  surf,
		Source:   src,
		timings:  NewFrameTimingBuffer(0),
	}
}

// Frames returns the number of frames rendered.
func (l *Loop) Frames() int {
	return l.frames
}

// Events returns the number of events delivered to the registry.
func (l *Loop) Events() int {
	return l.events
}

// Stats returns frame and event counts with recent frame timings.
func (l *Loop) Stats() Stats {
	t := l.Timings()
	return Stats{
		Frames:   l.frames,
		Events:   l.events,
		AvgFrame: t.Average(),
		MaxFrame: t.Max(),
	}
}

// Timings returns recent frame durations.
func (l *Loop) Timings() *FrameTimingBuffer {
	if l.timings == nil {
		l.timings = NewFrameTimingBuffer(0)
	}
	return l.timings
}

// Frame drains pending events without blocking, then renders once. It
// returns false, without rendering, if a quit event was seen.
func (l *Loop) Frame() bool {
	if !l.drain(nil) {
		return false
	}
	l.Render()
	return true
}

// drain delivers first, if given, and then up to MaxEventsPerFrame pending
// events in total. It returns false on quit.
func (l *Loop) drain(first *input.Event) bool {
	n := 0
	if first != nil {
		n++
		if !l.deliver(*first) {
			return false
		}
	}
	for ; n < MaxEventsPerFrame; n++ {
		ev, ok := l.Source.Poll()
		if !ok {
			break
		}
		if !l.deliver(ev) {
			return false
		}
	}
	return true
}

func (l *Loop) deliver(ev input.Event) bool {
	l.events++
	return l.Registry.ProcessEvent(ev)
}

// Render clears the surface, draws every widget and presents the frame.
// A failing Present is reported and the loop carries on.
func (l *Loop) Render() {
	start := time.Now()
	bg := l.Background
	if bg == 0 {
		bg = graphics.ColorWhite
	}
	l.Surface.Clear(bg)
	l.Registry.RenderAll(l.Surface)
	if err := l.Surface.Present(); err != nil {
		errors.Report(&errors.ToolkitError{
			Op:   "engine.Loop.Render",
			Kind: errors.KindSurface,
			Err:  err,
		})
	}
	l.frames++
	l.Timings().Add(time.Since(start))
	if l.OnFrame != nil {
		l.OnFrame(l.frames)
	}
}

// Run renders an initial frame and then alternates between waiting for
// input and rendering until quit, source exhaustion, or cancellation.
// Quit and exhaustion return nil; cancellation returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	l.Render()
	for {
		ev, err := l.Source.Wait(ctx)
		if err != nil {
			if stderrors.Is(err, ErrSourceClosed) {
				return nil
			}
			return err
		}
		if !l.drain(&ev) {
			return nil
		}
		l.Render()
	}
}
