package engine

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/xiform/xiform/pkg/input"
)

// ErrSourceClosed is returned by Source.Wait once no more events will come.
var ErrSourceClosed = stderrors.New("engine: event source closed")

// Source supplies normalized input events to the loop.
type Source interface {
	// Poll returns the next pending event without blocking.
	Poll() (input.Event, bool)
	// Wait blocks until an event is available, the source closes, or ctx
	// is done.
	Wait(ctx context.Context) (input.Event, error)
}

// Queue is a bounded, goroutine-safe Source fed by a backend. Events pushed
// while the queue is full are dropped.
type Queue struct {
	events chan input.Event
	done   chan struct{}
	once   sync.Once
}

// DefaultQueueSize is the queue capacity used when none is given.
const DefaultQueueSize = 256

// NewQueue returns a queue holding up to size pending events.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = DefaultQueueSize
	}
	return &Queue{
		events: make(chan input.Event, size),
		done:   make(chan struct{}),
	}
}

// Push enqueues ev. It reports false if the queue is full or closed.
func (q *Queue) Push(ev input.Event) bool {
	select {
	case <-q.done:
		return false
	default:
	}
	select {
	case q.events <- ev:
		return true
	default:
		return false
	}
}

// Close marks the end of input. Events already queued are still delivered.
func (q *Queue) Close() {
	q.once.Do(func() { close(q.done) })
}

func (q *Queue) Poll() (input.Event, bool) {
	select {
	case ev := <-q.events:
		return ev, true
	default:
		return input.Event{}, false
	}
}

func (q *Queue) Wait(ctx context.Context) (input.Event, error) {
	select {
	case ev := <-q.events:
		return ev, nil
	default:
	}
	select {
	case ev := <-q.events:
		return ev, nil
	case <-q.done:
		if ev, ok := q.Poll(); ok {
			return ev, nil
		}
		return input.Event{}, ErrSourceClosed
	case <-ctx.Done():
		return input.Event{}, ctx.Err()
	}
}

// Replay is a Source that yields a fixed list of events, then closes.
type Replay struct {
	events []input.Event
	next   int
}

// NewReplay returns a source replaying events in order.
func NewReplay(events []input.Event) *Replay {
	return &Replay{events: events}
}

// Remaining returns the number of events not yet delivered.
func (r *Replay) Remaining() int {
	return len(r.events) - r.next
}

func (r *Replay) Poll() (input.Event, bool) {
	if r.next >= len(r.events) {
		return input.Event{}, false
	}
	ev := r.events[r.next]
	r.next++
	return ev, true
}

func (r *Replay) Wait(ctx context.Context) (input.Event, error) {
	if err := ctx.Err(); err != nil {
		return input.Event{}, err
	}
	if ev, ok := r.Poll(); ok {
		return ev, nil
	}
	return input.Event{}, ErrSourceClosed
}
