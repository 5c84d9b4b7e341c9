package engine

import (
	"fmt"
	"time"
)

// DefaultTimingWindow is the number of frames a Loop keeps timings for.
const DefaultTimingWindow = 60

// FrameTimingBuffer keeps the render durations of the most recent frames.
// Once full, each new sample replaces the oldest.
type FrameTimingBuffer struct {
	samples []time.Duration
	next    int
}

// NewFrameTimingBuffer holds up to window samples. A window below 1 uses
// DefaultTimingWindow.
func NewFrameTimingBuffer(window int) *FrameTimingBuffer {
	if window < 1 {
		window = DefaultTimingWindow
	}
	return &FrameTimingBuffer{samples: make([]time.Duration, 0, window)}
}

// Add records one frame.
func (b *FrameTimingBuffer) Add(d time.Duration) {
	if len(b.samples) < cap(b.samples) {
		b.samples = append(b.samples, d)
		return
	}
	b.samples[b.next] = d
	b.next = (b.next + 1) % len(b.samples)
}

// Count returns the number of samples held.
func (b *FrameTimingBuffer) Count() int { return len(b.samples) }

// Samples returns the held durations, oldest first.
func (b *FrameTimingBuffer) Samples() []time.Duration {
	out := make([]time.Duration, 0, len(b.samples))
	out = append(out, b.samples[b.next:]...)
	return append(out, b.samples[:b.next]...)
}

// Average returns the mean held duration, or zero.
func (b *FrameTimingBuffer) Average() time.Duration {
	if len(b.samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range b.samples {
		total += d
	}
	return total / time.Duration(len(b.samples))
}

// Max returns the slowest held duration.
func (b *FrameTimingBuffer) Max() time.Duration {
	var m time.Duration
	for _, d := range b.samples {
		m = max(m, d)
	}
	return m
}

// Stats summarizes a loop's work so far.
type Stats struct {
	Frames int
	Events int
	// AvgFrame and MaxFrame cover the most recent frames only.
	AvgFrame time.Duration
	MaxFrame time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%d frames, %d events, frame avg %s max %s",
		s.Frames, s.Events, s.AvgFrame, s.MaxFrame)
}
