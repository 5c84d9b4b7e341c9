// Package textedit implements the single-line editing model behind the
// text entry widget: a fixed-capacity rune buffer with a cursor, and a
// horizontal viewport that keeps the cursor visible.
package textedit

// DefaultCapacity is the buffer capacity used when none is given.
// One slot is reserved, so at most DefaultCapacity-1 runes are stored.
const DefaultCapacity = 256

// Buffer is a fixed-capacity line of text with a cursor.
//
// Lengths and positions count runes. The cursor always lies in [0, Len()]
// and Len() never exceeds Capacity()-1. Operations that would break either
// rule have no effect.
type Buffer struct {
	text     []rune
	cursor   int
	capacity int
}

// NewBuffer returns an empty buffer. A capacity below 2 uses DefaultCapacity.
func NewBuffer(capacity int) Buffer {
	if capacity < 2 {
		capacity = DefaultCapacity
	}
	return Buffer{capacity: capacity}
}

// Capacity returns the buffer capacity, including the reserved slot.
func (b *Buffer) Capacity() int {
	if b.capacity < 2 {
		return DefaultCapacity
	}
	return b.capacity
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	return string(b.text)
}

// Slice returns the runes in [from, to), clamped to the buffer.
func (b *Buffer) Slice(from, to int) string {
	from = clamp(from, 0, len(b.text))
	to = clamp(to, from, len(b.text))
	return string(b.text[from:to])
}

// Insert places s at the cursor and moves the cursor past it.
// The insertion is all-or-nothing: if the result would not fit, nothing
// changes and Insert returns false.
func (b *Buffer) Insert(s string) bool {
	rs := []rune(s)
	if len(rs) == 0 {
		return false
	}
	if len(b.text)+len(rs) > b.Capacity()-1 {
		return false
	}
	b.text = append(b.text, rs...)
	copy(b.text[b.cursor+len(rs):], b.text[b.cursor:len(b.text)-len(rs)])
	copy(b.text[b.cursor:], rs)
	b.cursor += len(rs)
	return true
}

// Backspace removes the rune before the cursor.
func (b *Buffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
	return true
}

// Delete removes the rune under the cursor.
func (b *Buffer) Delete() bool {
	if b.cursor >= len(b.text) {
		return false
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
	return true
}

// Left moves the cursor one rune left, stopping at 0.
func (b *Buffer) Left() {
	b.cursor = max(0, b.cursor-1)
}

// Right moves the cursor one rune right, stopping at Len().
func (b *Buffer) Right() {
	b.cursor = min(len(b.text), b.cursor+1)
}

// Home moves the cursor to the start of the line.
func (b *Buffer) Home() {
	b.cursor = 0
}

// End moves the cursor past the last rune.
func (b *Buffer) End() {
	b.cursor = len(b.text)
}

// SetText replaces the contents and puts the cursor at the end. Text longer
// than the capacity allows is truncated.
func (b *Buffer) SetText(s string) {
	rs := []rune(s)
	if limit := b.Capacity() - 1; len(rs) > limit {
		rs = rs[:limit]
	}
	b.text = append(b.text[:0], rs...)
	b.cursor = len(b.text)
}

// SetCursor moves the cursor to pos, clamped to [0, Len()].
func (b *Buffer) SetCursor(pos int) {
	b.cursor = clamp(pos, 0, len(b.text))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clone returns a copy that shares no storage with b.
func (b *Buffer) Clone() Buffer {
	c := *b
	c.text = append([]rune(nil), b.text...)
	return c
}
