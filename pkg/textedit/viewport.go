package textedit

// Viewport tracks the leftmost visible rune of a line narrower than its
// text.
type Viewport struct {
	offset int
}

// Offset returns the index of the leftmost visible rune.
func (v *Viewport) Offset() int {
	return v.offset
}

// MaxVisible returns how many glyphs of the given advance fit in width
// after subtracting padding. The result is at least 1.
func MaxVisible(width, padding, advance int) int {
	if advance <= 0 {
		advance = 1
	}
	return max(1, (width-padding)/advance)
}

// Scroll moves the viewport so that cursor is visible in a window of
// maxVisible runes. The window scrolls right once the cursor reaches its
// last column, so there is always room to see the next insertion.
//
// After Scroll, Offset() <= cursor < Offset()+maxVisible.
func (v *Viewport) Scroll(cursor, maxVisible int) {
	maxVisible = max(1, maxVisible)
	switch {
	case cursor >= v.offset+maxVisible-1:
		v.offset = cursor - (maxVisible - 1)
	case cursor < v.offset:
		v.offset = cursor
	}
	v.offset = max(0, v.offset)
}

// Visible returns the part of b shown by the viewport.
func (v *Viewport) Visible(b *Buffer, maxVisible int) string {
	return b.Slice(v.offset, v.offset+maxVisible)
}
