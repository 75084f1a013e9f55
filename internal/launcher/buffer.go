package launcher

// Buffer owns the command line under construction and the cursor offset
// into it. Text is a rune slice and the cursor is a rune offset, so cursor
// motion is single code-point granular. Every operation keeps the invariant
// 0 <= cursor <= len(text); out-of-range requests are no-ops, never errors.
type Buffer struct {
	text   []rune
	cursor int
}

// NewBuffer returns an empty buffer with the cursor at 0.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// InsertAt inserts r before position pos and advances the cursor by one.
// Inserting at len(text) appends. An out-of-range pos is a no-op.
func (b *Buffer) InsertAt(pos int, r rune) {
	if pos < 0 || pos > len(b.text) {
		return
	}
	if pos == len(b.text) {
		b.text = append(b.text, r)
	} else {
		tail := append([]rune{r}, b.text[pos:]...)
		b.text = append(b.text[:pos], tail...)
	}
	if b.cursor < len(b.text) {
		b.cursor++
	}
}

// DeleteBefore removes the rune immediately preceding pos and moves the
// cursor back by one. Deleting at position 0 is a no-op.
func (b *Buffer) DeleteBefore(pos int) {
	if pos <= 0 || pos > len(b.text) {
		return
	}
	b.text = append(b.text[:pos-1], b.text[pos:]...)
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveCursor moves the cursor by delta, clamped to [0, len(text)].
func (b *Buffer) MoveCursor(delta int) {
	b.cursor += delta
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor > len(b.text) {
		b.cursor = len(b.text)
	}
}

// Replace swaps the whole buffer content for text and puts the cursor at
// the end. History recall, bookmark hits, and completion all land here.
func (b *Buffer) Replace(text string) {
	b.text = []rune(text)
	b.cursor = len(b.text)
}

// Clear empties the buffer and resets the cursor.
func (b *Buffer) Clear() {
	b.text = b.text[:0]
	b.cursor = 0
}

// String returns the buffer content.
func (b *Buffer) String() string {
	return string(b.text)
}

// Runes returns a copy of the buffer content.
func (b *Buffer) Runes() []rune {
	return append([]rune(nil), b.text...)
}

// Cursor returns the rune offset of the cursor.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	return len(b.text)
}
