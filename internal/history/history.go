// Package history keeps the append-only log of submitted commands and the
// navigation cursor used to browse it from the input line.
package history

// List is the in-memory command log with a navigation cursor. A cursor equal
// to len(entries) is the at-end sentinel: not currently browsing, and worth
// the empty string.
type List struct {
	entries []string
	cursor  int
}

// NewList wraps previously persisted entries, oldest first, with the
// navigation cursor at the at-end sentinel.
func NewList(entries []string) *List {
	return &List{entries: entries, cursor: len(entries)}
}

// Append adds cmd to the log unconditionally: duplicates and the empty
// string are recorded like anything else. Navigation returns to at-end.
func (l *List) Append(cmd string) {
	l.entries = append(l.entries, cmd)
	l.cursor = len(l.entries)
}

// Prev moves one step toward older entries and returns the entry there.
// At the oldest entry it stays put and keeps returning it; on an empty log
// it returns the empty string.
func (l *List) Prev() string {
	if len(l.entries) == 0 {
		return ""
	}
	if l.cursor > 0 {
		l.cursor--
	}
	return l.entries[l.cursor]
}

// Next moves one step toward newer entries and returns the entry there.
// Stepping past the newest entry lands on the at-end sentinel, which yields
// the empty string.
func (l *List) Next() string {
	if l.cursor < len(l.entries) {
		l.cursor++
	}
	if l.cursor == len(l.entries) {
		return ""
	}
	return l.entries[l.cursor]
}

// Len returns the number of logged commands.
func (l *List) Len() int {
	return len(l.entries)
}
