// Package completion cycles through executable names matching a typed
// prefix. The candidate list is an explicit memo: it is computed at most
// once per prefix and only invalidated by Reset, so cycling can never
// re-scan mid-cycle.
package completion

import "strings"

// Source enumerates the executable search path: directories in priority
// order, each yielding its executable entry names in lexical order.
type Source interface {
	Dirs() []string
	Entries(dir string) []string
}

// Engine holds the memoized candidate list and the cycling cursor.
type Engine struct {
	src        Source
	candidates []string
	index      int
	prefix     string
	live       bool
}

// New returns an engine with no live candidate list.
func New(src Source) *Engine {
	return &Engine{src: src}
}

// Next returns the next candidate for prefix. The first call after a Reset
// scans the search path and returns the first match; subsequent calls
// advance through the same list, wrapping around after the last candidate.
// The prefix argument is ignored while a list is live, because the caller's
// buffer already holds the previous candidate by then. With no matches the
// prefix comes back unchanged.
func (e *Engine) Next(prefix string) string {
	if !e.live {
		e.scan(prefix)
	} else if len(e.candidates) > 0 {
		e.index = (e.index + 1) % len(e.candidates)
	}
	if len(e.candidates) == 0 {
		return prefix
	}
	return e.candidates[e.index]
}

// Reset discards the candidate list. The engine calls this on every key
// that is not a completion request.
func (e *Engine) Reset() {
	e.candidates = nil
	e.index = 0
	e.prefix = ""
	e.live = false
}

func (e *Engine) scan(prefix string) {
	e.live = true
	e.prefix = prefix
	e.index = 0
	e.candidates = nil

	seen := make(map[string]struct{})
	for _, dir := range e.src.Dirs() {
		for _, name := range e.src.Entries(dir) {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			e.candidates = append(e.candidates, name)
		}
	}
}
