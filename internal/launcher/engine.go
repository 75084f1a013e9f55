package launcher

// Status is the outcome of handling one key event.
type Status int

const (
	// StatusContinue means the session goes on and a redraw was requested.
	StatusContinue Status = iota
	// StatusLaunched means the command was saved and handed to the spawner;
	// the session is over.
	StatusLaunched
	// StatusCanceled means the user aborted; nothing was saved or launched.
	StatusCanceled
)

// Renderer receives the buffer content and cursor offset after every
// non-terminating key. It is fire-and-forget from the engine's view.
type Renderer interface {
	Render(text string, cursor int)
}

// Completer cycles executable-name candidates for a prefix. Reset
// invalidates the candidate list so the next call re-scans.
type Completer interface {
	Next(prefix string) string
	Reset()
}

// History records submitted commands and navigates over past ones.
type History interface {
	Save(cmd string) error
	Prev() string
	Next() string
}

// Bookmarks resolves a single key symbol to a full command line.
type Bookmarks interface {
	Lookup(sym rune) (string, bool)
}

// Spawner runs the submitted command line in a shell.
type Spawner interface {
	Launch(commandLine string) error
}

// Clipboard supplies text for the paste key. May be nil.
type Clipboard interface {
	Paste() (string, error)
}

// EngineConfig wires the engine's collaborators. History and Bookmarks are
// shared with the host and may outlive the engine; the buffer and the
// completer's candidate state are private to it.
type EngineConfig struct {
	Completer Completer
	History   History
	Bookmarks Bookmarks
	Spawner   Spawner
	Clipboard Clipboard
	Renderer  Renderer
}

// Engine is the key-dispatch state machine. It is single-threaded: each
// HandleKey call runs to completion before the next event is accepted.
type Engine struct {
	buf   *Buffer
	comp  Completer
	hist  History
	books Bookmarks
	spawn Spawner
	clip  Clipboard
	out   Renderer

	done  bool
	final Status
	err   error
}

// NewEngine returns an engine in the editing state with an empty buffer.
func NewEngine(c EngineConfig) *Engine {
	return &Engine{
		buf:   NewBuffer(),
		comp:  c.Completer,
		hist:  c.History,
		books: c.Bookmarks,
		spawn: c.Spawner,
		clip:  c.Clipboard,
		out:   c.Renderer,
	}
}

// HandleKey processes one decoded key event and reports whether the session
// continues. Once a terminating status has been returned the engine is done
// and further events are ignored.
func (e *Engine) HandleKey(ev KeyEvent) Status {
	if e.done {
		return e.final
	}

	sym := ResolveSymbol(ev)

	// Alt marks a bookmark lookup. A miss falls through to normal
	// dispatch with the modifier otherwise ignored.
	if ev.Mod.Has(ModAlt) && e.books != nil {
		if cmd, ok := e.books.Lookup(sym); ok {
			e.buf.Replace(cmd)
			return e.submit()
		}
	}

	// Any key that is not itself a completion request invalidates the
	// candidate list, so consecutive Tab presses cycle a fixed list while
	// everything else forces a fresh scan. History navigation included:
	// it changes the prefix out from under an in-progress cycle.
	if sym != SymTab && sym != SymKPTab && e.comp != nil {
		e.comp.Reset()
	}

	switch {
	case sym == SymEscape:
		return e.finish(StatusCanceled)

	case sym == SymBackSpace:
		e.buf.DeleteBefore(e.buf.Cursor())

	case sym == SymLeft || sym == SymKPLeft:
		e.buf.MoveCursor(-1)

	case sym == SymRight || sym == SymKPRight:
		e.buf.MoveCursor(1)

	case sym == SymUp || sym == SymKPUp:
		if e.hist != nil {
			e.buf.Replace(e.hist.Prev())
		}

	case sym == SymDown || sym == SymKPDown:
		if e.hist != nil {
			e.buf.Replace(e.hist.Next())
		}

	case sym == SymHome || sym == SymKPHome:
		e.buf.MoveCursor(-e.buf.Len())

	case sym == SymEnd || sym == SymKPEnd:
		e.buf.MoveCursor(e.buf.Len())

	case sym == SymReturn:
		return e.submit()

	case sym == SymTab || sym == SymKPTab:
		if e.comp != nil {
			e.buf.Replace(e.comp.Next(e.buf.String()))
		}

	case sym == 'k' && ev.Mod.Has(ModControl):
		e.buf.Clear()
		sym = 0 // don't insert the 'k' below

	case sym == 'w' && ev.Mod.Has(ModControl):
		e.eraseWord()
		sym = 0 // don't insert the 'w' below

	case sym == 'v' && ev.Mod.Has(ModControl):
		e.paste()
		sym = 0 // don't insert the 'v' below
	}

	if r, ok := printableRune(sym); ok {
		e.buf.InsertAt(e.buf.Cursor(), r)
	}

	e.render()
	return StatusContinue
}

// Err returns the launch or history-write error from the submit path, if
// any. Submission terminates the session regardless.
func (e *Engine) Err() error {
	return e.err
}

// Redraw pushes the current buffer state to the renderer. Hosts call it
// once before the first key event.
func (e *Engine) Redraw() {
	e.render()
}

func (e *Engine) submit() Status {
	cmd := e.buf.String()
	// Neither a failed history write nor a failed spawn may block
	// termination; the error is kept for the host to report.
	if e.hist != nil {
		if err := e.hist.Save(cmd); err != nil && e.err == nil {
			e.err = err
		}
	}
	if e.spawn != nil {
		if err := e.spawn.Launch(cmd); err != nil && e.err == nil {
			e.err = err
		}
	}
	return e.finish(StatusLaunched)
}

// eraseWord deletes from the cursor back to the nearest preceding space.
// The boundary space itself is kept, except when the scan runs all the way
// to position 0, in which case the whole span goes.
func (e *Engine) eraseWord() {
	cur := e.buf.Cursor()
	if cur == 0 {
		return
	}
	text := e.buf.Runes()
	i := cur - 1
	for i > 0 {
		i--
		if text[i] == ' ' {
			break
		}
	}
	if i != 0 {
		i++
	}
	for e.buf.Cursor() > i {
		e.buf.DeleteBefore(e.buf.Cursor())
	}
}

// paste inserts the clipboard content at the cursor. Runes outside the
// printable windows (newlines in particular) are dropped.
func (e *Engine) paste() {
	if e.clip == nil {
		return
	}
	s, err := e.clip.Paste()
	if err != nil {
		return
	}
	for _, r := range s {
		if ins, ok := printableRune(r); ok {
			e.buf.InsertAt(e.buf.Cursor(), ins)
		}
	}
}

func (e *Engine) finish(s Status) Status {
	e.done = true
	e.final = s
	return s
}

func (e *Engine) render() {
	if e.out != nil {
		e.out.Render(e.buf.String(), e.buf.Cursor())
	}
}
