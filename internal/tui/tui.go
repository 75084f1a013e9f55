// Package tui hosts the input engine in a Bubble Tea program: it translates
// terminal key messages into engine key events and draws the popup field.
package tui

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/gahr/thingylaunch/internal/config"
	"github.com/gahr/thingylaunch/internal/launcher"
	"github.com/gahr/thingylaunch/internal/tui/styles"
)

// Deps are the shared collaborators handed to the engine. They are owned by
// the caller and may outlive the model.
type Deps struct {
	Completer launcher.Completer
	History   launcher.History
	Bookmarks launcher.Bookmarks
	Spawner   launcher.Spawner
	Logger    *log.Logger
}

// viewState is the engine's render target. Bubble Tea pulls the frame from
// View, so rendering amounts to caching the latest text and cursor offset.
type viewState struct {
	text   string
	cursor int
}

func (v *viewState) Render(text string, cursor int) {
	v.text = text
	v.cursor = cursor
}

// clipboardReader feeds the system clipboard to the engine's paste key.
type clipboardReader struct{}

func (clipboardReader) Paste() (string, error) {
	return clipboard.ReadAll()
}

// Model is the Bubble Tea model wrapping one engine session.
type Model struct {
	engine *launcher.Engine
	view   *viewState
	cursor cursor.Model
	logger *log.Logger

	fieldStyle lipgloss.Style
	field      int // configured field width in cells
	termWidth  int
	status     launcher.Status
}

// New assembles the engine and its render target.
func New(cfg *config.Config, deps Deps) *Model {
	view := &viewState{}
	eng := launcher.NewEngine(launcher.EngineConfig{
		Completer: deps.Completer,
		History:   deps.History,
		Bookmarks: deps.Bookmarks,
		Spawner:   deps.Spawner,
		Clipboard: clipboardReader{},
		Renderer:  view,
	})
	eng.Redraw()

	m := &Model{
		engine: eng,
		view:   view,
		cursor: cursor.New(),
		logger: deps.Logger,
		field:  cfg.UI.Width,
	}
	m.cursor.Style = styles.CursorWith(cfg.UI.Foreground, cfg.UI.Background)
	m.fieldStyle = styles.FieldWith(cfg.UI.Foreground, cfg.UI.Background)
	return m
}

// Status returns the engine's final status after the program has quit.
func (m *Model) Status() launcher.Status {
	return m.status
}

// Err returns the launch or history error from the submit path, if any.
func (m *Model) Err() error {
	return m.engine.Err()
}

func (m *Model) Init() tea.Cmd {
	return m.cursor.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		for _, ev := range translate(msg) {
			st := m.engine.HandleKey(ev)
			if st == launcher.StatusContinue {
				continue
			}
			m.status = st
			if m.logger != nil {
				if st == launcher.StatusLaunched {
					m.logger.Printf("launched %q", m.view.text)
				} else {
					m.logger.Print("canceled")
				}
			}
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	width := m.field
	if m.termWidth > 0 && width > m.termWidth-4 {
		width = m.termWidth - 4
	}
	if width < 8 {
		width = 8
	}

	runes, pos := window([]rune(m.view.text), m.view.cursor, width)

	under := " "
	if pos < len(runes) {
		under = string(runes[pos])
	}
	m.cursor.SetChar(under)

	right := ""
	if pos < len(runes) {
		right = string(runes[pos+1:])
	}
	line := string(runes[:pos]) + m.cursor.View() + right

	// Pad to the full field width so the background fills the popup.
	if pad := width - lineWidth(runes, pos); pad > 0 {
		line += spaces(pad)
	}

	return m.fieldStyle.Render(line)
}

// window returns the slice of text visible in a field of the given cell
// width and the cursor position within that slice. The cursor cell is
// always kept in view; text scrolls left once it no longer fits.
func window(runes []rune, pos, width int) ([]rune, int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}

	start := 0
	for start < pos && runewidth.StringWidth(string(runes[start:pos])) > width-1 {
		start++
	}

	end := len(runes)
	for end > pos && runewidth.StringWidth(string(runes[start:end]))+boolCell(pos == end) > width {
		end--
	}

	return runes[start:end], pos - start
}

// lineWidth is the cell width of the visible slice including the cursor
// cell when the cursor sits past the last rune.
func lineWidth(runes []rune, pos int) int {
	w := runewidth.StringWidth(string(runes))
	if pos == len(runes) {
		w++ // cursor occupies the cell after the text
	}
	return w
}

func boolCell(b bool) int {
	if b {
		return 1
	}
	return 0
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
