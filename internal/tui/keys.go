package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gahr/thingylaunch/internal/launcher"
)

// translate converts a terminal key message into engine key events. A rune
// message can carry several runes (bracketed paste does this); each becomes
// its own event. Keys with no engine meaning translate to nothing.
func translate(msg tea.KeyMsg) []launcher.KeyEvent {
	var mod launcher.Mod
	if msg.Alt {
		mod |= launcher.ModAlt
	}

	one := func(sym rune, mod launcher.Mod) []launcher.KeyEvent {
		return []launcher.KeyEvent{{Sym: sym, Mod: mod}}
	}

	switch msg.Type {
	case tea.KeyRunes:
		evs := make([]launcher.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, launcher.KeyEvent{Sym: r, Mod: mod})
		}
		return evs
	case tea.KeySpace:
		return one(' ', mod)
	case tea.KeyEnter:
		return one(launcher.SymReturn, mod)
	case tea.KeyTab:
		return one(launcher.SymTab, mod)
	case tea.KeyBackspace:
		return one(launcher.SymBackSpace, mod)
	case tea.KeyEsc:
		return one(launcher.SymEscape, mod)
	case tea.KeyUp:
		return one(launcher.SymUp, mod)
	case tea.KeyDown:
		return one(launcher.SymDown, mod)
	case tea.KeyLeft:
		return one(launcher.SymLeft, mod)
	case tea.KeyRight:
		return one(launcher.SymRight, mod)
	case tea.KeyHome:
		return one(launcher.SymHome, mod)
	case tea.KeyEnd:
		return one(launcher.SymEnd, mod)
	case tea.KeyCtrlK:
		return one('k', mod|launcher.ModControl)
	case tea.KeyCtrlW:
		return one('w', mod|launcher.ModControl)
	case tea.KeyCtrlV:
		return one('v', mod|launcher.ModControl)
	}
	return nil
}
