// Package launcher implements the interactive input engine: an editable
// command buffer plus the key-dispatch state machine that drives completion,
// history, bookmarks, and command execution.
package launcher

import "unicode"

// Key symbols use X11 keysym codes. The launcher historically spoke raw
// keysyms, and the printable windows below are tuned to that encoding, so the
// numeric values are kept as-is and front ends translate into them.
const (
	SymBackSpace rune = 0xff08
	SymTab       rune = 0xff09
	SymReturn    rune = 0xff0d
	SymEscape    rune = 0xff1b

	SymHome  rune = 0xff50
	SymLeft  rune = 0xff51
	SymUp    rune = 0xff52
	SymRight rune = 0xff53
	SymDown  rune = 0xff54
	SymEnd   rune = 0xff57

	SymKPTab   rune = 0xff89
	SymKPHome  rune = 0xff95
	SymKPLeft  rune = 0xff96
	SymKPUp    rune = 0xff97
	SymKPRight rune = 0xff98
	SymKPDown  rune = 0xff99
	SymKPEnd   rune = 0xff9c

	SymKP0 rune = 0xffb0
	SymKP9 rune = 0xffb9
)

// Printable character windows: Latin-1 through Latin-8 keysyms, plus the
// keypad digit block. The exact boundaries are load-bearing for keypad
// number support.
const (
	printableMin rune = 0x20
	printableMax rune = 0x13be
)

// Mod is a set of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModControl
	ModAlt
)

// Has reports whether all modifiers in m2 are held.
func (m Mod) Has(m2 Mod) bool { return m&m2 == m2 }

// KeyEvent is one decoded keystroke as delivered by the front end.
type KeyEvent struct {
	Sym rune
	Mod Mod
}

// ResolveSymbol applies modifier-based symbol adjustment to a raw event:
// a held Shift upper-cases letter symbols. It is a pure function so decoding
// can be tested apart from dispatch.
func ResolveSymbol(ev KeyEvent) rune {
	sym := ev.Sym
	if ev.Mod.Has(ModShift) && sym >= printableMin && sym <= printableMax && unicode.IsLetter(sym) {
		sym = unicode.ToUpper(sym)
	}
	return sym
}

// printableRune maps a resolved symbol to the rune it inserts, if any.
// Keypad digit keysyms insert the corresponding ASCII digit.
func printableRune(sym rune) (rune, bool) {
	if sym >= SymKP0 && sym <= SymKP9 {
		return '0' + (sym - SymKP0), true
	}
	if sym >= printableMin && sym <= printableMax {
		return sym, true
	}
	return 0, false
}
