package launcher

import "testing"

func TestResolveSymbolShift(t *testing.T) {
	tests := []struct {
		name string
		ev   KeyEvent
		want rune
	}{
		{"lowercase letter without shift", KeyEvent{Sym: 'a'}, 'a'},
		{"lowercase letter with shift", KeyEvent{Sym: 'a', Mod: ModShift}, 'A'},
		{"uppercase letter with shift", KeyEvent{Sym: 'A', Mod: ModShift}, 'A'},
		{"digit with shift", KeyEvent{Sym: '1', Mod: ModShift}, '1'},
		{"non-letter symbol with shift", KeyEvent{Sym: '-', Mod: ModShift}, '-'},
		{"latin-1 letter with shift", KeyEvent{Sym: 'é', Mod: ModShift}, 'É'},
		{"function keysym with shift", KeyEvent{Sym: SymReturn, Mod: ModShift}, SymReturn},
		{"control does not case-convert", KeyEvent{Sym: 'k', Mod: ModControl}, 'k'},
	}
	for _, tt := range tests {
		if got := ResolveSymbol(tt.ev); got != tt.want {
			t.Errorf("%s: ResolveSymbol(%#x, %v) = %#x, want %#x", tt.name, tt.ev.Sym, tt.ev.Mod, got, tt.want)
		}
	}
}

func TestPrintableWindows(t *testing.T) {
	tests := []struct {
		sym  rune
		want rune
		ok   bool
	}{
		{0x1f, 0, false},  // just below the window
		{0x20, ' ', true}, // space, lower bound
		{'a', 'a', true},
		{0x13be, 0x13be, true}, // upper bound of the keysym window
		{0x13bf, 0, false},     // just above it
		{SymReturn, 0, false},
		{SymBackSpace, 0, false},
		{0xffaf, 0, false}, // just below the keypad digits
		{SymKP0, '0', true},
		{SymKP9, '9', true},
		{0xffba, 0, false}, // just above the keypad digits
	}
	for _, tt := range tests {
		got, ok := printableRune(tt.sym)
		if ok != tt.ok || got != tt.want {
			t.Errorf("printableRune(%#x) = (%#x, %v), want (%#x, %v)", tt.sym, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModHas(t *testing.T) {
	m := ModControl | ModAlt
	if !m.Has(ModControl) || !m.Has(ModAlt) || m.Has(ModShift) {
		t.Errorf("modifier set %v misreports membership", m)
	}
}
