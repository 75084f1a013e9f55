package bookmark

import "testing"

func TestLookup(t *testing.T) {
	tbl, err := New(map[string]string{
		"f": "firefox",
		"t": "xterm -e top",
		"ä": "aterm",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tbl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tbl.Len())
	}

	if cmd, ok := tbl.Lookup('f'); !ok || cmd != "firefox" {
		t.Errorf("Lookup('f') = (%q, %v), want (%q, true)", cmd, ok, "firefox")
	}
	if cmd, ok := tbl.Lookup('ä'); !ok || cmd != "aterm" {
		t.Errorf("Lookup('ä') = (%q, %v), want (%q, true)", cmd, ok, "aterm")
	}
	if _, ok := tbl.Lookup('x'); ok {
		t.Error("Lookup('x') found a command, want absent")
	}
}

func TestNewRejectsMultiCharKey(t *testing.T) {
	if _, err := New(map[string]string{"ff": "firefox"}); err == nil {
		t.Error("New accepted a two-character key, want error")
	}
	if _, err := New(map[string]string{"": "firefox"}); err == nil {
		t.Error("New accepted an empty key, want error")
	}
}

func TestEmptyTable(t *testing.T) {
	tbl, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil): %v", err)
	}
	if _, ok := tbl.Lookup('a'); ok {
		t.Error("empty table returned a command")
	}
}
