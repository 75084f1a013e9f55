package history

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, cmd := range []string{"ls -l", "make", "make"} {
		if err := s.Save(cmd); err != nil {
			t.Fatalf("Save(%q): %v", cmd, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if s.Len() != 3 {
		t.Fatalf("Len() after reopen = %d, want 3", s.Len())
	}
	got := []string{s.Prev(), s.Prev(), s.Prev()}
	want := []string{"make", "make", "ls -l"} // newest first, duplicates kept
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

// Sequence keys are big-endian, so append order must survive well past one
// byte of sequence numbers.
func TestStoreKeepsAppendOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	const n = 300
	for i := 0; i < n; i++ {
		if err := s.Save(fmt.Sprintf("cmd-%d", i)); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	for i := n - 1; i >= 0; i-- {
		want := fmt.Sprintf("cmd-%d", i)
		if got := s.Prev(); got != want {
			t.Fatalf("Prev() = %q, want %q", got, want)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory([]string{"a"})
	if err := s.Save("b"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := s.Prev(); got != "b" {
		t.Errorf("Prev() = %q, want %q", got, "b")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestOpenRejectsBadPath(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing", "history.db")); err == nil {
		t.Error("Open with a missing parent directory succeeded, want error")
	}
}
