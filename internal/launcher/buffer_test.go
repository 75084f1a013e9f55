package launcher

import "testing"

func TestBufferInsertAppends(t *testing.T) {
	b := NewBuffer()
	for i, r := range "echo" {
		b.InsertAt(b.Cursor(), r)
		if b.Cursor() != i+1 {
			t.Errorf("after %d insertions cursor = %d, want %d", i+1, b.Cursor(), i+1)
		}
	}
	if b.String() != "echo" {
		t.Errorf("text = %q, want %q", b.String(), "echo")
	}
	if b.Len() != 4 {
		t.Errorf("len = %d, want 4", b.Len())
	}
}

func TestBufferInsertSplices(t *testing.T) {
	b := NewBuffer()
	b.Replace("hllo")
	b.MoveCursor(-3) // cursor after 'h'
	b.InsertAt(b.Cursor(), 'e')
	if b.String() != "hello" {
		t.Errorf("text = %q, want %q", b.String(), "hello")
	}
	if b.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", b.Cursor())
	}
}

func TestBufferInsertOutOfRange(t *testing.T) {
	b := NewBuffer()
	b.Replace("ab")
	b.InsertAt(5, 'x')
	b.InsertAt(-1, 'x')
	if b.String() != "ab" || b.Cursor() != 2 {
		t.Errorf("buffer = %q/%d, want ab/2", b.String(), b.Cursor())
	}
}

func TestBufferDeleteBefore(t *testing.T) {
	b := NewBuffer()
	b.Replace("abc")
	b.DeleteBefore(b.Cursor())
	if b.String() != "ab" || b.Cursor() != 2 {
		t.Errorf("buffer = %q/%d, want ab/2", b.String(), b.Cursor())
	}

	// Deleting at position 0 is a no-op, not an error.
	b.MoveCursor(-2)
	b.DeleteBefore(b.Cursor())
	if b.String() != "ab" || b.Cursor() != 0 {
		t.Errorf("buffer = %q/%d, want ab/0", b.String(), b.Cursor())
	}
}

func TestBufferDeleteOnEmpty(t *testing.T) {
	b := NewBuffer()
	b.DeleteBefore(0)
	b.DeleteBefore(1)
	if b.String() != "" || b.Cursor() != 0 {
		t.Errorf("buffer = %q/%d, want empty/0", b.String(), b.Cursor())
	}
}

func TestBufferMoveCursorClamps(t *testing.T) {
	b := NewBuffer()
	b.Replace("hi")
	b.MoveCursor(10)
	if b.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", b.Cursor())
	}
	b.MoveCursor(-10)
	if b.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", b.Cursor())
	}
}

func TestBufferReplaceMovesCursorToEnd(t *testing.T) {
	b := NewBuffer()
	b.Replace("firefox")
	if b.Cursor() != 7 {
		t.Errorf("cursor = %d, want 7", b.Cursor())
	}
	b.Replace("")
	if b.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", b.Cursor())
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer()
	b.Replace("xterm")
	b.Clear()
	if b.String() != "" || b.Cursor() != 0 {
		t.Errorf("buffer = %q/%d, want empty/0", b.String(), b.Cursor())
	}
}

func TestBufferUnicode(t *testing.T) {
	b := NewBuffer()
	b.Replace("日本")
	if b.Len() != 2 || b.Cursor() != 2 {
		t.Errorf("len/cursor = %d/%d, want 2/2", b.Len(), b.Cursor())
	}
	b.DeleteBefore(b.Cursor())
	if b.String() != "日" {
		t.Errorf("text = %q, want %q", b.String(), "日")
	}
}
