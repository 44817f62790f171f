package state

import "testing"

func TestMoveCursorClampsWithoutWraparound(t *testing.T) {
	l := newTestList("a", "b", "c")
	if l.MoveCursorUp() {
		t.Fatal("expected up at top edge to be a no-op")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor to stay at 0, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorDown() {
		t.Fatal("expected down at bottom edge to be a no-op")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor to stay at 2, got %d", l.Cursor)
	}
}

func TestCursorStaysInBoundsUnderEventSequences(t *testing.T) {
	l := newTestList("alpha", "beta", "gamma", "delta")
	steps := []func() bool{
		l.MoveCursorDown,
		l.MoveCursorDown,
		func() bool { l.SetQuery("a", 1); return true },
		l.MoveCursorDown,
		l.MoveCursorDown,
		l.MoveCursorDown,
		func() bool { return l.DeleteQueryRuneBackward() },
		l.MoveCursorUp,
		l.MoveCursorUp,
		l.MoveCursorUp,
	}
	for i, step := range steps {
		step()
		if len(l.Items) == 0 {
			continue
		}
		if l.Cursor < 0 || l.Cursor >= len(l.Items) {
			t.Fatalf("step %d: cursor %d out of bounds for %d items", i, l.Cursor, len(l.Items))
		}
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatal("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	if !l.MoveCursorEnd() {
		t.Fatal("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}

	empty := newTestList()
	if empty.MoveCursorHome() || empty.MoveCursorEnd() {
		t.Fatal("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) {
		t.Fatal("expected movement on first page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) {
		t.Fatal("expected movement on second page down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatal("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(10) {
		t.Fatal("expected movement back to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleScrollFollow(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	// Minimal movement: a cursor already inside the window leaves the
	// offset untouched.
	l.Cursor = 3
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset unchanged at 3, got %d", l.ViewportOffset)
	}

	l.Cursor = 1
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset to follow cursor up, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}
}
