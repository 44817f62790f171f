package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/linepicker/internal/entry"
)

func TestToggleSelectionPairIsIdentity(t *testing.T) {
	l := newTestMultiList(entry.Entry{ID: "x", Name: "X"}, entry.Entry{ID: "y", Name: "Y"})
	l.ToggleSelection("x")
	if !l.IsSelected("x") {
		t.Fatal("expected x marked after first toggle")
	}
	l.ToggleSelection("x")
	if l.IsSelected("x") {
		t.Fatal("expected x unmarked after second toggle")
	}
	if len(l.Selected) != 0 {
		t.Fatalf("expected empty set, got %v", l.Selected)
	}
}

func TestSelectionSurvivesFiltering(t *testing.T) {
	l := newTestMultiList(
		entry.Entry{ID: "1", Name: "Build"},
		entry.Entry{ID: "2", Name: "Test"},
		entry.Entry{ID: "3", Name: "Bake"},
	)
	l.ToggleSelection("2")
	l.SetQuery("ba", 2)
	if len(l.Items) != 1 || l.Items[0].ID != "3" {
		t.Fatalf("expected only Bake in view, got %#v", l.Items)
	}
	if !l.IsSelected("2") {
		t.Fatal("expected Test to stay marked while filtered out")
	}
	l.ClearQuery()
	if !l.IsSelected("2") {
		t.Fatal("expected Test still marked after re-widening")
	}
}

func TestToggleCurrentSelectionRequiresMultiSelect(t *testing.T) {
	single := newTestList("one")
	if single.ToggleCurrentSelection() {
		t.Fatal("expected toggle to be refused in single-select mode")
	}

	multi := newTestMultiList()
	if multi.ToggleCurrentSelection() {
		t.Fatal("expected toggle to be refused on empty view")
	}

	multi = newTestMultiList(entry.Entry{ID: "a", Name: "A"})
	if !multi.ToggleCurrentSelection() {
		t.Fatal("expected toggle to succeed")
	}
	if !multi.IsSelected("a") {
		t.Fatal("expected cursor entry marked")
	}
}

func TestToggleAllVisible(t *testing.T) {
	l := newTestMultiList(
		entry.Entry{ID: "1", Name: "Build"},
		entry.Entry{ID: "2", Name: "Test"},
		entry.Entry{ID: "3", Name: "Bake"},
	)

	if !l.ToggleAllVisible() {
		t.Fatal("expected toggle-all to mark the view")
	}
	if got := l.SelectedIDs(); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("expected all entries marked, got %v", got)
	}

	if !l.ToggleAllVisible() {
		t.Fatal("expected toggle-all to clear a fully marked view")
	}
	if len(l.Selected) != 0 {
		t.Fatalf("expected all marks cleared, got %v", l.Selected)
	}

	// Narrowed view: only visible entries toggle, hidden marks survive.
	l.ToggleSelection("2")
	l.SetQuery("ba", 2)
	if !l.ToggleAllVisible() {
		t.Fatal("expected toggle-all on the narrowed view")
	}
	if got := l.SelectedIDs(); !reflect.DeepEqual(got, []string{"2", "3"}) {
		t.Fatalf("expected hidden mark kept plus visible marked, got %v", got)
	}

	single := newTestList("one")
	if single.ToggleAllVisible() {
		t.Fatal("expected toggle-all refused in single-select mode")
	}

	empty := newTestMultiList()
	if empty.ToggleAllVisible() {
		t.Fatal("expected toggle-all refused on empty view")
	}
}

func TestSelectedIDsUseSourceOrder(t *testing.T) {
	l := newTestMultiList(
		entry.Entry{ID: "1", Name: "Build"},
		entry.Entry{ID: "2", Name: "Test"},
		entry.Entry{ID: "3", Name: "Bake"},
	)
	l.ToggleSelection("3")
	l.ToggleSelection("1")
	if got := l.SelectedIDs(); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Fatalf("expected ids in source order, got %v", got)
	}
}

func TestConfirmIDsEmptyViewIsNil(t *testing.T) {
	l := newTestList("Build")
	l.SetQuery("zzz", 3)
	if ids := l.ConfirmIDs(); ids != nil {
		t.Fatalf("expected no confirmation on empty view, got %v", ids)
	}

	multi := newTestMultiList(entry.Entry{ID: "1", Name: "Build"})
	multi.ToggleSelection("1")
	multi.SetQuery("zzz", 3)
	if ids := multi.ConfirmIDs(); ids != nil {
		t.Fatalf("expected no confirmation on empty view even with marks, got %v", ids)
	}
}

func TestConfirmIDsSingleSelectUsesCursor(t *testing.T) {
	l := newTestList("Build", "Test", "Bake")
	l.SetQuery("ba", 2)
	if ids := l.ConfirmIDs(); !reflect.DeepEqual(ids, []string{"Bake"}) {
		t.Fatalf("expected cursor entry, got %v", ids)
	}
}

func TestConfirmIDsMultiSelect(t *testing.T) {
	l := newTestMultiList(
		entry.Entry{ID: "1", Name: "Build"},
		entry.Entry{ID: "2", Name: "Test"},
		entry.Entry{ID: "3", Name: "Bake"},
	)
	l.ToggleSelection("1")
	l.ToggleSelection("3")
	l.Cursor = 1
	if ids := l.ConfirmIDs(); !reflect.DeepEqual(ids, []string{"1", "3"}) {
		t.Fatalf("expected marked set regardless of cursor, got %v", ids)
	}

	// Empty mark set falls back to the entry under the cursor.
	l.ClearSelection()
	if ids := l.ConfirmIDs(); !reflect.DeepEqual(ids, []string{"2"}) {
		t.Fatalf("expected implicit single selection, got %v", ids)
	}
}
