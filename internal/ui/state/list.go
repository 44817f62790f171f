package state

import (
	"sort"

	"github.com/atomicstack/linepicker/internal/entry"
	"github.com/atomicstack/linepicker/internal/match"
)

// List encapsulates picker session state: the full entry set, the filtered
// view derived from the query, the cursor, the viewport offset, and the
// multi-select marks.
type List struct {
	Full           []entry.Entry
	Items          []entry.Entry
	Query          string
	QueryCursor    int
	Cursor         int
	ViewportOffset int
	MultiSelect    bool
	Selected       map[string]struct{}
}

// NewList constructs a List over the provided entries. The entries are
// copied; source order is the unfiltered display order.
func NewList(entries []entry.Entry, multiSelect bool) *List {
	l := &List{
		Full:        entry.Clone(entries),
		MultiSelect: multiSelect,
		Selected:    make(map[string]struct{}),
	}
	l.applyFilter()
	return l
}

type scoredEntry struct {
	entry entry.Entry
	score int
}

// applyFilter recomputes the filtered view from the full set and the current
// query. Matches are ordered by descending score; ties keep their original
// relative order, so an empty query reproduces source order exactly.
func (l *List) applyFilter() {
	matches := make([]scoredEntry, 0, len(l.Full))
	for _, e := range l.Full {
		if score, ok := match.Score(l.Query, e.Name); ok {
			matches = append(matches, scoredEntry{entry: e, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	l.Items = make([]entry.Entry, len(matches))
	for i, m := range matches {
		l.Items[i] = m.entry
	}
	l.clampCursor()
}

func (l *List) clampCursor() {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}
