package state

// IsSelected reports whether the given id is marked.
func (l *List) IsSelected(id string) bool {
	if l.Selected == nil {
		return false
	}
	_, ok := l.Selected[id]
	return ok
}

// ToggleSelection toggles mark membership for the supplied id. Marks are
// never cleared by filtering; an entry stays marked while hidden from view.
func (l *List) ToggleSelection(id string) {
	if l.Selected == nil {
		l.Selected = make(map[string]struct{})
	}
	if _, ok := l.Selected[id]; ok {
		delete(l.Selected, id)
	} else {
		l.Selected[id] = struct{}{}
	}
}

// ToggleCurrentSelection toggles the mark on the entry under the cursor.
// Only meaningful in multi-select mode; reports whether a toggle happened.
func (l *List) ToggleCurrentSelection() bool {
	if !l.MultiSelect || len(l.Items) == 0 || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return false
	}
	l.ToggleSelection(l.Items[l.Cursor].ID)
	return true
}

// ToggleAllVisible toggles marks across the filtered view: it marks every
// visible entry, or clears them all when every one is already marked.
// Hidden entries keep their marks. Reports whether anything changed.
func (l *List) ToggleAllVisible() bool {
	if !l.MultiSelect || len(l.Items) == 0 {
		return false
	}
	if l.Selected == nil {
		l.Selected = make(map[string]struct{})
	}
	all := true
	for _, e := range l.Items {
		if !l.IsSelected(e.ID) {
			all = false
			break
		}
	}
	for _, e := range l.Items {
		if all {
			delete(l.Selected, e.ID)
		} else {
			l.Selected[e.ID] = struct{}{}
		}
	}
	return true
}

// ClearSelection removes all marks.
func (l *List) ClearSelection() {
	if len(l.Selected) == 0 {
		return
	}
	for id := range l.Selected {
		delete(l.Selected, id)
	}
}

// SelectedIDs returns the marked ids in source order, so output composes
// deterministically with line-oriented tools regardless of toggle order.
func (l *List) SelectedIDs() []string {
	if len(l.Selected) == 0 {
		return nil
	}
	ids := make([]string, 0, len(l.Selected))
	seen := make(map[string]struct{}, len(l.Selected))
	for _, e := range l.Full {
		if !l.IsSelected(e.ID) {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		ids = append(ids, e.ID)
	}
	return ids
}

// ConfirmIDs resolves the ids a confirm keypress produces: nil when the view
// is empty (nothing to confirm), the marked set when multi-select has marks,
// otherwise the entry under the cursor as an implicit single selection.
func (l *List) ConfirmIDs() []string {
	if len(l.Items) == 0 {
		return nil
	}
	if l.MultiSelect {
		if ids := l.SelectedIDs(); len(ids) > 0 {
			return ids
		}
	}
	return []string{l.Items[l.Cursor].ID}
}
