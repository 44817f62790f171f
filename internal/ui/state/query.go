package state

import "unicode"

// SetQuery replaces the query and query cursor, refilters the view, and
// resets the list cursor to the top whenever the query text changed.
func (l *List) SetQuery(query string, cursor int) {
	changed := query != l.Query
	l.Query = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	l.QueryCursor = cursor
	if changed {
		l.Cursor = 0
		l.ViewportOffset = 0
	}
	l.applyFilter()
}

// QueryCursorPos returns the rune offset of the query cursor.
func (l *List) QueryCursorPos() int {
	runes := []rune(l.Query)
	if l.QueryCursor < 0 {
		return 0
	}
	if l.QueryCursor > len(runes) {
		return len(runes)
	}
	return l.QueryCursor
}

// InsertQueryText inserts text into the query at the cursor position.
func (l *List) InsertQueryText(text string) bool {
	if text == "" {
		return false
	}
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryRuneBackward deletes a rune before the query cursor.
func (l *List) DeleteQueryRuneBackward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	l.SetQuery(string(updated), pos-1)
	return true
}

// DeleteQueryWordBackward deletes the word preceding the cursor.
func (l *List) DeleteQueryWordBackward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	l.SetQuery(string(updated), i)
	return true
}

// ClearQuery resets the query to empty.
func (l *List) ClearQuery() bool {
	if l.Query == "" {
		return false
	}
	l.SetQuery("", 0)
	return true
}

// MoveQueryCursorStart moves the query cursor to the start.
func (l *List) MoveQueryCursorStart() bool {
	if l.QueryCursorPos() == 0 {
		return false
	}
	l.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the query cursor to the end.
func (l *List) MoveQueryCursorEnd() bool {
	end := len([]rune(l.Query))
	if l.QueryCursorPos() == end {
		return false
	}
	l.QueryCursor = end
	return true
}

// MoveQueryCursorWordBackward moves the query cursor one word backward.
func (l *List) MoveQueryCursorWordBackward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	if i == pos {
		return false
	}
	l.QueryCursor = i
	return true
}

// MoveQueryCursorWordForward moves the query cursor one word forward.
func (l *List) MoveQueryCursorWordForward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	l.QueryCursor = i
	return true
}

// MoveQueryCursorRuneBackward moves the query cursor one rune backward.
func (l *List) MoveQueryCursorRuneBackward() bool {
	if l.QueryCursorPos() == 0 {
		return false
	}
	l.QueryCursor = l.QueryCursorPos() - 1
	return true
}

// MoveQueryCursorRuneForward moves the query cursor one rune forward.
func (l *List) MoveQueryCursorRuneForward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	l.QueryCursor = pos + 1
	return true
}
