package ui

import (
	"unicode"

	"github.com/atomicstack/linepicker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.list.QueryCursorPos() {
		m.filterCursorDirty = true
	}
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	l := m.list
	switch msg.String() {
	case "ctrl+u":
		before := l.QueryCursorPos()
		if !l.ClearQuery() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cleared()
		m.syncViewport()
		return true
	case "ctrl+w", "alt+backspace":
		before := l.QueryCursorPos()
		if !l.DeleteQueryWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.WordBackspace(l.Query)
		m.syncViewport()
		return true
	case "ctrl+a":
		before := l.QueryCursorPos()
		if !l.MoveQueryCursorStart() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(l.QueryCursor)
		return true
	case "ctrl+e":
		before := l.QueryCursorPos()
		if !l.MoveQueryCursorEnd() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(l.QueryCursor)
		return true
	case "alt+b":
		before := l.QueryCursorPos()
		if !l.MoveQueryCursorWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(l.QueryCursor)
		return true
	case "alt+f":
		before := l.QueryCursorPos()
		if !l.MoveQueryCursorWordForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(l.QueryCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeQueryRune()
	case tea.KeyRunes:
		if msg.Alt {
			return false
		}
		if len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
			if unicode.IsSpace(r) {
				// the dedicated space handler decides between toggling
				// and query input
				return false
			}
		}
		return m.appendToQuery(string(msg.Runes))
	case tea.KeySpace:
		if m.list.MultiSelect {
			m.toggleCurrent()
			return true
		}
		return m.appendToQuery(" ")
	case tea.KeyLeft:
		before := l.QueryCursorPos()
		if !l.MoveQueryCursorRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(l.QueryCursor)
		return true
	case tea.KeyRight:
		before := l.QueryCursorPos()
		if !l.MoveQueryCursorRuneForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(l.QueryCursor)
		return true
	}
	return false
}

func (m *Model) appendToQuery(text string) bool {
	if text == "" {
		return false
	}
	before := m.list.QueryCursorPos()
	if !m.list.InsertQueryText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Append(m.list.Query)
	m.syncViewport()
	return true
}

func (m *Model) removeQueryRune() bool {
	before := m.list.QueryCursorPos()
	if !m.list.DeleteQueryRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Backspace(m.list.Query)
	m.syncViewport()
	return true
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.list.Query
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.list.QueryCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderFilterCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
