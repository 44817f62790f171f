package ui

import (
	"reflect"

	"github.com/atomicstack/linepicker/internal/entry"
	"github.com/atomicstack/linepicker/internal/logging/events"
	"github.com/atomicstack/linepicker/internal/theme"
	uistate "github.com/atomicstack/linepicker/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type list = uistate.List

const defaultVisibleRows = 10

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Config describes the per-session rendering options. It is immutable for
// the lifetime of the session.
type Config struct {
	Title       string
	FooterText  string
	MultiSelect bool
	VisibleRows int
	Width       int
	Height      int
	ShowFooter  bool
}

// Result is the terminal outcome of a picker session. Cancellation is
// distinct from a confirmed selection, which always carries at least one id.
type Result struct {
	IDs       []string
	Cancelled bool
}

// Model implements the Bubble Tea model for the picker.
type Model struct {
	list              *list
	title             string
	footerText        string
	visibleRows       int
	showFooter        bool
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	result Result
	done   bool
}

// NewModel initialises the UI state from the candidate entries and session
// configuration.
func NewModel(entries []entry.Entry, cfg Config) *Model {
	m := &Model{
		list:        uistate.NewList(entries, cfg.MultiSelect),
		title:       cfg.Title,
		footerText:  cfg.FooterText,
		visibleRows: cfg.VisibleRows,
		showFooter:  cfg.ShowFooter,
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Result returns the session outcome once the model has reached a terminal
// state. Before that it reports a cancellation, matching the behaviour of a
// session torn down without a confirm.
func (m *Model) Result() Result {
	if !m.done {
		return Result{Cancelled: true}
	}
	return m.result
}

// Done reports whether the session reached a terminal state.
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		return m.cancel()
	case "enter":
		return m.confirm()
	case "up":
		m.moveCursor((*list).MoveCursorUp)
		return nil
	case "down":
		m.moveCursor((*list).MoveCursorDown)
		return nil
	case "home":
		m.moveCursor((*list).MoveCursorHome)
		return nil
	case "end":
		m.moveCursor((*list).MoveCursorEnd)
		return nil
	case "pgup":
		m.moveCursorPage((*list).MoveCursorPageUp)
		return nil
	case "pgdown":
		m.moveCursorPage((*list).MoveCursorPageDown)
		return nil
	case "tab":
		m.toggleCurrent()
		return nil
	case "ctrl+t":
		m.toggleAllVisible()
		return nil
	}
	m.handleTextInput(key)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// cancel aborts the session unconditionally, discarding in-progress marks.
func (m *Model) cancel() tea.Cmd {
	m.result = Result{Cancelled: true}
	m.done = true
	events.Session.Cancel()
	return tea.Quit
}

// confirm resolves the selection. A no-op when the filtered view is empty.
func (m *Model) confirm() tea.Cmd {
	ids := m.list.ConfirmIDs()
	if ids == nil {
		return nil
	}
	m.result = Result{IDs: ids}
	m.done = true
	events.Session.Confirm(ids)
	return tea.Quit
}

func (m *Model) toggleCurrent() {
	before := m.list.Cursor
	if !m.list.ToggleCurrentSelection() {
		return
	}
	id := m.list.Items[before].ID
	events.List.Toggle(id, m.list.IsSelected(id))
}

func (m *Model) toggleAllVisible() {
	if !m.list.ToggleAllVisible() {
		return
	}
	events.List.ToggleAll(len(m.list.SelectedIDs()))
}

func (m *Model) moveCursor(move func(*list) bool) {
	if move(m.list) {
		events.List.Cursor(m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorPage(move func(*list, int) bool) {
	if move(m.list, m.maxVisibleRows()) {
		events.List.Cursor(m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleRows())
}

// maxVisibleRows returns the row allowance for the entry window: the configured
// window size, shrunk when the terminal is too short for the full chrome.
func (m *Model) maxVisibleRows() int {
	rows := m.visibleRows
	if rows <= 0 {
		rows = defaultVisibleRows
	}
	if m.height <= 0 {
		return rows
	}
	used := 1 // query prompt
	if m.title != "" {
		used++
	}
	if m.footerText != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if remain := m.height - used; remain >= 1 && remain < rows {
		rows = remain
	}
	return rows
}
