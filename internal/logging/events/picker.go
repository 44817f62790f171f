package events

import "github.com/atomicstack/linepicker/internal/logging"

type SessionTracer struct{}

type FilterTracer struct{}

type ListTracer struct{}

var (
	Session = SessionTracer{}
	Filter  = FilterTracer{}
	List    = ListTracer{}
)

func (SessionTracer) Start(payload map[string]interface{}) {
	logging.Trace("session.start", payload)
}

func (SessionTracer) Confirm(ids []string) {
	logging.Trace("session.confirm", map[string]interface{}{"ids": ids})
}

func (SessionTracer) Cancel() {
	logging.Trace("session.cancel", nil)
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"query": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) WordBackspace(query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (ListTracer) Cursor(cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"cursor": cursor})
}

func (ListTracer) Toggle(id string, selected bool) {
	logging.Trace("list.toggle", map[string]interface{}{"id": id, "selected": selected})
}

func (ListTracer) ToggleAll(marked int) {
	logging.Trace("list.toggle-all", map[string]interface{}{"marked": marked})
}
