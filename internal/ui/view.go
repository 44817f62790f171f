package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model. Each call is a pure function of the current
// state: identical state produces an identical frame.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	if m.title != "" {
		lines = append(lines, styledLine{text: m.title, style: styles.Header})
	}
	lines = append(lines, styledLine{text: m.filterPrompt(), raw: true})

	m.syncViewport()
	l := m.list
	if len(l.Items) == 0 {
		msg := "(no entries)"
		if l.Query != "" {
			msg = fmt.Sprintf("No matches for %q", l.Query)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		start := l.ViewportOffset
		displayItems := l.Items
		if maxRows := m.maxVisibleRows(); maxRows > 0 && len(displayItems) > maxRows {
			if start < 0 {
				start = 0
			}
			if start+maxRows > len(displayItems) {
				start = len(displayItems) - maxRows
				if start < 0 {
					start = 0
				}
				l.ViewportOffset = start
			}
			displayItems = displayItems[start : start+maxRows]
		} else {
			start = 0
		}
		for i, item := range displayItems {
			idx := start + i
			lines = append(lines, m.buildItemLine(item.ID, item.Name, idx))
		}
	}

	if m.footerText != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerText, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerHint(), style: styles.Footer})
	}
	if m.height > 0 {
		lines = limitHeight(lines, m.height, m.width)
	}
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) footerHint() string {
	if m.list.MultiSelect {
		return "↑/↓ move  space mark  enter confirm  esc cancel"
	}
	return "↑/↓ move  enter confirm  esc cancel"
}

// buildItemLine constructs a single styledLine for an entry row. The row at
// the cursor gets the highlight styles; in multi-select mode every row
// carries a [x]/[ ] mark prefix.
func (m *Model) buildItemLine(id, label string, idx int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	selectDisplay := ""
	if m.list.MultiSelect {
		mark := " "
		if m.list.IsSelected(id) {
			mark = "x"
		}
		selectDisplay = fmt.Sprintf("[%s] ", mark)
	}
	if idx == m.list.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + selectDisplay + label
	if m.width > 0 {
		if pad := m.width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
