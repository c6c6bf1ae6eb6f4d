package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/font-picker/internal/font"
	"github.com/atomicstack/font-picker/internal/picker"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// viewLines renders the picker block: the search input followed by the
// windowed row list, or the placeholder when nothing matched. The viewport
// offset follows the resolved hover so the highlighted row stays on screen.
func (m *Model) viewLines(props Props, width int) []string {
	view := m.CurrentView()
	lines := make([]string, 0, m.rows+3)
	lines = append(lines, m.input.View())
	if view.Empty() {
		return append(lines, m.emptyLines()...)
	}

	res := picker.ResolveHovered(view, props.HoveredID, props.SelectedID, m.term)
	hoverIdx := -1
	if res.Item != nil {
		hoverIdx = view.IndexOf(res.Item.ID)
	}

	flat := view.Flat()
	boundary := -1
	if len(view.Default) > 0 && len(view.Other) > 0 {
		boundary = len(view.Default)
	}
	// The separator occupies a visible row of its own, so the window runs
	// over row positions rather than item indexes.
	total := len(flat)
	if boundary >= 0 {
		total++
	}
	m.ensureVisible(total, rowPos(hoverIdx, boundary))

	end := total
	if m.rows > 0 && end-m.offset > m.rows {
		end = m.offset + m.rows
	}
	for pos := m.offset; pos < end; pos++ {
		if pos == boundary {
			lines = append(lines, m.separatorLine(width))
			continue
		}
		idx := pos
		if boundary >= 0 && pos > boundary {
			idx = pos - 1
		}
		lines = append(lines, m.rowLine(flat[idx], idx == hoverIdx, flat[idx].ID == props.SelectedID, width))
	}
	return lines
}

// rowPos maps an item index to its row position in the windowed list, where
// the separator shifts everything below the boundary down by one.
func rowPos(idx, boundary int) int {
	if idx < 0 {
		return -1
	}
	if boundary >= 0 && idx >= boundary {
		return idx + 1
	}
	return idx
}

func (m *Model) emptyLines() []string {
	msg := "(no fonts)"
	if m.term != "" {
		msg = fmt.Sprintf("No fonts match %q", m.term)
	}
	lines := []string{render(styles.Placeholder, msg)}
	all := append(font.CloneItems(m.snap.Default), m.snap.Other...)
	if label, ok := picker.Suggest(all, m.term); ok {
		lines = append(lines, render(styles.Suggestion, fmt.Sprintf("closest match: %s", label)))
	}
	return lines
}

// ensureVisible adjusts the viewport offset so the hovered row stays on
// screen, clamping the window to the list bounds.
func (m *Model) ensureVisible(total, idx int) {
	if total == 0 || m.rows <= 0 {
		m.offset = 0
		return
	}
	maxOffset := total - m.rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
	if idx < 0 {
		return
	}
	if idx < m.offset {
		m.offset = idx
	}
	upper := m.offset + m.rows - 1
	if idx > upper {
		m.offset = idx - m.rows + 1
		if m.offset > maxOffset {
			m.offset = maxOffset
		}
	}
}

func (m *Model) rowLine(item font.Item, hovered, selected bool, width int) string {
	indicator := "▌"
	indicatorStyle := styles.RowIndicator
	rowStyle := styles.Row
	if hovered {
		indicatorStyle = styles.HoveredIndicator
		rowStyle = styles.HoveredRow
	}
	mark := render(rowStyle, "  ")
	if selected {
		mark = render(styles.SelectedMark, "✓ ")
	}
	text := item.Label
	if width > 6 {
		text = truncate.StringWithTail(text, uint(width-6), "…")
	}
	line := render(indicatorStyle, indicator) + " " + mark + render(rowStyle, text)
	if item.Badge != nil {
		line += " " + badgeLine(item.Badge)
	}
	return line
}

func (m *Model) separatorLine(width int) string {
	n := width - 2
	if n < 4 {
		n = 4
	}
	return render(styles.Separator, strings.Repeat("─", n))
}

func badgeLine(b *font.Badge) string {
	style := styles.BadgeNew
	if b.Kind == font.BadgeBeta {
		style = styles.BadgeBeta
	}
	return render(style, " "+b.Text+" ")
}

func render(style *lipgloss.Style, s string) string {
	if style == nil || s == "" {
		return s
	}
	return style.Render(s)
}
