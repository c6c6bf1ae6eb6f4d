package ui

import (
	"time"

	"github.com/atomicstack/font-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// searchDebounceMsg carries the sequence number of the keystroke burst that
// scheduled it. A tick whose sequence is stale was superseded by later
// typing and is dropped without committing.
type searchDebounceMsg struct {
	seq int
}

func (m *Model) scheduleCommit() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// commitSearch applies a debounced filter update. Only the trailing tick of
// a burst commits, and nothing commits after teardown.
func (m *Model) commitSearch(msg searchDebounceMsg) bool {
	if m.closed || msg.seq != m.seq {
		return true
	}
	term := m.input.Value()
	if term == m.term {
		return true
	}
	m.term = term
	m.viewValid = false
	m.offset = 0
	events.Filter.Commit(term)
	return true
}

// handleTextInput redirects editing keys to the search input so typing lands
// in the filter box no matter which row appears focused. Keys the input does
// not recognise fall through unhandled.
func (m *Model) handleTextInput(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete,
		tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd,
		tea.KeyCtrlA, tea.KeyCtrlE, tea.KeyCtrlU, tea.KeyCtrlW, tea.KeyCtrlK:
	default:
		return nil, false
	}
	if !m.input.Focused() {
		m.input.Focus()
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	after := m.input.Value()
	if after == before {
		return cmd, true
	}
	switch {
	case after == "":
		events.Filter.Cleared()
	case len(after) < len(before):
		events.Filter.Backspace(after)
	default:
		events.Filter.Append(after)
	}
	commit := m.scheduleCommit()
	if cmd == nil {
		return commit, true
	}
	return tea.Batch(cmd, commit), true
}
