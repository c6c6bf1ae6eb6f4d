package ui

import (
	"time"

	"github.com/atomicstack/font-picker/internal/catalog"
	"github.com/atomicstack/font-picker/internal/font"
	"github.com/atomicstack/font-picker/internal/logging/events"
	"github.com/atomicstack/font-picker/internal/picker"
	"github.com/atomicstack/font-picker/internal/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

// Props are the caller-owned inputs the picker derives from. They are passed
// on every Update/View call; the component never stores them.
type Props struct {
	SelectedID font.ID
	HoveredID  font.ID
}

// Model implements the font picker component. It owns the search input, the
// committed (debounced) search term, and the derived view; everything else
// is derived per cycle from the snapshot and the caller's Props.
type Model struct {
	snap       catalog.Snapshot
	reconciler *picker.Reconciler
	input      textinput.Model
	rows       int
	debounce   time.Duration

	term      string
	seq       int
	view      picker.View
	viewValid bool
	offset    int

	opened bool
	closed bool
}

// NewModel constructs a picker over the supplied snapshot. Hooks carry the
// five outbound notifications; rows caps the visible list; debounce is the
// trailing-edge delay between typing and filter recomputation.
func NewModel(snap catalog.Snapshot, hooks picker.Hooks, rows int, debounce time.Duration) *Model {
	input := textinput.New()
	input.Prompt = "» "
	input.Placeholder = "search fonts"
	if styles.FilterPrompt != nil {
		input.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		input.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		input.PlaceholderStyle = *styles.FilterPlaceholder
	}
	return &Model{
		snap:       snap,
		reconciler: picker.NewReconciler(hooks),
		input:      input,
		rows:       rows,
		debounce:   debounce,
	}
}

// Open marks the component active, fires OnOpen exactly once, and focuses
// the search input.
func (m *Model) Open() tea.Cmd {
	if m.opened {
		return nil
	}
	m.opened = true
	events.Picker.Open()
	if m.reconciler.Hooks.OnOpen != nil {
		m.reconciler.Hooks.OnOpen()
	}
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := m.input.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Close fires OnClose exactly once per mount, regardless of how often it is
// called. A closed picker ignores late debounce ticks.
func (m *Model) Close() {
	if !m.opened || m.closed {
		return
	}
	m.closed = true
	events.Picker.Close()
	if m.reconciler.Hooks.OnClose != nil {
		m.reconciler.Hooks.OnClose()
	}
}

// Closed reports whether the component has been torn down.
func (m *Model) Closed() bool {
	return m.closed
}

// Term returns the committed search term.
func (m *Model) Term() string {
	return m.term
}

// SetSnapshot swaps in a fresh catalog snapshot; the view is recomputed on
// the next read.
func (m *Model) SetSnapshot(snap catalog.Snapshot) {
	m.snap = snap
	m.viewValid = false
}

// CurrentView returns the filtered view for the committed term, recomputing
// only when the snapshot version or term changed.
func (m *Model) CurrentView() picker.View {
	if !m.viewValid || m.view.Version != m.snap.Version || m.view.Term != m.term {
		m.view = picker.Compute(m.snap, m.term)
		m.viewValid = true
		if m.offset > m.view.Len() {
			m.offset = 0
		}
	}
	return m.view
}

// Reconcile derives the hovered item and applies any hover correction
// through the hooks. Safe to call repeatedly: identical inputs hit the
// reconciler memo and fire nothing.
func (m *Model) Reconcile(props Props) *font.Item {
	view := m.CurrentView()
	item, applied := m.reconciler.Reconcile(view, props.HoveredID, props.SelectedID)
	switch applied {
	case picker.CorrectHoverFirst:
		events.Picker.Correction("hover-first", int(view.At(0).ID))
	case picker.CorrectClearHover:
		events.Picker.Correction("clear", 0)
	}
	return item
}

// Update routes a message through the component. The returned bool reports
// whether the message was consumed; unrecognized keys are left for the
// caller so default behaviour (tab order, quit chords) still works.
func (m *Model) Update(msg tea.Msg, props Props) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case searchDebounceMsg:
		return nil, m.commitSearch(msg)
	case tea.KeyMsg:
		return m.handleKey(msg, props)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd, false
	}
}

func (m *Model) handleKey(msg tea.KeyMsg, props Props) (tea.Cmd, bool) {
	if m.closed {
		return nil, false
	}
	view := m.CurrentView()
	switch msg.Type {
	case tea.KeyDown:
		if id, moved := picker.Next(view, props.HoveredID); moved {
			m.emitHover(view, id)
		}
		return nil, true
	case tea.KeyUp:
		if id, moved := picker.Prev(view, props.HoveredID); moved {
			m.emitHover(view, id)
		}
		return nil, true
	case tea.KeyEnter:
		res := picker.ResolveHovered(view, props.HoveredID, props.SelectedID, m.term)
		if res.Item == nil {
			return nil, false
		}
		events.Picker.Select(int(res.Item.ID), res.Item.Label)
		if m.reconciler.Hooks.OnSelect != nil {
			m.reconciler.Hooks.OnSelect(res.Item.ID)
		}
		return nil, true
	case tea.KeyEsc:
		m.Close()
		return nil, true
	}
	return m.handleTextInput(msg)
}

func (m *Model) emitHover(view picker.View, id font.ID) {
	label := ""
	if idx := view.IndexOf(id); idx >= 0 {
		label = view.At(idx).Label
	}
	events.Picker.Hover(int(id), label)
	if m.reconciler.Hooks.OnHover != nil {
		m.reconciler.Hooks.OnHover(id)
	}
}
