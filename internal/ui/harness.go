package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

const cursorPkgPath = "github.com/charmbracelet/bubbles/cursor"

// Harness drives the panel model programmatically for integration tests.
type Harness struct {
	panel *Panel
}

// NewHarness creates a harness for the provided panel. Init runs for its
// synchronous side effects (opening the picker); its returned command is
// discarded because it only carries cursor-blink ticks and, when a watcher
// is configured, a blocking channel read that tests replace by sending
// catalogEventMsg values directly.
func NewHarness(panel *Panel) *Harness {
	panel.Init()
	return &Harness{panel: panel}
}

// Send routes a message through the panel and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.panel == nil {
		return
	}
	mdl, cmd := h.panel.Update(msg)
	if updated, ok := mdl.(*Panel); ok {
		h.panel = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				h.processCmd(c)
			}
			return
		}
		// Cursor blink ticks re-arm themselves forever; drop them so
		// command chains terminate.
		if t := reflect.TypeOf(msg); t != nil && t.PkgPath() == cursorPkgPath {
			return
		}
		mdl, next := h.panel.Update(msg)
		if updated, ok := mdl.(*Panel); ok {
			h.panel = updated
		}
		cmd = next
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.panel == nil {
		return ""
	}
	return h.panel.View()
}

// Panel exposes the underlying model.
func (h *Harness) Panel() *Panel {
	return h.panel
}
