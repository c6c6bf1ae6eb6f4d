package ui

import (
	"fmt"

	"github.com/atomicstack/font-picker/internal/backend"
	"github.com/atomicstack/font-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForCatalogEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return catalogDoneMsg{}
		}
		return catalogEventMsg{event: evt}
	}
}

type catalogEventMsg struct {
	event backend.Event
}

type catalogDoneMsg struct{}

// applyCatalogEvent swaps in a reloaded catalog. The snapshot version bump
// invalidates every memoized derivation downstream; a stale selection or
// hover id simply stops resolving, which the reconciler handles.
func (p *Panel) applyCatalogEvent(evt backend.Event) {
	if evt.Err != nil {
		p.errMsg = evt.Err.Error()
		events.Catalog.ReloadError(evt.Err)
		return
	}
	snap := p.store.Replace(evt.Items)
	events.Catalog.Reload(len(evt.Items), snap.Version)
	p.errMsg = ""
	if p.opts.Verbose {
		p.infoMsg = fmt.Sprintf("catalog reloaded (%d fonts)", len(evt.Items))
	}
	if p.picker != nil {
		p.picker.SetSnapshot(snap)
	}
}
