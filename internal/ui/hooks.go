package ui

import (
	"fmt"

	"github.com/atomicstack/font-picker/internal/font"
	"github.com/atomicstack/font-picker/internal/picker"
)

// pickerHooks wires the picker's five outbound notifications to the panel's
// state. Selection commits close the popup; hover and leave only move the
// panel-owned hover id, which flows back to the picker as props on the next
// cycle.
func pickerHooks(p *Panel) picker.Hooks {
	return picker.Hooks{
		OnSelect: func(id font.ID) {
			p.selectedID = id
			p.pendingClose = true
			if p.opts.Verbose {
				if item, ok := p.store.Snapshot().Find(id); ok {
					p.infoMsg = fmt.Sprintf("font set to %s", item.Label)
				}
			}
		},
		OnHover: func(id font.ID) {
			p.hoveredID = id
		},
		OnLeave: func() {
			p.hoveredID = font.None
		},
		OnOpen: func() {
			p.infoMsg = ""
			p.errMsg = ""
		},
		OnClose: func() {
			p.hoveredID = font.None
		},
	}
}
