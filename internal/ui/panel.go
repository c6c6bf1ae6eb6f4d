package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/font-picker/internal/backend"
	"github.com/atomicstack/font-picker/internal/catalog"
	"github.com/atomicstack/font-picker/internal/font"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultPanelWidth = 48

// PanelOptions carries the runtime knobs the panel and its picker need.
type PanelOptions struct {
	Width       int
	Height      int
	VisibleRows int
	Debounce    time.Duration
	ShowFooter  bool
	Verbose     bool
	Watcher     *backend.Watcher
}

// Panel is the program model. It plays the role of the drawing application's
// property panel: the authoritative owner of the selected and hovered font
// ids, which it feeds to the picker as props and mutates only through the
// picker's hooks.
type Panel struct {
	store *catalog.Store
	opts  PanelOptions

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	picker       *Model
	selectedID   font.ID
	hoveredID    font.ID
	pendingClose bool

	watcher *backend.Watcher
	infoMsg string
	errMsg  string
}

// NewPanel builds the panel with the picker open, selecting the first
// visible font when the catalog is non-empty.
func NewPanel(store *catalog.Store, opts PanelOptions) *Panel {
	p := &Panel{
		store:   store,
		opts:    opts,
		watcher: opts.Watcher,
	}
	if opts.Width > 0 {
		p.width = opts.Width
		p.fixedWidth = true
	}
	if opts.Height > 0 {
		p.height = opts.Height
		p.fixedHeight = true
	}
	snap := store.Snapshot()
	if len(snap.Default) > 0 {
		p.selectedID = snap.Default[0].ID
	} else if len(snap.Other) > 0 {
		p.selectedID = snap.Other[0].ID
	}
	return p
}

func (p *Panel) props() Props {
	return Props{SelectedID: p.selectedID, HoveredID: p.hoveredID}
}

func (p *Panel) openPicker() tea.Cmd {
	hooks := pickerHooks(p)
	p.hoveredID = font.None
	p.picker = NewModel(p.store.Snapshot(), hooks, p.opts.VisibleRows, p.opts.Debounce)
	return p.picker.Open()
}

// Init is part of the tea.Model interface.
func (p *Panel) Init() tea.Cmd {
	cmds := []tea.Cmd{p.openPicker()}
	if p.watcher != nil {
		cmds = append(cmds, waitForCatalogEvent(p.watcher))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (p *Panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !p.fixedWidth {
			p.width = msg.Width
		}
		if !p.fixedHeight {
			p.height = msg.Height
		}
	case catalogEventMsg:
		p.applyCatalogEvent(msg.event)
		if p.watcher != nil {
			cmds = append(cmds, waitForCatalogEvent(p.watcher))
		}
	case catalogDoneMsg:
		p.watcher = nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return p, tea.Quit
		}
		if p.picker != nil {
			cmd, _ := p.picker.Update(msg, p.props())
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		} else {
			switch msg.String() {
			case "f", "enter":
				cmds = append(cmds, p.openPicker())
			case "q", "esc":
				return p, tea.Quit
			}
		}
	default:
		if p.picker != nil {
			cmd, _ := p.picker.Update(msg, p.props())
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	p.finishCycle()
	if len(cmds) == 0 {
		return p, nil
	}
	return p, tea.Batch(cmds...)
}

// finishCycle tears down a picker that closed during this update and runs
// hover reconciliation with the post-update props, applying any correction
// before the next render.
func (p *Panel) finishCycle() {
	if p.picker == nil {
		return
	}
	if p.pendingClose {
		p.pendingClose = false
		p.picker.Close()
	}
	if p.picker.Closed() {
		p.picker = nil
		p.hoveredID = font.None
		return
	}
	p.picker.Reconcile(p.props())
}

// View is part of the tea.Model interface.
func (p *Panel) View() string {
	width := p.width
	if width <= 0 {
		width = defaultPanelWidth
	}
	lines := make([]string, 0, 16)
	lines = append(lines, render(styles.Header, "Text properties"))
	lines = append(lines, render(styles.Row, "Font: ")+render(styles.PanelValue, p.selectedLabel()))
	lines = append(lines, "")
	if p.picker != nil {
		lines = append(lines, p.picker.viewLines(p.props(), width)...)
	} else {
		lines = append(lines, render(styles.Placeholder, "press f to change the font"))
	}
	if p.errMsg != "" {
		lines = append(lines, "", render(styles.Error, fmt.Sprintf("Error: %s", p.errMsg)))
	}
	if p.infoMsg != "" {
		lines = append(lines, "", render(styles.Footer, p.infoMsg))
	}
	if p.opts.ShowFooter {
		lines = append(lines, "", render(styles.Footer, "↑/↓ move  enter select  esc close  ctrl+c quit"))
	}
	return strings.Join(lines, "\n")
}

func (p *Panel) selectedLabel() string {
	item, ok := p.store.Snapshot().Find(p.selectedID)
	if !ok {
		return "—"
	}
	return item.Label
}
