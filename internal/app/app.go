package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/font-picker/internal/backend"
	"github.com/atomicstack/font-picker/internal/catalog"
	"github.com/atomicstack/font-picker/internal/font"
	"github.com/atomicstack/font-picker/internal/logging"
	"github.com/atomicstack/font-picker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath string
	Width       int
	Height      int
	VisibleRows int
	Debounce    time.Duration
	ShowFooter  bool
	Verbose     bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	items := font.Builtin()
	if cfg.CatalogPath != "" {
		loaded, err := font.LoadFile(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		items = loaded
	}
	store := catalog.NewStore(font.DefaultIDs())
	store.Replace(items)

	var watcher *backend.Watcher
	if cfg.CatalogPath != "" {
		w, err := backend.NewWatcher(cfg.CatalogPath, 100*time.Millisecond)
		if err != nil {
			// Live reload is best-effort; the picker works without it.
			logging.Error(fmt.Errorf("watch catalog: %w", err))
		} else {
			watcher = w
			defer watcher.Stop()
		}
	}

	panel := ui.NewPanel(store, ui.PanelOptions{
		Width:       cfg.Width,
		Height:      cfg.Height,
		VisibleRows: cfg.VisibleRows,
		Debounce:    cfg.Debounce,
		ShowFooter:  cfg.ShowFooter,
		Verbose:     cfg.Verbose,
		Watcher:     watcher,
	})
	program := tea.NewProgram(panel, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
