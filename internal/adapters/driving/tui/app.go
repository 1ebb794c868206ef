// Package tui implements the terminal picker interface using the
// Elm-style update loop from bubbletea.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/keymap"
	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/messages"
	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/styles"
	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/views/picker"
	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driving"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// CatalogReloader invalidates a cached catalog so the next search
// reloads from the source.
type CatalogReloader interface {
	Invalidate()
}

// App is the root model of the picker interface.
type App struct {
	picker *picker.View

	reloader CatalogReloader
	changes  <-chan struct{}
}

// Options configures the picker application.
type Options struct {
	// Throttle rate-limits per-keystroke searches. Zero disables it.
	Throttle time.Duration

	// Reloader and Changes connect a dataset watcher. When a change is
	// signalled the catalog is invalidated and the search re-run.
	Reloader CatalogReloader
	Changes  <-chan struct{}
}

// NewApp creates the picker application over a search service.
func NewApp(ctx context.Context, searchService driving.SearchService, opts Options) *App {
	view := picker.NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), searchService).
		WithContext(ctx)
	if opts.Throttle > 0 {
		view = view.WithThrottle(opts.Throttle)
	}

	return &App{
		picker:   view,
		reloader: opts.Reloader,
		changes:  opts.Changes,
	}
}

// Chosen returns the entry the user picked, if any.
func (a *App) Chosen() *domain.Entry {
	return a.picker.Chosen()
}

// Init starts the picker and, when a watcher is attached, the reload
// listener.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.picker.Init()}
	if a.changes != nil {
		cmds = append(cmds, a.waitForChange())
	}
	return tea.Batch(cmds...)
}

// Update routes messages to the picker view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.EntryChosen:
		if err := clipboard.WriteAll(msg.Entry.Character); err != nil {
			logger.Warn("clipboard copy failed: %v", err)
		}
		return a, nil

	case messages.DatasetReloaded:
		if a.changes != nil {
			// Keep listening for further changes.
			var cmd tea.Cmd
			a.picker, cmd = a.picker.Update(msg)
			return a, tea.Batch(cmd, a.waitForChange())
		}
	}

	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(msg)
	return a, cmd
}

// View renders the picker.
func (a *App) View() string {
	return a.picker.View()
}

// waitForChange blocks on the watcher channel and converts a change
// signal into a reload message.
func (a *App) waitForChange() tea.Cmd {
	return func() tea.Msg {
		_, ok := <-a.changes
		if !ok {
			return nil
		}
		if a.reloader != nil {
			a.reloader.Invalidate()
		}
		return messages.DatasetReloaded{}
	}
}

// Run starts the picker program and returns the chosen entry, if any.
func Run(ctx context.Context, searchService driving.SearchService, opts Options) (*domain.Entry, error) {
	app := NewApp(ctx, searchService, opts)
	program := tea.NewProgram(app, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return nil, err
	}
	return app.Chosen(), nil
}
