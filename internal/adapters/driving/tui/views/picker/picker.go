// Package picker provides the interactive character picker view: a
// search prompt over a live result list, one search per keystroke.
package picker

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/components/input"
	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/components/list"
	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/keymap"
	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/messages"
	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/styles"
	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driving"
)

// View is the picker view: prompt on top, results below.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  *input.SearchInput
	list   *list.ResultList

	searchService driving.SearchService
	ctx           context.Context

	// limiter throttles per-keystroke searches. Only set for backends
	// that spawn an external process per query.
	limiter *rate.Limiter

	// currentSearch identifies the newest in-flight search. Completed
	// searches carrying any other ID are stale and discarded.
	currentSearch uuid.UUID

	lastPrompt string
	chosen     *domain.Entry
	err        error
	width      int
	height     int
}

// NewView creates a picker view over a search service.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		searchService: searchService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for search invocations.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithThrottle rate-limits searches to one per interval, for backends
// where every keystroke spawns an external process.
func (v *View) WithThrottle(interval time.Duration) *View {
	v.limiter = rate.NewLimiter(rate.Every(interval), 1)
	return v
}

// Chosen returns the entry the user selected, if any.
func (v *View) Chosen() *domain.Entry {
	return v.chosen
}

// Err returns the last error shown in the view.
func (v *View) Err() error {
	return v.err
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the picker view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.input.SetWidth(msg.Width)
		v.list.SetDimensions(msg.Width, msg.Height-3)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.DatasetReloaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		// Re-run the current prompt against the fresh catalog.
		return v, v.performSearch(v.input.Value())
	}

	return v.forwardToInput(msg)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case key.Matches(msg, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case key.Matches(msg, v.keymap.Select):
		result, ok := v.list.Selected()
		if !ok {
			return v, nil
		}
		v.chosen = &result.Entry
		return v, tea.Sequence(
			func() tea.Msg { return messages.EntryChosen{Entry: result.Entry} },
			tea.Quit,
		)

	case key.Matches(msg, v.keymap.Clear):
		v.input.Reset()
		v.list.SetResults(nil)
		v.currentSearch = uuid.Nil
		return v, nil
	}

	return v.forwardToInput(msg)
}

// forwardToInput passes a message to the prompt and triggers a search
// when the prompt text changed.
func (v *View) forwardToInput(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	if prompt := v.input.Value(); prompt != v.lastPrompt {
		cmds = append(cmds, v.performSearch(prompt))
	}

	return v, tea.Batch(cmds...)
}

// performSearch starts a new search, superseding any in-flight one.
func (v *View) performSearch(prompt string) tea.Cmd {
	v.lastPrompt = prompt

	searchID := uuid.New()
	v.currentSearch = searchID

	return func() tea.Msg {
		if v.limiter != nil {
			if err := v.limiter.Wait(v.ctx); err != nil {
				return messages.SearchCompleted{SearchID: searchID, Err: err}
			}
		}
		results, err := v.searchService.Search(v.ctx, prompt)
		return messages.SearchCompleted{SearchID: searchID, Results: results, Err: err}
	}
}

// handleSearchCompleted applies results, discarding stale invocations.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.SearchID != v.currentSearch {
		return
	}
	if msg.Err != nil {
		v.err = msg.Err
		return
	}
	v.err = nil
	v.list.SetResults(msg.Results)
}

// View renders the picker.
func (v *View) View() string {
	sections := []string{v.input.View(), ""}
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render(v.err.Error()))
	} else {
		sections = append(sections, v.list.View())
	}
	sections = append(sections, "", v.styles.Muted.Render("enter insert · esc quit · ctrl+u clear"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
