package picker

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/messages"
	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

type stubSearchService struct {
	results []domain.SearchResult
	err     error
	prompts []string
}

func (s *stubSearchService) Search(_ context.Context, prompt string) ([]domain.SearchResult, error) {
	s.prompts = append(s.prompts, prompt)
	return s.results, s.err
}

func sampleResults() []domain.SearchResult {
	return []domain.SearchResult{
		{Entry: domain.Entry{CodePoint: "U+2192", Character: "→", Name: "RIGHTWARDS ARROW", Category: "Sm"}, Score: 2000},
		{Entry: domain.Entry{CodePoint: "U+2190", Character: "←", Name: "LEFTWARDS ARROW", Category: "Sm"}, Score: 1000},
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeystrokeTriggersSearch(t *testing.T) {
	service := &stubSearchService{results: sampleResults()}
	view := NewView(nil, nil, service)
	view.Init()

	view, cmd := view.Update(keyRune('a'))
	require.NotNil(t, cmd)

	msg := collectSearchCompleted(t, cmd())
	view, _ = view.Update(msg)

	assert.Equal(t, []string{"a"}, service.prompts)
	assert.Len(t, view.list.Results(), 2)
}

func TestStaleResultsDiscarded(t *testing.T) {
	service := &stubSearchService{results: sampleResults()}
	view := NewView(nil, nil, service)

	view, cmd := view.Update(keyRune('a'))
	require.NotNil(t, cmd)
	fresh := collectSearchCompleted(t, cmd())

	stale := messages.SearchCompleted{
		SearchID: uuid.New(),
		Results:  []domain.SearchResult{{Entry: domain.Entry{Name: "STALE"}}},
	}
	view, _ = view.Update(stale)
	assert.Empty(t, view.list.Results())

	view, _ = view.Update(fresh)
	assert.Len(t, view.list.Results(), 2)
}

func TestSelectRecordsChosenEntry(t *testing.T) {
	service := &stubSearchService{results: sampleResults()}
	view := NewView(nil, nil, service)

	view, cmd := view.Update(keyRune('a'))
	require.NotNil(t, cmd)
	view, _ = view.Update(collectSearchCompleted(t, cmd()))

	view, cmd = view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.NotNil(t, view.Chosen())
	assert.Equal(t, "→", view.Chosen().Character)
}

func TestSelectWithNoResultsIsNoop(t *testing.T) {
	view := NewView(nil, nil, &stubSearchService{})

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Nil(t, view.Chosen())
}

func TestClearResetsPromptAndResults(t *testing.T) {
	service := &stubSearchService{results: sampleResults()}
	view := NewView(nil, nil, service)

	view, cmd := view.Update(keyRune('a'))
	require.NotNil(t, cmd)
	view, _ = view.Update(collectSearchCompleted(t, cmd()))
	require.Len(t, view.list.Results(), 2)

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Empty(t, view.input.Value())
	assert.Empty(t, view.list.Results())
}

func TestQuitKey(t *testing.T) {
	view := NewView(nil, nil, &stubSearchService{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSearchErrorShownInView(t *testing.T) {
	service := &stubSearchService{err: domain.ErrBackendUnavailable}
	view := NewView(nil, nil, service)

	view, cmd := view.Update(keyRune('a'))
	require.NotNil(t, cmd)
	view, _ = view.Update(collectSearchCompleted(t, cmd()))

	require.Error(t, view.Err())
	assert.Contains(t, view.View(), view.Err().Error())
}

func TestDatasetReloadRerunsPrompt(t *testing.T) {
	service := &stubSearchService{results: sampleResults()}
	view := NewView(nil, nil, service)

	view, cmd := view.Update(keyRune('a'))
	require.NotNil(t, cmd)
	view, _ = view.Update(collectSearchCompleted(t, cmd()))

	view, cmd = view.Update(messages.DatasetReloaded{})
	require.NotNil(t, cmd)
	collectSearchCompleted(t, cmd())

	assert.Equal(t, []string{"a", "a"}, service.prompts)
}

// collectSearchCompleted unwraps the message produced by a search command.
func collectSearchCompleted(t *testing.T, msg tea.Msg) messages.SearchCompleted {
	t.Helper()
	completed, ok := findSearchCompleted(msg)
	require.True(t, ok, "expected a search completion, got %T", msg)
	return completed
}

// findSearchCompleted digs through batched commands for the search result.
func findSearchCompleted(msg tea.Msg) (messages.SearchCompleted, bool) {
	switch m := msg.(type) {
	case messages.SearchCompleted:
		return m, true
	case tea.BatchMsg:
		for _, cmd := range m {
			if cmd == nil {
				continue
			}
			if completed, ok := findSearchCompleted(cmd()); ok {
				return completed, true
			}
		}
	}
	return messages.SearchCompleted{}, false
}
