// Package input provides the search prompt component for the picker.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/styles"
)

// SearchInput wraps a bubbles textinput with picker styling.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
}

// NewSearchInput creates a new search input component.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Type to search characters..."
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 50

	return &SearchInput{
		textinput: ti,
		styles:    s,
	}
}

// Init initialises the search input.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the search input.
func (s *SearchInput) View() string {
	label := s.styles.Title.Render("> ")
	return lipgloss.JoinHorizontal(lipgloss.Center, label, s.textinput.View())
}

// Value returns the current prompt text.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// Reset clears the prompt.
func (s *SearchInput) Reset() {
	s.textinput.Reset()
}

// SetWidth sets the input width.
func (s *SearchInput) SetWidth(width int) {
	inputWidth := width - 4
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.textinput.Width = inputWidth
}
