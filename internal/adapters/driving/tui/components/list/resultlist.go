// Package list provides the navigable result list for the picker.
package list

import (
	"fmt"
	"strings"

	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui/styles"
	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

// ResultList displays scored entries in a navigable list.
type ResultList struct {
	results  []domain.SearchResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// SetResults replaces the displayed results and resets the cursor.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.selected = 0
}

// Results returns the currently displayed results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Selected returns the highlighted result, or false when the list is
// empty.
func (r *ResultList) Selected() (domain.SearchResult, bool) {
	if len(r.results) == 0 {
		return domain.SearchResult{}, false
	}
	return r.results[r.selected], true
}

// MoveUp moves the cursor towards the top.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves the cursor towards the bottom.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions updates the render area.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// View renders the visible window of the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No matches")
	}

	visible := r.height - 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := start + visible
	if end > len(r.results) {
		end = len(r.results)
	}

	lines := make([]string, 0, end-start+1)
	lines = append(lines, r.styles.Muted.Render(fmt.Sprintf("%d matches", len(r.results))))
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

// renderRow formats one entry as glyph, name, code point and category.
func (r *ResultList) renderRow(index int) string {
	result := r.results[index]
	entry := result.Entry

	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	name := entry.Name
	if len(entry.Aliases) > 0 {
		name = fmt.Sprintf("%s (%s)", name, strings.Join(entry.Aliases, ", "))
	}
	maxName := r.width - 24
	if maxName < 12 {
		maxName = 12
	}
	if len(name) > maxName {
		name = name[:maxName-3] + "..."
	}

	glyph := r.styles.Glyph.Render(entry.Character)
	meta := r.styles.Muted.Render(fmt.Sprintf("%s %s", entry.CodePoint, entry.FriendlyCategory()))

	row := fmt.Sprintf("%s%s  %s  %s", indicator, glyph, name, meta)
	if index == r.selected {
		return r.styles.Selected.Render(row)
	}
	return r.styles.Normal.Render(row)
}
