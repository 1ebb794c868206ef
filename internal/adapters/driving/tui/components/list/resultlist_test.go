package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

func testResults() []domain.SearchResult {
	return []domain.SearchResult{
		{Entry: domain.Entry{CodePoint: "U+2192", Character: "→", Name: "RIGHTWARDS ARROW", Category: "Sm"}, Score: 2000},
		{Entry: domain.Entry{CodePoint: "U+2190", Character: "←", Name: "LEFTWARDS ARROW", Category: "Sm"}, Score: 1000},
		{Entry: domain.Entry{CodePoint: "U+21D2", Character: "⇒", Name: "RIGHTWARDS DOUBLE ARROW", Category: "Sm"}, Score: 500},
	}
}

func TestSelectedEmptyList(t *testing.T) {
	list := NewResultList(nil)

	_, ok := list.Selected()
	assert.False(t, ok)
}

func TestCursorMovementClamped(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(testResults())

	list.MoveUp()
	selected, ok := list.Selected()
	require.True(t, ok)
	assert.Equal(t, "U+2192", selected.Entry.CodePoint)

	for i := 0; i < 10; i++ {
		list.MoveDown()
	}
	selected, ok = list.Selected()
	require.True(t, ok)
	assert.Equal(t, "U+21D2", selected.Entry.CodePoint)
}

func TestSetResultsResetsCursor(t *testing.T) {
	list := NewResultList(nil)
	list.SetResults(testResults())
	list.MoveDown()

	list.SetResults(testResults()[:1])
	selected, ok := list.Selected()
	require.True(t, ok)
	assert.Equal(t, "U+2192", selected.Entry.CodePoint)
}

func TestViewShowsMatchCountAndAliases(t *testing.T) {
	list := NewResultList(nil)
	results := testResults()
	results[0].Entry.Aliases = []string{"FORWARD"}
	list.SetResults(results)

	view := list.View()
	assert.Contains(t, view, "3 matches")
	assert.Contains(t, view, "RIGHTWARDS ARROW (FORWARD)")
	assert.Contains(t, view, "U+2192")
}

func TestViewEmpty(t *testing.T) {
	list := NewResultList(nil)
	assert.Contains(t, list.View(), "No matches")
}
