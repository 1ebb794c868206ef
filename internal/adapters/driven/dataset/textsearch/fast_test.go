package textsearch

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

// TestFastBackend_QuickSearch tests minimal-parse hits with display strings
func TestFastBackend_QuickSearch(t *testing.T) {
	dataset := writeTextDataset(t, sampleLines)
	tool := stubTool(t, `printf '7:→|RIGHTWARDS ARROW|U+2192|Sm|FORWARD|RIGHT ARROW\nshort|line\n'`)

	hits, err := NewFast(dataset, tool, true).QuickSearch(context.Background(), "arrow")
	require.NoError(t, err)
	require.Len(t, hits, 1)

	hit := hits[0]
	assert.Equal(t, "→", hit.Character)
	assert.Equal(t, "RIGHTWARDS ARROW", hit.Name)
	assert.Equal(t, "U+2192", hit.CodePoint)
	assert.Equal(t, "Sm", hit.Category)
	assert.Equal(t, 7, hit.Ordinal)
	assert.Equal(t, "→  RIGHTWARDS ARROW  U+2192  Math Symbol", hit.Display)
}

// TestFastBackend_FourFieldLine tests lines without aliases still parse
func TestFastBackend_FourFieldLine(t *testing.T) {
	dataset := writeTextDataset(t, sampleLines)
	tool := stubTool(t, `printf '3:©|COPYRIGHT SIGN|U+00A9|So\n'`)

	hits, err := NewFast(dataset, tool, true).QuickSearch(context.Background(), "copyright")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "COPYRIGHT SIGN", hits[0].Name)
}

// TestFastBackend_MissingSource tests data-not-found before any search
func TestFastBackend_MissingSource(t *testing.T) {
	backend := NewFast(filepath.Join(t.TempDir(), "absent.txt"), "rg", true)

	_, err := backend.QuickSearch(context.Background(), "arrow")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

// TestFastBackend_EmptyPrompt tests no invocation for blank prompts
func TestFastBackend_EmptyPrompt(t *testing.T) {
	dataset := writeTextDataset(t, sampleLines)
	tool := stubTool(t, `exit 2`)

	hits, err := NewFast(dataset, tool, true).QuickSearch(context.Background(), " ")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

// TestFastBackend_InactiveByDefaultConfig tests the rollout flag
func TestFastBackend_InactiveByDefaultConfig(t *testing.T) {
	assert.False(t, NewFast("x", "", false).Active())
}
