package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewQuery_SplitsAndLowercases tests term derivation from raw input
func TestNewQuery_SplitsAndLowercases(t *testing.T) {
	q := NewQuery("RIGHT  Arrow\tmath")
	assert.Equal(t, []string{"right", "arrow", "math"}, q.Terms)
	assert.True(t, q.MultiWord())
	assert.False(t, q.Empty())
}

// TestNewQuery_Empty tests whitespace-only input yields no terms
func TestNewQuery_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		q := NewQuery(input)
		assert.True(t, q.Empty(), "input %q", input)
		assert.False(t, q.MultiWord())
	}
}
