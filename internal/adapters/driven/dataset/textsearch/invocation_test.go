package textsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEscapeTerm tests regex metacharacter escaping
func TestEscapeTerm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"arrow", "arrow"},
		{"right arrow", "right arrow"},
		{"1+1", `1\+1`},
		{"a.b", `a\.b`},
		{"[x]", `\[x\]`},
		{"^$()%.[]*+-?", `\^\$\(\)\%\.\[\]\*\+\-\?`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeTerm(tt.in))
		})
	}
}

// TestBuildInvocation tests the external-tool command line
func TestBuildInvocation(t *testing.T) {
	inv := buildInvocation("rg", "right arrow", "/data/unicode_data.txt")
	require.NotNil(t, inv)

	assert.Equal(t, "rg", inv.Command)
	assert.Equal(t, []string{
		"--no-heading",
		"--line-number",
		"-i",
		"-e", "right arrow",
		"/data/unicode_data.txt",
	}, inv.Args)
}

// TestBuildInvocation_EmptyPrompt tests that no invocation is built
func TestBuildInvocation_EmptyPrompt(t *testing.T) {
	assert.Nil(t, buildInvocation("rg", "", "/data/unicode_data.txt"))
	assert.Nil(t, buildInvocation("rg", "   ", "/data/unicode_data.txt"))
}

// TestSplitOrdinal tests line-number prefix handling
func TestSplitOrdinal(t *testing.T) {
	ordinal, rest := splitOrdinal("42:→|RIGHTWARDS ARROW|U+2192|Sm")
	assert.Equal(t, 42, ordinal)
	assert.Equal(t, "→|RIGHTWARDS ARROW|U+2192|Sm", rest)

	// No prefix passes through untouched.
	ordinal, rest = splitOrdinal("→|RIGHTWARDS ARROW|U+2192|Sm")
	assert.Zero(t, ordinal)
	assert.Equal(t, "→|RIGHTWARDS ARROW|U+2192|Sm", rest)
}
