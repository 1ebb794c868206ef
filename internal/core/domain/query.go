package domain

import "strings"

// Query is an ordered sequence of lower-cased search terms derived from
// user input. Queries are ephemeral, constructed per search invocation.
type Query struct {
	// Prompt is the raw user input the query was derived from.
	Prompt string

	// Terms are the whitespace-split, lower-cased units of the prompt.
	// Empty terms are discarded.
	Terms []string
}

// NewQuery splits user input on whitespace into lower-cased terms.
func NewQuery(input string) Query {
	return Query{
		Prompt: input,
		Terms:  strings.Fields(strings.ToLower(input)),
	}
}

// Empty reports whether the query carries no terms.
func (q Query) Empty() bool {
	return len(q.Terms) == 0
}

// MultiWord reports whether the query has more than one term.
func (q Query) MultiWord() bool {
	return len(q.Terms) > 1
}

// SearchResult is a scored catalog entry returned by a search.
type SearchResult struct {
	// Entry is the matched catalog entry.
	Entry Entry

	// Score is the relevance score. Larger is better; zero never appears
	// in results.
	Score int
}
