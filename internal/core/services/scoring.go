package services

import (
	"strings"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

// Word-match levels returned by wordMatch.
const (
	matchNone   = 0
	matchPrefix = 1
	matchExact  = 2
)

// Location-tier base scores. A name hit is orders of magnitude above any
// number of alias or category hits, so a single strong name match always
// dominates the ranking.
const (
	scoreNameExact  = 2000
	scoreNamePrefix = 1000
	scoreAlias      = 10
	scoreCategory   = 1
)

// Scorer is the pure ranking engine. The zero value requires terms to
// match at token boundaries; MatchSubstrings additionally counts a raw
// substring occurrence anywhere in the name as a prefix-level match.
type Scorer struct {
	// MatchSubstrings enables substring-anywhere matching as a
	// prefix-level hit. On in the product default.
	MatchSubstrings bool
}

// NewScorer returns the default scorer configuration.
func NewScorer() Scorer {
	return Scorer{MatchSubstrings: true}
}

// ScoreMatch scores one entry against a list of query terms. It returns 0
// if and only if at least one term matches nowhere in the entry;
// otherwise a strictly positive score where larger is better.
//
// Each term is tried against locations in strict priority order, stopping
// at the first that matches: name (exact or prefix), aliases (exact token
// only), then the friendly category label (exact token only). The final
// score is the sum of per-term location scores multiplied by the count of
// matched terms. Matching is always case-insensitive.
func (s Scorer) ScoreMatch(entry domain.Entry, terms []string) int {
	if len(terms) == 0 {
		return 0
	}

	total := 0
	matched := 0

	for _, term := range terms {
		score := s.scoreTerm(entry, strings.ToLower(term))
		if score == 0 {
			// Every term must find a home somewhere.
			return 0
		}
		total += score
		matched++
	}

	return total * matched
}

// scoreTerm evaluates one term against the entry's locations in priority
// order. Returns 0 when the term matches nowhere.
func (s Scorer) scoreTerm(entry domain.Entry, term string) int {
	switch s.nameMatch(entry.Name, term) {
	case matchExact:
		return scoreNameExact
	case matchPrefix:
		return scoreNamePrefix
	}

	for _, alias := range entry.Aliases {
		if wordMatch(alias, term) == matchExact {
			return scoreAlias
		}
	}

	if wordMatch(entry.FriendlyCategory(), term) == matchExact {
		return scoreCategory
	}

	return matchNone
}

// nameMatch applies the name-tier rules, including the optional
// substring-anywhere relaxation.
func (s Scorer) nameMatch(name, term string) int {
	level := wordMatch(name, term)
	if level == matchNone && s.MatchSubstrings {
		if strings.Contains(strings.ToLower(name), term) {
			return matchPrefix
		}
	}
	return level
}

// wordMatch tokenizes text into word-character runs and reports how well
// the term matches: 2 for an exact token, 1 for a token prefix, 0 for no
// match. Comparison is case-insensitive; the term must already be
// lower-cased.
func wordMatch(text, term string) int {
	if term == "" {
		return matchNone
	}

	best := matchNone
	for _, token := range tokenize(strings.ToLower(text)) {
		if token == term {
			return matchExact
		}
		if best < matchPrefix && strings.HasPrefix(token, term) {
			best = matchPrefix
		}
	}
	return best
}

// tokenize splits text into maximal [A-Za-z0-9_]+ runs.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	default:
		return false
	}
}
