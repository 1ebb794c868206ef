package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driven"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driving"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService scores catalog entries against user prompts. For the
// eager backends it iterates the cached catalog; when a lazy Searcher is
// attached it delegates candidate selection to the external tool and
// scores only the returned lines.
type SearchService struct {
	catalog  driving.CatalogService
	searcher driven.Searcher
	scorer   Scorer
}

// NewSearchService creates a search service over a loaded catalog.
func NewSearchService(catalog driving.CatalogService) *SearchService {
	return &SearchService{
		catalog: catalog,
		scorer:  NewScorer(),
	}
}

// WithSearcher attaches a lazy text-search backend. Candidate entries
// then come from per-query external-tool invocations instead of the
// in-memory catalog.
func (s *SearchService) WithSearcher(searcher driven.Searcher) *SearchService {
	s.searcher = searcher
	return s
}

// WithScorer overrides the default scoring configuration.
func (s *SearchService) WithScorer(scorer Scorer) *SearchService {
	s.scorer = scorer
	return s
}

// Search scores the catalog against a free-text prompt and returns
// matches sorted best-first, capped at the configured results limit.
func (s *SearchService) Search(ctx context.Context, prompt string) ([]domain.SearchResult, error) {
	query := domain.NewQuery(prompt)
	if query.Empty() {
		return []domain.SearchResult{}, nil
	}

	logger.Section("Search Execution")
	logger.Debug("Prompt: %q, terms: %v", prompt, query.Terms)

	candidates, err := s.candidates(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(candidates))
	for _, entry := range candidates {
		if score := s.scorer.ScoreMatch(entry, query.Terms); score > 0 {
			results = append(results, domain.SearchResult{Entry: entry, Score: score})
		}
	}

	// Best first; ties break on code point for deterministic output.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Entry.CodePoint < results[j].Entry.CodePoint
	})

	limit := s.catalog.Config().ResultsLimit
	if len(results) > limit {
		results = results[:limit]
	}
	logger.Info("%d results for %q", len(results), prompt)
	return results, nil
}

// candidates selects the entries to score: the whole cached catalog, or
// the lines matched by the external tool when a searcher is attached.
func (s *SearchService) candidates(ctx context.Context, query domain.Query) ([]domain.Entry, error) {
	if s.searcher == nil {
		return s.catalog.Load(ctx)
	}
	if !s.searcher.Active() {
		return nil, fmt.Errorf("%w: text search backend is not active", domain.ErrBackendUnavailable)
	}

	report, err := s.searcher.SearchEntries(ctx, query.Prompt)
	if err != nil {
		return nil, fmt.Errorf("text search: %w", err)
	}
	logger.Debug("Tool reported %d phrase hits", report.PhraseHits)
	if len(report.WordHits) > 0 {
		logger.Debug("Per-word hits: %v", report.WordHits)
	}

	entries := make([]domain.Entry, 0, len(report.Entries))
	for _, e := range report.Entries {
		if e.Printable() {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
