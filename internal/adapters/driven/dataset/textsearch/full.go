package textsearch

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driven"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// Ensure FullBackend implements the interfaces.
var (
	_ driven.Backend  = (*FullBackend)(nil)
	_ driven.Searcher = (*FullBackend)(nil)
)

// FullBackend is the rich delimited-text variant: every field of a
// matching line is parsed into an entry, and multi-word prompts run
// supplementary per-word searches so callers can report exact-phrase
// versus per-word hit counts.
type FullBackend struct {
	path    string
	command string
	active  bool
}

// NewFull creates a full text-search backend.
func NewFull(path, command string, active bool) *FullBackend {
	if command == "" {
		command = domain.DefaultSearchCommand
	}
	return &FullBackend{path: path, command: command, active: active}
}

// CreateInvocation builds the external-tool invocation for a prompt, or
// nil for an empty prompt.
func (b *FullBackend) CreateInvocation(prompt string) *driven.Invocation {
	return buildInvocation(b.command, prompt, b.path)
}

// SearchEntries runs the phrase search and, for multi-word prompts, the
// supplementary single-word searches. Malformed output lines are skipped,
// never fatal.
func (b *FullBackend) SearchEntries(ctx context.Context, prompt string) (*driven.SearchReport, error) {
	if err := requireSource(b.path); err != nil {
		return nil, err
	}

	inv := b.CreateInvocation(prompt)
	if inv == nil {
		return &driven.SearchReport{}, nil
	}

	lines, err := runInvocation(ctx, inv)
	if err != nil {
		return nil, err
	}

	report := &driven.SearchReport{PhraseHits: len(lines)}
	for _, line := range lines {
		_, rest := splitOrdinal(line)
		entry, ok := domain.ParseLine(rest)
		if !ok {
			continue
		}
		report.Entries = append(report.Entries, entry)
	}

	words := strings.Fields(prompt)
	if len(words) > 1 {
		counts, err := b.wordHitCounts(ctx, words)
		if err != nil {
			return nil, err
		}
		report.WordHits = counts
	}

	logger.Debug("Full text search %q: %d phrase hits", prompt, report.PhraseHits)
	return report, nil
}

// wordHitCounts runs one supplementary search per word concurrently.
func (b *FullBackend) wordHitCounts(ctx context.Context, words []string) (map[string]int, error) {
	var mu sync.Mutex
	counts := make(map[string]int, len(words))

	g, ctx := errgroup.WithContext(ctx)
	for _, word := range words {
		g.Go(func() error {
			lines, err := runInvocation(ctx, b.CreateInvocation(word))
			if err != nil {
				return err
			}
			mu.Lock()
			counts[word] = len(lines)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// LoadData parses the entire dataset file. The lazy per-query path is
// SearchEntries; this exists for callers that need the whole catalog from
// the text representation.
func (b *FullBackend) LoadData(_ context.Context) ([]domain.Entry, error) {
	return loadAllLines(b.path)
}

// EntrySchema describes the fields this backend produces.
func (b *FullBackend) EntrySchema() domain.Schema {
	return domain.EntrySchema()
}

// Active reports whether the text backend family is enabled. Off in the
// current product default; this is a rollout flag, not a structural
// limitation.
func (b *FullBackend) Active() bool {
	return b.active
}
