package textsearch

import (
	"context"
	"strings"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driven"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// Ensure FastBackend implements the interfaces.
var (
	_ driven.Backend       = (*FastBackend)(nil)
	_ driven.QuickSearcher = (*FastBackend)(nil)
)

// fastFieldCount is how many fields the fast variant splits off a line:
// character, name, code point, category. Aliases stay unparsed in the
// remainder.
const fastFieldCount = 5

// FastBackend is the minimal-parse delimited-text variant. It extracts
// only the fixed fields plus a pre-joined display string, keeping
// per-line work as small as possible when the caller does not need
// structured aliases.
type FastBackend struct {
	path    string
	command string
	active  bool
}

// NewFast creates a fast text-search backend.
func NewFast(path, command string, active bool) *FastBackend {
	if command == "" {
		command = domain.DefaultSearchCommand
	}
	return &FastBackend{path: path, command: command, active: active}
}

// CreateInvocation builds the external-tool invocation for a prompt, or
// nil for an empty prompt.
func (b *FastBackend) CreateInvocation(prompt string) *driven.Invocation {
	return buildInvocation(b.command, prompt, b.path)
}

// QuickSearch runs the search and parses each matching line into a
// minimal hit. Malformed lines are skipped.
func (b *FastBackend) QuickSearch(ctx context.Context, prompt string) ([]driven.QuickHit, error) {
	if err := requireSource(b.path); err != nil {
		return nil, err
	}

	inv := b.CreateInvocation(prompt)
	if inv == nil {
		return nil, nil
	}

	lines, err := runInvocation(ctx, inv)
	if err != nil {
		return nil, err
	}

	hits := make([]driven.QuickHit, 0, len(lines))
	for _, line := range lines {
		ordinal, rest := splitOrdinal(line)
		parts := strings.SplitN(rest, "|", fastFieldCount)
		if len(parts) < fastFieldCount-1 {
			continue
		}
		hits = append(hits, driven.QuickHit{
			Character: parts[0],
			Name:      parts[1],
			CodePoint: parts[2],
			Category:  parts[3],
			Ordinal:   ordinal,
			Display:   strings.Join([]string{parts[0], parts[1], parts[2], domain.FriendlyCategory(parts[3])}, "  "),
		})
	}

	logger.Debug("Fast text search %q: %d hits", prompt, len(hits))
	return hits, nil
}

// LoadData parses the entire dataset file with the shared line parser.
func (b *FastBackend) LoadData(_ context.Context) ([]domain.Entry, error) {
	return loadAllLines(b.path)
}

// EntrySchema describes the fields this backend produces.
func (b *FastBackend) EntrySchema() domain.Schema {
	return domain.EntrySchema()
}

// Active reports whether the text backend family is enabled.
func (b *FastBackend) Active() bool {
	return b.active
}
