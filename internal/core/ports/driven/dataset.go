package driven

import (
	"context"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

// Backend is a swappable strategy for sourcing catalog entries from
// storage. All variants implement this capability set.
type Backend interface {
	// LoadData materialises the full catalog. A missing source fails
	// with domain.ErrDataNotFound; a present-but-malformed source, or
	// one that yields zero records, fails with domain.ErrInvalidData.
	// Malformed data is never reported as an empty catalog.
	LoadData(ctx context.Context) ([]domain.Entry, error)

	// EntrySchema describes the entry fields and types this backend
	// produces, used purely for validation by the catalog manager.
	EntrySchema() domain.Schema

	// Active reports whether this backend variant is supported for
	// production use. Inactive backends ship disabled without being
	// deleted; the catalog manager refuses to load them.
	Active() bool
}

// Invocation describes one external search-tool process.
type Invocation struct {
	// Command is the tool binary, e.g. "rg".
	Command string

	// Args are the full argument list, ending with the dataset path.
	Args []string
}

// SearchReport is the outcome of one lazy text-backend search.
type SearchReport struct {
	// Entries are the matched catalog entries, in file order.
	Entries []domain.Entry

	// PhraseHits is the number of lines matching the whole prompt.
	PhraseHits int

	// WordHits maps each term to its individual hit count. Only
	// populated for multi-word prompts.
	WordHits map[string]int
}

// Searcher is implemented by text backends that expose entries lazily,
// one external-tool invocation per query, instead of loading the whole
// catalog up front.
type Searcher interface {
	Backend

	// CreateInvocation builds the external-tool invocation for a
	// prompt. Returns nil for an empty prompt: no search is performed
	// rather than scanning the whole file.
	CreateInvocation(prompt string) *Invocation

	// SearchEntries runs the search for a prompt. The context cancels
	// the external process; a caller superseding a stale in-flight
	// search cancels it through here.
	SearchEntries(ctx context.Context, prompt string) (*SearchReport, error)
}

// QuickHit is the minimal-parse result produced by the fast text
// variant: fixed fields plus a pre-joined display string.
type QuickHit struct {
	// Character is the literal character.
	Character string

	// Name is the official character name.
	Name string

	// CodePoint is the canonical identifier, e.g. "U+2192".
	CodePoint string

	// Category is the short category code.
	Category string

	// Ordinal is the source line number reported by the search tool.
	Ordinal int

	// Display is the pre-joined presentation string.
	Display string
}

// QuickSearcher is implemented by the fast text variant, which skips
// structured alias parsing entirely.
type QuickSearcher interface {
	Backend

	// QuickSearch runs the search for a prompt with minimal per-line
	// work.
	QuickSearch(ctx context.Context, prompt string) ([]QuickHit, error)
}
