package driving

import (
	"context"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

// SearchService provides ranked catalog search to external actors.
type SearchService interface {
	// Search scores the catalog against a free-text prompt and returns
	// matches sorted best-first, capped at the configured results limit.
	Search(ctx context.Context, prompt string) ([]domain.SearchResult, error)
}
