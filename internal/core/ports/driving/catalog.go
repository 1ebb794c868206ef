package driving

import (
	"context"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

// CatalogService manages the configured backend and exposes the loaded
// catalog to external actors.
type CatalogService interface {
	// Load dispatches to the configured backend, validates its output
	// against the declared schema, filters non-printable entries, and
	// returns the catalog. Load-time failures surface to the caller and
	// are never masked as an empty catalog.
	Load(ctx context.Context) ([]domain.Entry, error)

	// Config returns the normalised configuration in effect.
	Config() domain.Config

	// SourcePath returns the resolved dataset source path.
	SourcePath() string
}
