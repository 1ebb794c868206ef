package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driven"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driving"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService manages the configured backend: it refuses inactive
// backends, validates backend output against the declared schema, filters
// non-printable entries, and caches the loaded catalog for the session.
type CatalogService struct {
	cfg        domain.Config
	backend    driven.Backend
	sourcePath string

	mu      sync.RWMutex
	entries []domain.Entry
}

// NewCatalogService creates a catalog service over an already-constructed
// backend. The configuration is normalised on the way in, so the results
// limit is clamped at configuration time.
func NewCatalogService(cfg domain.Config, backend driven.Backend, sourcePath string) *CatalogService {
	return &CatalogService{
		cfg:        cfg.Normalised(),
		backend:    backend,
		sourcePath: sourcePath,
	}
}

// Config returns the normalised configuration in effect.
func (s *CatalogService) Config() domain.Config {
	return s.cfg
}

// SourcePath returns the resolved dataset source path.
func (s *CatalogService) SourcePath() string {
	return s.sourcePath
}

// Load materialises and validates the catalog, caching it for repeated
// searches. Failures surface to the caller; a broken dataset is never
// presented as "no matches".
func (s *CatalogService) Load(ctx context.Context) ([]domain.Entry, error) {
	s.mu.RLock()
	cached := s.entries
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	logger.Section("Catalog Load")
	logger.Debug("Backend: %s, source: %s", s.cfg.Backend, s.sourcePath)

	if s.backend == nil {
		return nil, fmt.Errorf("%w: no backend configured", domain.ErrBackendUnavailable)
	}
	if !s.backend.Active() {
		return nil, fmt.Errorf("%w: backend %q is not active", domain.ErrBackendUnavailable, s.cfg.Backend)
	}

	entries, err := s.backend.LoadData(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: backend returned zero entries", domain.ErrInvalidData)
	}

	// Validate the first record against the backend's declared schema.
	// A mismatch is an integration bug, not a missing dataset.
	if err := s.backend.EntrySchema().Validate(entries[0].Record()); err != nil {
		return nil, err
	}

	filtered := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Printable() {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == 0 {
		// A dataset of nothing but control/unassigned characters is a
		// broken dataset, not an empty search space.
		return nil, fmt.Errorf("%w: all %d entries are non-printable", domain.ErrInvalidData, len(entries))
	}
	logger.Info("Loaded %d entries (%d filtered as non-printable)", len(filtered), len(entries)-len(filtered))

	s.mu.Lock()
	s.entries = filtered
	s.mu.Unlock()
	return filtered, nil
}

// Invalidate drops the cached catalog so the next Load re-reads the
// source. Called when the dataset file changes on disk.
func (s *CatalogService) Invalidate() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
	logger.Debug("Catalog cache invalidated")
}
