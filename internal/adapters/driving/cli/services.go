package cli

import (
	"context"
	"fmt"

	"github.com/unifill-labs/unifill-cli/internal/adapters/driven/config/file"
	"github.com/unifill-labs/unifill-cli/internal/adapters/driven/dataset"
	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driven"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driving"
	"github.com/unifill-labs/unifill-cli/internal/core/services"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// Services wired by initServices and swapped out in tests.
var (
	configStore    driven.ConfigStore
	catalogService driving.CatalogService
	searchService  driving.SearchService

	// reloadableCatalog is the concrete catalog when it supports cache
	// invalidation, used by the dataset watcher.
	reloadableCatalog *services.CatalogService

	// quickSearcher is set when the configured backend supports the
	// minimal-parse line search.
	quickSearcher driven.QuickSearcher
)

// initServices builds the service graph from the stored configuration
// and command line overrides. Already-wired services (tests) are kept.
func initServices() error {
	if searchService != nil && catalogService != nil {
		return nil
	}

	if configStore == nil {
		store, err := file.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("failed to open config store: %w", err)
		}
		configStore = store
	}

	cfg, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = applyOverrides(cfg)

	if !cfg.Backend.IsValid() {
		return fmt.Errorf("%w: unknown backend %q", domain.ErrInvalidInput, cfg.Backend)
	}

	backend, sourcePath, err := dataset.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialise backend: %w", err)
	}
	logger.Debug("backend %s, source %s", cfg.Backend, sourcePath)

	catalog := services.NewCatalogService(cfg, backend, sourcePath)
	catalogService = catalog
	reloadableCatalog = catalog

	// An inactive backend must fail through the catalog load gate, so
	// the lazy search capability is only attached when the backend is
	// enabled for use.
	search := services.NewSearchService(catalog)
	if searcher, ok := backend.(driven.Searcher); ok && searcher.Active() {
		search = search.WithSearcher(searcher)
	}
	searchService = search

	if quick, ok := backend.(driven.QuickSearcher); ok {
		quickSearcher = quick
	}

	return nil
}

// applyOverrides layers command line flags over the stored configuration.
func applyOverrides(cfg domain.Config) domain.Config {
	if backendFlag != "" {
		cfg.Backend = domain.BackendKind(backendFlag)
	}
	if datasetFlag != "" {
		cfg.Dataset = datasetFlag
	}
	if limitFlag > 0 {
		cfg.ResultsLimit = limitFlag
	}
	if sourceFlag != "" {
		cfg.SourcePath = sourceFlag
	}
	return cfg.Normalised()
}

// newDatasetWatcher starts a watcher over the dataset source file and
// returns its change channel.
func newDatasetWatcher(ctx context.Context, sourcePath string) (<-chan struct{}, error) {
	watcher, err := services.NewDatasetWatcher(sourcePath)
	if err != nil {
		return nil, err
	}
	go watcher.Run(ctx)
	return watcher.Changes(), nil
}
