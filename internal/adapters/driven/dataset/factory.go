// Package dataset constructs catalog backends from configuration and
// resolves dataset source paths. The backend kind set is small and
// closed; dispatch is an explicit switch, not open-ended registration.
package dataset

import (
	"fmt"

	"github.com/unifill-labs/unifill-cli/internal/adapters/driven/dataset/sqlite"
	"github.com/unifill-labs/unifill-cli/internal/adapters/driven/dataset/table"
	"github.com/unifill-labs/unifill-cli/internal/adapters/driven/dataset/textsearch"
	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driven"
)

// New builds the backend selected by the configuration and returns it
// together with the resolved source path. The configuration must be in
// normalised form.
func New(cfg domain.Config) (driven.Backend, string, error) {
	path, err := ResolveSourcePath(cfg)
	if err != nil {
		return nil, "", err
	}

	switch cfg.Backend {
	case domain.BackendTable:
		return table.New(path), path, nil

	case domain.BackendTextFull:
		return textsearch.NewFull(path, cfg.SearchCommand, cfg.EnableTextBackends), path, nil

	case domain.BackendTextFast:
		return textsearch.NewFast(path, cfg.SearchCommand, cfg.EnableTextBackends), path, nil

	case domain.BackendSQLite:
		return sqlite.New(path, cfg.EnableExperimental), path, nil

	default:
		return nil, "", fmt.Errorf("%w: unknown backend %q", domain.ErrInvalidInput, cfg.Backend)
	}
}
