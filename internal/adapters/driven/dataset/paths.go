package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// dataDirName is the application directory under the user data home.
const dataDirName = "unifill"

// bundledDataDir is the fallback location relative to the working
// directory, used for development checkouts.
const bundledDataDir = "data"

// fileExtension maps each backend kind to its source-file representation.
func fileExtension(kind domain.BackendKind) string {
	switch kind {
	case domain.BackendTextFull, domain.BackendTextFast:
		return ".txt"
	case domain.BackendSQLite:
		return ".db"
	default:
		return ".json"
	}
}

// datasetStem maps the dataset variant identifier to its file stem.
func datasetStem(dataset string) string {
	if dataset == domain.DatasetExtended {
		return "unicode_data_extended"
	}
	return "unicode_data"
}

// ResolveSourcePath picks the dataset file for the configuration by
// probing, in order: the explicit override, the user-data-home location,
// and the bundled default. The first existing candidate wins; when none
// exists the user-data-home path is returned so the backend reports a
// data-not-found condition against the canonical location.
func ResolveSourcePath(cfg domain.Config) (string, error) {
	if cfg.SourcePath != "" {
		return cfg.SourcePath, nil
	}

	filename := datasetStem(cfg.Dataset) + fileExtension(cfg.Backend)

	dataHome, err := userDataHome()
	if err != nil {
		return "", err
	}
	candidates := []string{
		filepath.Join(dataHome, dataDirName, filename),
		filepath.Join(bundledDataDir, filename),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			logger.Debug("Resolved dataset path: %s", candidate)
			return candidate, nil
		}
	}
	return candidates[0], nil
}

// userDataHome returns $XDG_DATA_HOME, defaulting to ~/.local/share.
func userDataHome() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}
