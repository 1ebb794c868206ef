// Package file provides the TOML-backed configuration store. The
// configuration lives in a single file under the unifill config
// directory; a missing file yields the product defaults.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileConfig is the on-disk TOML shape of the configuration.
type fileConfig struct {
	Backend            string `toml:"backend"`
	Dataset            string `toml:"dataset"`
	ResultsLimit       int    `toml:"results_limit"`
	SourcePath         string `toml:"source_path,omitempty"`
	SearchCommand      string `toml:"search_command,omitempty"`
	EnableTextBackends bool   `toml:"enable_text_backends,omitempty"`
	EnableExperimental bool   `toml:"enable_experimental,omitempty"`
}

// ConfigStore is a file-based implementation of driven.ConfigStore using
// TOML.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
}

// NewConfigStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.unifill/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".unifill")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads the stored configuration, merged over the defaults. A
// missing file is not an error; a present-but-malformed file is.
func (s *ConfigStore) Load() (domain.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	cfg := domain.Config{
		Backend:            domain.BackendKind(fc.Backend),
		Dataset:            fc.Dataset,
		ResultsLimit:       fc.ResultsLimit,
		SourcePath:         fc.SourcePath,
		SearchCommand:      fc.SearchCommand,
		EnableTextBackends: fc.EnableTextBackends,
		EnableExperimental: fc.EnableExperimental,
	}.Normalised()

	if !cfg.Backend.IsValid() {
		return domain.Config{}, fmt.Errorf("%w: unknown backend %q in %s", domain.ErrInvalidInput, fc.Backend, s.filePath)
	}
	return cfg, nil
}

// Save persists the configuration.
func (s *ConfigStore) Save(cfg domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg = cfg.Normalised()
	data, err := toml.Marshal(fileConfig{
		Backend:            cfg.Backend.String(),
		Dataset:            cfg.Dataset,
		ResultsLimit:       cfg.ResultsLimit,
		SourcePath:         cfg.SourcePath,
		SearchCommand:      cfg.SearchCommand,
		EnableTextBackends: cfg.EnableTextBackends,
		EnableExperimental: cfg.EnableExperimental,
	})
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
