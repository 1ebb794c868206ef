package driven

import "github.com/unifill-labs/unifill-cli/internal/core/domain"

// ConfigStore persists the application configuration.
// Implementations handle storage (e.g. TOML files) and defaulting.
type ConfigStore interface {
	// Load reads the stored configuration. A missing store yields the
	// defaults, not an error.
	Load() (domain.Config, error)

	// Save persists the configuration.
	Save(cfg domain.Config) error

	// Path returns the configuration file path.
	Path() string
}
