package domain

// BackendKind identifies a catalog backend strategy. The set is small and
// closed; the catalog manager dispatches over it explicitly.
type BackendKind string

// Available backend kinds.
const (
	// BackendTable parses the JSON table file wholesale into memory.
	// Fastest for repeated in-process searches; the interactive default.
	BackendTable BackendKind = "table"

	// BackendTextFull searches the pipe-delimited text file with an
	// external tool per query, parsing every field into rich entries.
	BackendTextFull BackendKind = "text-full"

	// BackendTextFast is the minimal-parse text variant: fixed fields
	// plus a pre-joined display string, least per-line work.
	BackendTextFast BackendKind = "text-fast"

	// BackendSQLite reads entries from a SQLite database. Experimental.
	BackendSQLite BackendKind = "sqlite"
)

// IsValid returns true if the backend kind is recognised.
func (k BackendKind) IsValid() bool {
	switch k {
	case BackendTable, BackendTextFull, BackendTextFast, BackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k BackendKind) String() string {
	return string(k)
}

// Dataset variant identifiers select which source-file family to load.
const (
	// DatasetStandard is the default dataset generated by the companion
	// data tool.
	DatasetStandard = "standard"

	// DatasetExtended includes every assigned code point, not just the
	// curated blocks.
	DatasetExtended = "extended"
)

// Result limit bounds applied at configuration time.
const (
	// DefaultResultsLimit is used when no limit is configured.
	DefaultResultsLimit = 100

	// MaxResultsLimit is the hard cap. Caller-requested limits above it
	// are clamped, never honoured.
	MaxResultsLimit = 1000
)

// DefaultSearchCommand is the external line-search tool used by the text
// backends. Any line-oriented case-insensitive literal-substring tool
// satisfies the contract.
const DefaultSearchCommand = "rg"

// Config is the explicit configuration object injected into the catalog
// manager. There is no ambient global configuration; multiple catalogs
// with different configurations can coexist.
type Config struct {
	// Backend selects the catalog backend strategy.
	Backend BackendKind

	// Dataset selects the source-file variant.
	Dataset string

	// ResultsLimit caps the number of results returned per search.
	ResultsLimit int

	// SourcePath overrides dataset path resolution when set.
	SourcePath string

	// SearchCommand is the external search tool for text backends.
	SearchCommand string

	// EnableTextBackends activates the delimited-text backend family,
	// which is off in the current product default.
	EnableTextBackends bool

	// EnableExperimental activates backends still under evaluation,
	// currently the sqlite backend.
	EnableExperimental bool
}

// DefaultConfig returns the product default configuration.
func DefaultConfig() Config {
	return Config{
		Backend:       BackendTable,
		Dataset:       DatasetStandard,
		ResultsLimit:  DefaultResultsLimit,
		SearchCommand: DefaultSearchCommand,
	}
}

// Normalised merges the config over defaults and clamps the results limit
// to the hard maximum. Backends receive configs in normalised form only.
func (c Config) Normalised() Config {
	out := c
	if out.Backend == "" {
		out.Backend = BackendTable
	}
	if out.Dataset == "" {
		out.Dataset = DatasetStandard
	}
	if out.SearchCommand == "" {
		out.SearchCommand = DefaultSearchCommand
	}
	if out.ResultsLimit <= 0 {
		out.ResultsLimit = DefaultResultsLimit
	}
	if out.ResultsLimit > MaxResultsLimit {
		out.ResultsLimit = MaxResultsLimit
	}
	return out
}
