// Package sqlite implements an experimental catalog backend reading
// entries from a SQLite database. It ships inactive by default; the
// catalog manager refuses to load it unless explicitly enabled.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driven"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// Ensure Backend implements the interface.
var _ driven.Backend = (*Backend)(nil)

// Backend loads the catalog from a SQLite database with an `entries`
// table. Aliases are stored as a JSON array in a text column.
type Backend struct {
	path   string
	active bool
}

// New creates a sqlite backend for the given database file.
func New(path string, active bool) *Backend {
	return &Backend{path: path, active: active}
}

// LoadData reads every entry row. The driver creates missing database
// files on open, so existence is checked up front to preserve the
// data-not-found condition.
func (b *Backend) LoadData(ctx context.Context) ([]domain.Entry, error) {
	if _, err := os.Stat(b.path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDataNotFound, b.path)
		}
		return nil, fmt.Errorf("checking %s: %w", b.path, err)
	}

	db, err := sql.Open("sqlite", b.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT code_point, character, name, category, aliases FROM entries ORDER BY code_point`)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidData, b.path, err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var codePoint, character, name, category string
		var aliasesJSON sql.NullString
		if err := rows.Scan(&codePoint, &character, &name, &category, &aliasesJSON); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", domain.ErrInvalidData, err)
		}

		var aliases []string
		if aliasesJSON.Valid && aliasesJSON.String != "" {
			if err := json.Unmarshal([]byte(aliasesJSON.String), &aliases); err != nil {
				return nil, fmt.Errorf("%w: aliases for %s: %v", domain.ErrInvalidData, codePoint, err)
			}
		}

		entry, err := domain.NewEntry(codePoint, character, name, category, aliases)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading rows: %v", domain.ErrInvalidData, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s holds zero entries", domain.ErrInvalidData, b.path)
	}

	logger.Debug("SQLite backend loaded %d entries from %s", len(entries), b.path)
	return entries, nil
}

// EntrySchema describes the fields this backend produces.
func (b *Backend) EntrySchema() domain.Schema {
	return domain.EntrySchema()
}

// Active reports whether the experimental sqlite backend is enabled.
func (b *Backend) Active() bool {
	return b.active
}
