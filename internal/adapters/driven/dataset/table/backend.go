// Package table implements the eager in-memory catalog backend. It
// parses the JSON table file wholesale into entries at load time, which
// makes it the fastest backend for repeated in-process searches and the
// default for interactive use.
package table

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/core/ports/driven"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// Ensure Backend implements the interface.
var _ driven.Backend = (*Backend)(nil)

// record is one row of the JSON table file.
type record struct {
	CodePoint string   `json:"code_point"`
	Character string   `json:"character"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Aliases   []string `json:"aliases"`
}

// Backend loads the whole catalog from a JSON table file.
type Backend struct {
	path string
}

// New creates a table backend for the given source file.
func New(path string) *Backend {
	return &Backend{path: path}
}

// LoadData reads and deserialises the whole table file. Characters stored
// in escaped form are decoded from their code points during construction.
func (b *Backend) LoadData(ctx context.Context) ([]domain.Entry, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDataNotFound, b.path)
		}
		return nil, fmt.Errorf("reading %s: %w", b.path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidData, b.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s holds zero records", domain.ErrInvalidData, b.path)
	}

	entries := make([]domain.Entry, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := domain.NewEntry(rec.CodePoint, rec.Character, rec.Name, rec.Category, rec.Aliases)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	logger.Debug("Table backend parsed %d records from %s", len(entries), b.path)
	return entries, nil
}

// EntrySchema describes the fields this backend produces.
func (b *Backend) EntrySchema() domain.Schema {
	return domain.EntrySchema()
}

// Active reports that the table backend is the supported production
// default.
func (b *Backend) Active() bool {
	return true
}
