// Package messages defines Bubbletea message types for the picker TUI.
// Messages represent events and commands that flow through the Elm
// architecture.
package messages

import (
	"github.com/google/uuid"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

// SearchCompleted carries search results back to the model. SearchID
// identifies the invocation that produced them; results tagged with a
// superseded ID are discarded so a slow old search can never overwrite a
// fresh query's results.
type SearchCompleted struct {
	SearchID uuid.UUID
	Results  []domain.SearchResult
	Err      error
}

// EntryChosen is sent when the user selects a character for insertion.
type EntryChosen struct {
	Entry domain.Entry
}

// DatasetReloaded signals the catalog was re-read after the dataset file
// changed on disk.
type DatasetReloaded struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
