package domain

import "errors"

// Domain errors wrapped by services and adapters. Use errors.Is to test.
var (
	// ErrDataNotFound indicates the configured source file does not exist.
	ErrDataNotFound = errors.New("dataset not found")

	// ErrInvalidData indicates the source exists but failed to parse into
	// the expected shape, or parsed to zero records. Never masked as an
	// empty catalog.
	ErrInvalidData = errors.New("invalid dataset")

	// ErrSchemaValidation indicates a backend's output does not match its
	// declared schema. This is an integration bug, distinct from a
	// missing source.
	ErrSchemaValidation = errors.New("schema validation failed")

	// ErrBackendUnavailable indicates the configured backend is not
	// active for production use.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrInvalidInput indicates malformed configuration or user input.
	ErrInvalidInput = errors.New("invalid input")
)
