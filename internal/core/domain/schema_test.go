package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRecord() map[string]any {
	return map[string]any{
		"code_point": "U+2192",
		"character":  "→",
		"name":       "RIGHTWARDS ARROW",
		"category":   "Sm",
		"aliases":    []string{"RIGHT ARROW"},
	}
}

// TestSchema_ValidateAccepts tests a conformant record passes
func TestSchema_ValidateAccepts(t *testing.T) {
	assert.NoError(t, EntrySchema().Validate(validRecord()))
}

// TestSchema_ValidateAcceptsAnySlice tests []any alias lists (JSON decode form)
func TestSchema_ValidateAcceptsAnySlice(t *testing.T) {
	rec := validRecord()
	rec["aliases"] = []any{"RIGHT ARROW", "FORWARD"}
	assert.NoError(t, EntrySchema().Validate(rec))
}

// TestSchema_ValidateRejectsMissingField tests absent fields fail hard
func TestSchema_ValidateRejectsMissingField(t *testing.T) {
	rec := validRecord()
	delete(rec, "name")
	assert.ErrorIs(t, EntrySchema().Validate(rec), ErrSchemaValidation)
}

// TestSchema_ValidateRejectsTypeMismatch tests wrong field types fail hard
func TestSchema_ValidateRejectsTypeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"name as int", "name", 42},
		{"aliases as string", "aliases", "not-a-list"},
		{"aliases with int element", "aliases", []any{"ok", 7}},
		{"category as bool", "category", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			rec[tt.field] = tt.value
			assert.ErrorIs(t, EntrySchema().Validate(rec), ErrSchemaValidation)
		})
	}
}

// TestSchema_ValidateRejectsEmptyString tests required strings are non-empty
func TestSchema_ValidateRejectsEmptyString(t *testing.T) {
	rec := validRecord()
	rec["character"] = ""
	assert.ErrorIs(t, EntrySchema().Validate(rec), ErrSchemaValidation)
}
