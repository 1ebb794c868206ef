package domain

import "fmt"

// FieldKind is the expected semantic type of an entry field.
type FieldKind int

const (
	// FieldString is a non-empty string field.
	FieldString FieldKind = iota

	// FieldStringList is an ordered sequence of strings. May be empty.
	FieldStringList
)

// String returns the string representation.
func (k FieldKind) String() string {
	switch k {
	case FieldString:
		return "string"
	case FieldStringList:
		return "string list"
	default:
		return "unknown"
	}
}

// Schema maps entry field names to their expected kinds. Backends declare
// a schema so the catalog manager can validate their output before it is
// trusted.
type Schema map[string]FieldKind

// EntrySchema returns the canonical schema every conformant backend
// produces.
func EntrySchema() Schema {
	return Schema{
		"code_point": FieldString,
		"character":  FieldString,
		"name":       FieldString,
		"category":   FieldString,
		"aliases":    FieldStringList,
	}
}

// Validate checks an untyped record against the schema. A missing field or
// a type mismatch is a hard validation failure.
func (s Schema) Validate(record map[string]any) error {
	for field, kind := range s {
		value, ok := record[field]
		if !ok {
			return fmt.Errorf("%w: missing field %q", ErrSchemaValidation, field)
		}

		switch kind {
		case FieldString:
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("%w: field %q is %T, want string", ErrSchemaValidation, field, value)
			}
			if str == "" {
				return fmt.Errorf("%w: field %q is empty", ErrSchemaValidation, field)
			}

		case FieldStringList:
			if err := validateStringList(field, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateStringList(field string, value any) error {
	switch list := value.(type) {
	case []string:
		return nil
	case []any:
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("%w: field %q has %T element, want string", ErrSchemaValidation, field, item)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: field %q is %T, want string list", ErrSchemaValidation, field, value)
	}
}
