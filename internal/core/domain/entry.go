package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is one Unicode character record from the catalog.
// Entries are immutable value objects: they are constructed once at load
// time and never mutated afterwards.
type Entry struct {
	// CodePoint is the canonical code point identifier, e.g. "U+2192".
	CodePoint string

	// Character is the literal character. Backends decode escaped forms
	// into the literal glyph during construction.
	Character string

	// Name is the official uppercase character name.
	Name string

	// Category is the short Unicode general-category code, e.g. "Sm".
	Category string

	// Aliases are informal names in dataset order. May be empty.
	Aliases []string
}

// NewEntry constructs an Entry, decoding the character from the code point
// when it arrives in an escaped form rather than as a literal glyph.
func NewEntry(codePoint, character, name, category string, aliases []string) (Entry, error) {
	if codePoint == "" {
		return Entry{}, fmt.Errorf("%w: missing code point", ErrInvalidData)
	}
	if name == "" {
		return Entry{}, fmt.Errorf("%w: missing name for %s", ErrInvalidData, codePoint)
	}
	if category == "" {
		return Entry{}, fmt.Errorf("%w: missing category for %s", ErrInvalidData, codePoint)
	}

	if needsDecode(character) {
		decoded, err := DecodeCodePoint(codePoint)
		if err != nil {
			return Entry{}, err
		}
		character = decoded
	}

	return Entry{
		CodePoint: codePoint,
		Character: character,
		Name:      name,
		Category:  category,
		Aliases:   aliases,
	}, nil
}

// needsDecode reports whether the character field is an escaped code point
// form (empty, or a backslash escape carried over from the dataset) rather
// than a literal glyph.
func needsDecode(character string) bool {
	return character == "" || strings.HasPrefix(character, `\`)
}

// DecodeCodePoint converts a code point identifier ("U+XXXX", "0xXXXX",
// or bare hex) into the literal UTF-8 character it denotes.
func DecodeCodePoint(codePoint string) (string, error) {
	hex := strings.ToUpper(codePoint)
	hex = strings.TrimPrefix(hex, "U+")
	hex = strings.TrimPrefix(hex, "0X")

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", fmt.Errorf("%w: bad code point %q", ErrInvalidData, codePoint)
	}
	if value > 0x10FFFF {
		return "", fmt.Errorf("%w: code point %q out of range", ErrInvalidData, codePoint)
	}
	// Surrogates are not characters; converting one would silently
	// produce U+FFFD.
	if value >= 0xD800 && value <= 0xDFFF {
		return "", fmt.Errorf("%w: code point %q is a surrogate", ErrInvalidData, codePoint)
	}

	return string(rune(value)), nil
}

// Printable reports whether the entry may be offered to the search engine
// and UI. Control (Cc) and unassigned (Cn) characters are excluded.
func (e Entry) Printable() bool {
	return e.Category != "Cc" && e.Category != "Cn"
}

// FriendlyCategory returns the human-readable label for the entry's
// category code.
func (e Entry) FriendlyCategory() string {
	return FriendlyCategory(e.Category)
}

// Record returns the entry in the untyped record form used for schema
// validation.
func (e Entry) Record() map[string]any {
	aliases := make([]any, len(e.Aliases))
	for i, a := range e.Aliases {
		aliases[i] = a
	}
	return map[string]any{
		"code_point": e.CodePoint,
		"character":  e.Character,
		"name":       e.Name,
		"category":   e.Category,
		"aliases":    aliases,
	}
}
