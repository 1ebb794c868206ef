package domain

import "strings"

// fieldSeparator delimits fields in the text dataset format. Fields
// containing the separator are not supported; this is a known format
// limitation.
const fieldSeparator = "|"

// minLineFields is the number of fixed fields a text line must carry:
// character, name, code point, category.
const minLineFields = 4

// FormatLine encodes an entry in the pipe-delimited text dataset format:
// character|name|codePoint|category|alias1|alias2|...
func FormatLine(e Entry) string {
	parts := make([]string, 0, minLineFields+len(e.Aliases))
	parts = append(parts, e.Character, e.Name, e.CodePoint, e.Category)
	parts = append(parts, e.Aliases...)
	return strings.Join(parts, fieldSeparator)
}

// ParseLine decodes one pipe-delimited dataset line into an entry. Lines
// with fewer than four fields are malformed and yield no entry; external
// tool output noise is expected, so this is not an error.
func ParseLine(line string) (Entry, bool) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) < minLineFields {
		return Entry{}, false
	}

	var aliases []string
	for _, alias := range parts[minLineFields:] {
		if alias == "" {
			continue
		}
		aliases = append(aliases, alias)
	}

	return Entry{
		Character: parts[0],
		Name:      parts[1],
		CodePoint: parts[2],
		Category:  parts[3],
		Aliases:   aliases,
	}, true
}
