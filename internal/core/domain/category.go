package domain

// categoryLabels maps Unicode general-category codes to human-friendly
// labels, as used by the search engine's category tier and the UI.
var categoryLabels = map[string]string{
	"Lu": "Uppercase Letter",
	"Ll": "Lowercase Letter",
	"Lt": "Titlecase Letter",
	"Lm": "Modifier Letter",
	"Lo": "Other Letter",
	"Mn": "Nonspacing Mark",
	"Mc": "Spacing Mark",
	"Me": "Enclosing Mark",
	"Nd": "Decimal Number",
	"Nl": "Letter Number",
	"No": "Other Number",
	"Pc": "Connector Punctuation",
	"Pd": "Dash Punctuation",
	"Ps": "Open Punctuation",
	"Pe": "Close Punctuation",
	"Pi": "Initial Punctuation",
	"Pf": "Final Punctuation",
	"Po": "Other Punctuation",
	"Sm": "Math Symbol",
	"Sc": "Currency Symbol",
	"Sk": "Modifier Symbol",
	"So": "Other Symbol",
	"Zs": "Space Separator",
	"Zl": "Line Separator",
	"Zp": "Paragraph Separator",
	"Cc": "Control",
	"Cf": "Format",
	"Cs": "Surrogate",
	"Co": "Private Use",
	"Cn": "Unassigned",
}

// FriendlyCategory resolves a short general-category code to its
// human-readable label. Unrecognised codes are returned unchanged.
func FriendlyCategory(code string) string {
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	return code
}

// CategoryLabels returns a copy of the full code-to-label mapping.
func CategoryLabels() map[string]string {
	labels := make(map[string]string, len(categoryLabels))
	for code, label := range categoryLabels {
		labels[code] = label
	}
	return labels
}
