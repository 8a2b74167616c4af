package domain

import (
	"strings"
)

// NormalizeText prepares ingredient names and units for merge-key comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved. This is the single
// normalization boundary: every merge-key lookup goes through it, so "Flour",
// " flour " and "flour" aggregate into one shopping-list item.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeUnit normalizes an optional unit for merge-key comparison.
// A nil or blank unit normalizes to the empty string, so unit-less lines
// form their own merge group per ingredient name.
func NormalizeUnit(unit *string) string {
	if unit == nil {
		return ""
	}
	return NormalizeText(*unit)
}
