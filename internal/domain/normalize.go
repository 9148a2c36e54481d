package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery prepares user input for lookup:
//   - trims leading/trailing whitespace
//   - applies Unicode NFC composition
//   - compresses runs of whitespace into a single space
//
// Case is preserved: the provider treats "China" and "china" differently.
func NormalizeQuery(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// FoldKey returns the case-folded form of s used for prefix matching.
func FoldKey(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
