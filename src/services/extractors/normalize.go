// Package extractors turns the free-text columns of a scholarship file into
// normalized criteria. Every function here is pure: text in, value or nil out.
package extractors

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Chains carry buffers, so each call builds its own.
func stripInvisible() transform.Transformer {
	return transform.Chain(runes.Remove(runes.Predicate(isInvisible)), norm.NFC)
}

// zero-width space/joiners, word joiner and BOM

func isInvisible(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\u2060', '\uFEFF':
		return true
	}
	return false
}

// tokens that mean "no value" when they are the whole cell
var emptyTokens = map[string]struct{}{
	"-":    {},
	"없음":   {},
	"해당없음": {},
}

// CleanHeader canonicalizes a header cell. It never reports absence.
func CleanHeader(raw string) string {
	out, _, err := transform.String(stripInvisible(), raw)
	if err != nil {
		out = raw
	}
	return collapseSpaces(out)
}

// Clean canonicalizes a data cell. ok is false for empty cells and
// the "no value" tokens.
func Clean(raw string) (string, bool) {
	s := CleanHeader(raw)
	if s == "" {
		return "", false
	}
	if _, empty := emptyTokens[s]; empty {
		return "", false
	}
	return s, true
}

// CleanPtr is Clean for optional record fields.
func CleanPtr(raw string) *string {
	s, ok := Clean(raw)
	if !ok {
		return nil
	}
	return &s
}

func collapseSpaces(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// Deref returns "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Truncate cuts text to max characters and appends "...".
func Truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}
