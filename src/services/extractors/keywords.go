package extractors

import "strings"

// keywordRule pairs a tag with the phrases that select it. Rule slices are
// evaluated top to bottom; order is part of the behavior.
type keywordRule[T any] struct {
	tag      T
	keywords []string
}

var (
	// shared "no restriction" phrases
	noRestriction = []string{"제한없음", "제한 없음", "무관", "해당없음", "해당 없음"}

	noIncomeRestriction = append(append([]string{}, noRestriction...), "소득무관")

	allYears = []string{"전학년", "전 학년", "제한없음", "제한 없음", "무관"}

	nationwide = []string{"전국", "제한없음", "제한 없음", "무관"}
)

// ContainsAny reports whether text contains one of keywords, ignoring case.
func ContainsAny(text string, keywords ...string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Combine joins the non-empty parts with single spaces.
func Combine(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// matchAll collects the tag of every rule that fires, in rule order.
func matchAll[T any](text string, rules []keywordRule[T]) []T {
	var out []T
	for _, r := range rules {
		if ContainsAny(text, r.keywords...) {
			out = append(out, r.tag)
		}
	}
	return out
}

// matchFirst returns the tag of the first rule that fires.
func matchFirst[T any](text string, rules []keywordRule[T]) (T, bool) {
	for _, r := range rules {
		if ContainsAny(text, r.keywords...) {
			return r.tag, true
		}
	}
	var zero T
	return zero, false
}

func joined(tags []string) *string {
	if len(tags) == 0 {
		return nil
	}
	s := strings.Join(tags, ",")
	return &s
}
