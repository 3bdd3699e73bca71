package extractors

import (
	"regexp"
	"strconv"
)

// basic livelihood / near-poverty recipients sit in tier 2
const welfareTier = 2

var incomePatterns = []*regexp.Regexp{
	regexp.MustCompile(`([0-9]{1,2})\s*분위\s*이하`),
	regexp.MustCompile(`[1-9]\s*[~\-]\s*([0-9]{1,2})\s*분위`),
	regexp.MustCompile(`([0-9]{1,2})\s*구간\s*이하`),
	regexp.MustCompile(`([0-9])\s*분위`),
}

// ExtractMaxIncomeLevel finds the highest income tier (1..10) allowed.
func ExtractMaxIncomeLevel(text string) *int {
	if text == "" || ContainsAny(text, noIncomeRestriction...) {
		return nil
	}
	if ContainsAny(text, "기초생활", "차상위") {
		v := welfareTier
		return &v
	}

	for _, re := range incomePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 && n <= 10 {
			return &n
		}
	}
	return nil
}
