package extractors

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	gpaRatio      = regexp.MustCompile(`([0-9](?:\.[0-9]{1,2})?)\s*(?:점)?\s*/\s*4\.5`)
	gpaKeyword    = regexp.MustCompile(`(?:평점|성적|학점|GPA)\s*([0-9](?:\.[0-9]{1,2})?)\s*(?:점)?\s*이상`)
	gpaBare       = regexp.MustCompile(`([0-9]\.[0-9]{1,2})\s*(?:점)?\s*이상`)
	gpaLetter     = regexp.MustCompile(`([ABCD][+\-]?)\s*(?:학점)?\s*이상`)
	gpaPercentile = regexp.MustCompile(`([0-9]{2,3})\s*(?:점|%)\s*이상`)
)

var letterGrades = map[string]float64{
	"A+": 4.5, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0,
}

// LetterToGpa maps a letter grade onto the 4.5 scale.
func LetterToGpa(symbol string) (float64, bool) {
	v, ok := letterGrades[symbol]
	return v, ok
}

// ExtractMinGpa finds the minimum grade point on the 4.5 scale.
// Rules, first hit wins: "X/4.5", "<평점|성적|학점|GPA> X 이상", bare "X.Y 이상"
// (X.Y <= 5), letter grade "B+ 이상", percentile "85점 이상" (60..100).
func ExtractMinGpa(text string) *float64 {
	if text == "" || ContainsAny(text, noRestriction...) {
		return nil
	}

	if m := gpaRatio.FindStringSubmatch(text); m != nil {
		return parseGpa(m[1])
	}
	if m := gpaKeyword.FindStringSubmatch(text); m != nil {
		return parseGpa(m[1])
	}
	if m := gpaBare.FindStringSubmatch(text); m != nil {
		if v := parseGpa(m[1]); v != nil && *v <= 5.0 {
			return v
		}
	}
	if m := gpaLetter.FindStringSubmatch(strings.ToUpper(text)); m != nil {
		v, ok := LetterToGpa(m[1])
		if !ok {
			return nil
		}
		return &v
	}
	if m := gpaPercentile.FindStringSubmatch(text); m != nil {
		p, err := strconv.Atoi(m[1])
		if err == nil && p >= 60 && p <= 100 {
			v := PercentileToGpa(p)
			return &v
		}
	}
	return nil
}

// PercentileToGpa rescales 60..100 onto 2.0..4.5, rounded half-up to two decimals.
func PercentileToGpa(p int) float64 {
	d := p - 60
	hundredths := 200 + (d*250+20)/40
	return float64(hundredths) / 100
}

func parseGpa(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
