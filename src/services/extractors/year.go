package extractors

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	yearRange  = regexp.MustCompile(`([1-6])\s*[~\-]\s*([1-6])\s*학년`)
	yearSingle = regexp.MustCompile(`([1-6])\s*학년`)
)

// ExtractGrades returns the allowed year levels, numerically sorted.
// Only the first "A~B학년" range is expanded.
func ExtractGrades(gradeSemester, eligibilityRestriction string) *string {
	combined := Combine(gradeSemester, eligibilityRestriction)
	if combined == "" || ContainsAny(combined, allYears...) {
		return nil
	}

	years := map[int]struct{}{}
	if m := yearRange.FindStringSubmatch(combined); m != nil {
		from, _ := strconv.Atoi(m[1])
		to, _ := strconv.Atoi(m[2])
		for y := from; y <= to; y++ {
			years[y] = struct{}{}
		}
	}
	for _, m := range yearSingle.FindAllStringSubmatch(combined, -1) {
		y, _ := strconv.Atoi(m[1])
		years[y] = struct{}{}
	}
	if ContainsAny(combined, "신입생", "신입", "입학예정") {
		years[1] = struct{}{}
	}
	if len(years) == 0 {
		return nil
	}

	sorted := make([]int, 0, len(years))
	for y := range years {
		sorted = append(sorted, y)
	}
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, y := range sorted {
		parts[i] = strconv.Itoa(y)
	}
	s := strings.Join(parts, ",")
	return &s
}

// ParseGrades reads a stored comma set back into numbers, skipping junk.
func ParseGrades(set string) []int {
	var out []int
	for _, p := range strings.Split(set, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			out = append(out, n)
		}
	}
	return out
}
