package extractors

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"20060102",
	"2006년 01월 02일",
	"2006년01월02일",
}

// ParseDate reads a loosely formatted date. An 8-digit run left after
// dropping every non-digit wins over the layouts. Returns nil when nothing
// forms a real calendar date.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if len(digits) == 8 {
		if t, err := time.Parse("20060102", digits); err == nil {
			return &t
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
