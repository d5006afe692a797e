package dateinput

import (
	"math"
	"strings"
	"time"
)

var formats = []string{
	"2006-01-02",
	"_2/01/2006",
	"_2-01-2006",
	"Jan _2 2006",
	"January _2 2006",
	"_2 Jan 2006",
	"_2 January 2006",
}

// Parse reads a free-form due date. It only understands a handful of
// absolute formats and "today"/"tomorrow"; anything else is not a date, which
// is fine since due dates are never validated.
func Parse(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	today := StartOfDay(now)
	switch strings.ToLower(s) {
	case "":
		return time.Time{}, false
	case "today", "tod":
		return today, true
	case "tomorrow", "tom":
		return today.AddDate(0, 0, 1), true
	}
	for _, f := range formats {
		t, err := time.ParseInLocation(f, s, now.Location())
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Days returns the number of whole days between the start of now's day and t
func Days(t, now time.Time) int {
	diff := StartOfDay(t).Sub(StartOfDay(now))
	// rounding absorbs 23h and 25h days around DST changes
	return int(math.Round(diff.Hours() / 24))
}
