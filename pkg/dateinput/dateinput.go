package dateinput

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	indicator = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	checkmark = indicator.
			Foreground(lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}).
			Render("✓")

	cross = indicator.
		Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "#FF5047"}).
		Render("✗")

	faded = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"})
)

// Hint renders whether s looks like a date, and if so how far away it is.
// It never blocks input: an unrecognised due date is still saved as typed.
func Hint(s string, now time.Time) string {
	if s == "" {
		return ""
	}
	t, ok := Parse(s, now)
	if !ok {
		return cross
	}
	return checkmark + faded.Render(Format(t, now))
}

// Format describes t relative to now
func Format(t, now time.Time) string {
	switch days := Days(t, now); {
	case days < 0:
		return "overdue"
	case days == 0:
		return "today"
	case days == 1:
		return "1 day"
	case days < 14:
		return strconv.Itoa(days) + " days"
	// max 1 month
	case days <= 31:
		return strconv.Itoa(days/7) + " weeks"
	default:
		postfix := ""
		months := days / 31
		if months > 1 {
			postfix = "s"
		}
		return strconv.Itoa(months) + " month" + postfix
	}
}
