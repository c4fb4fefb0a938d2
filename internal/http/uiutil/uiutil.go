// Package uiutil holds display formatting shared by templates and handlers.
package uiutil

import (
	"strconv"
	"strings"
	"time"
)

const FriendlyDateLayout = "Jan 2, 2006"

// FriendlyRelativeTime describes how long ago t occurred. Future times read
// as "just now".
func FriendlyRelativeTime(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute") + " ago"
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour") + " ago"
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day") + " ago"
	default:
		return FormatFriendlyDate(t)
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

// FormatFriendlyDate returns a local calendar date, or "" for the zero time.
func FormatFriendlyDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(FriendlyDateLayout)
}

// FormatSalary renders an optional salary band in dollars.
func FormatSalary(minSalary, maxSalary *int) string {
	switch {
	case minSalary != nil && maxSalary != nil:
		return "$" + groupThousands(*minSalary) + " - $" + groupThousands(*maxSalary)
	case minSalary != nil:
		return "From $" + groupThousands(*minSalary)
	case maxSalary != nil:
		return "Up to $" + groupThousands(*maxSalary)
	default:
		return "Salary not disclosed"
	}
}

// groupThousands formats n with comma separators.
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	prefix := len(s) % 3
	if prefix == 0 {
		prefix = 3
	}
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(s[:prefix])
	for i := prefix; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatNumber formats n with comma separators.
func FormatNumber(n int) string { return groupThousands(n) }
