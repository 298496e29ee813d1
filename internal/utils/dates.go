package utils

import (
	"fmt"
	"time"
)

// FormatRelativeDate renders a timestamp the way the staleness banner wants
// it: "today", "yesterday", "N days ago", then months.
func FormatRelativeDate(t time.Time, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days < 60:
		return "a month ago"
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}
