package common

import (
	"fmt"
	"time"
)

// TimeAgo renders the age of an ISO-8601 timestamp as "5m ago", "3h ago" or "2d ago".
// Unparseable timestamps render as "".
func TimeAgo(timestamp string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return ""
	}
	d := now.Sub(t)
	hours := int(d / time.Hour)

	switch {
	case hours < 1:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return fmt.Sprintf("%dd ago", hours/24)
	}
}

// PostedLabel renders a job's posting date as "Today", "Yesterday" or "N days ago".
func PostedLabel(timestamp string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return ""
	}
	days := int(now.Sub(t) / time.Hour / 24)

	switch {
	case days < 1:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
