package history

import "time"

// FormatTimestamp renders t as "2006-01-02, 3:04:05 PM" in t's location.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02") + ", " + t.Format("3:04:05 PM")
}
