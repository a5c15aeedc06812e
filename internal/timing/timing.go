package timing

import (
	"fmt"
	"time"
)

// FormatDuration renders d as hh:mm:ss.
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Since returns FormatDuration(time.Since(start)).
func Since(start time.Time) string {
	return FormatDuration(time.Since(start))
}
