package common

import (
	"fmt"
	"os"
	"time"
)

// ResponseTime formats the elapsed time since init as a millisecond string
// for display on the dashboard.
func ResponseTime(init time.Time) string {
	return fmt.Sprintf("%.2fms", float64(time.Since(init).Microseconds())/1000)
}

// Hostname returns the host name, or "unknown" when the platform refuses to
// say. Inside a container this is the container ID.
func Hostname() string {
	h, err := os.Hostname()
	if err != nil || h == "" {
		return "unknown"
	}
	return h
}
