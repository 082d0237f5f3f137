package service

import (
	"fmt"
	"time"
)

// parseISO8601Date parses a date string in ISO 8601 format (RFC3339 is ISO 8601 compliant)
// Supports:
//   - RFC3339 (e.g., "2006-01-02T15:04:05Z07:00")
//   - RFC3339Nano (e.g., "2006-01-02T15:04:05.999999999Z07:00")
//   - YYYY-MM-DD (e.g., "2006-01-02")
//   - YYYY-MM-DDTHH:MM:SS (e.g., "2006-01-02T15:04:05")
func parseISO8601Date(dateStr string) (time.Time, error) {
	layouts := []string{time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04:05"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t.UTC(), nil
		}
	}

	// date only, start of day in UTC
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("unable to parse ISO 8601 date: %s (expected RFC3339 or YYYY-MM-DD format)", dateStr)
}
