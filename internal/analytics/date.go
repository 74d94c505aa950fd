package analytics

import (
	"fmt"
	"time"

	"dailyq/internal/model"
)

// parseDate parses a YYYY-MM-DD submission date. The caller pre-validates
// the format on the write path, so a failure here propagates as a
// request-level error rather than being recovered locally.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t, nil
}

// dateOnly truncates a timestamp to midnight UTC so day arithmetic is exact.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday of the ISO week containing t.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return dateOnly(t).AddDate(0, 0, -offset)
}
