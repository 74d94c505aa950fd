package analytics

import (
	"fmt"
	"time"

	"dailyq/internal/model"
)

// Time filters accepted by the dashboard endpoints.
const (
	FilterRecent    = "recent" // trailing 14 days
	FilterLastWeek  = "last_week"
	FilterLastMonth = "last_month"
	FilterAll       = "all"
)

// ValidTimeFilter reports whether the caller-supplied filter is known.
func ValidTimeFilter(filter string) bool {
	switch filter {
	case FilterRecent, FilterLastWeek, FilterLastMonth, FilterAll:
		return true
	}
	return false
}

// FilterByWindow restricts responses to the filter's trailing window:
// today plus the days-1 preceding dates, so last_week spans exactly 7
// calendar days.
func FilterByWindow(responses []model.Response, filter string, now time.Time) ([]model.Response, error) {
	var days int
	switch filter {
	case FilterLastWeek:
		days = 7
	case FilterLastMonth:
		days = 30
	case FilterRecent:
		days = 14
	case FilterAll, "":
		return responses, nil
	default:
		return nil, fmt.Errorf("unknown time filter %q", filter)
	}

	cutoff := dateOnly(now).AddDate(0, 0, -(days - 1))
	filtered := make([]model.Response, 0, len(responses))
	for _, r := range responses {
		d, err := parseDate(r.Date)
		if err != nil {
			return nil, err
		}
		if !d.Before(cutoff) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
