package analytics

import (
	"time"

	"dailyq/internal/model"
)

// WeeklySummary reports on the trailing seven days (today plus the six
// before it): days completed, the top five themes, and the window's
// mood. An empty week is a valid zero-valued summary with a neutral
// trend.
func WeeklySummary(responses []model.Response, now time.Time) (model.WeeklySummary, error) {
	cutoff := dateOnly(now).AddDate(0, 0, -6)

	weekly := make([]model.Response, 0, len(responses))
	for _, r := range responses {
		d, err := parseDate(r.Date)
		if err != nil {
			return model.WeeklySummary{}, err
		}
		if !d.Before(cutoff) {
			weekly = append(weekly, r)
		}
	}

	if len(weekly) == 0 {
		return model.WeeklySummary{TopThemes: []string{}, WeeklyTrend: "neutral"}, nil
	}

	c := newCounter()
	for _, r := range weekly {
		for _, a := range r.Answers {
			for _, kw := range a.Keywords {
				c.add(kw, 1)
			}
		}
	}
	top := c.table(len(weekly), 5)
	themes := make([]string, 0, len(top.Top))
	for _, e := range top.Top {
		themes = append(themes, e.Entry)
	}

	mood := PositivityScore(weekly)
	return model.WeeklySummary{
		DaysCompleted:   len(weekly),
		TopThemes:       themes,
		WeeklyTrend:     mood.Trend,
		PositivityScore: mood.OverallScore,
	}, nil
}
