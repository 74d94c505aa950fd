package analytics

import (
	"sort"
	"time"

	"dailyq/internal/model"
)

// DailyProgress computes submission-regularity metrics from the full
// response history. Duplicate dates collapse into a single day bucket.
//
// The current streak is anchored at the most recent submission date: if
// that date is more than one day before now, the streak is broken and
// reported as 0. Walking backward from now unconditionally would report
// a stale streak for a user who stopped reflecting weeks ago.
func DailyProgress(responses []model.Response, now time.Time) (model.StreakProgress, error) {
	if len(responses) == 0 {
		return model.StreakProgress{}, nil
	}

	seen := make(map[string]bool, len(responses))
	dates := make([]time.Time, 0, len(responses))
	for _, r := range responses {
		if seen[r.Date] {
			continue
		}
		seen[r.Date] = true
		d, err := parseDate(r.Date)
		if err != nil {
			return model.StreakProgress{}, err
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	monthPrefix := now.Format("2006-01")
	daysThisMonth := 0
	for _, d := range dates {
		if d.Format("2006-01") == monthPrefix {
			daysThisMonth++
		}
	}

	longest := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	current := 0
	today := dateOnly(now)
	last := dates[len(dates)-1]
	if today.Sub(last) <= 24*time.Hour {
		current = 1
		for i := len(dates) - 2; i >= 0; i-- {
			if dates[i+1].Sub(dates[i]) != 24*time.Hour {
				break
			}
			current++
		}
	}

	return model.StreakProgress{
		DaysThisMonth: daysThisMonth,
		CurrentStreak: current,
		LongestStreak: longest,
		TotalDays:     len(dates),
	}, nil
}
