package analytics

import (
	"fmt"
	"strings"
	"time"

	"dailyq/internal/model"
)

// Ratio thresholds for flagging a theme as rising or fading when
// comparing the recent window against last week.
const (
	insightRiseFactor = 1.5
	insightFadeFactor = 0.5
)

// KeywordInsights generates natural-language observations about one
// keyword's trajectory from its trend series.
func KeywordInsights(responses []model.Response, catalog *model.Catalog, keyword, questionID string) ([]string, model.TrendSeries, error) {
	trends, err := TrendLines(responses, catalog, keyword, questionID)
	if err != nil {
		return nil, model.TrendSeries{}, err
	}

	insights := []string{}
	if len(trends.Daily) > 0 {
		recent := trends.Daily[len(trends.Daily)-1].Count
		older := 0
		if len(trends.Daily) > 1 {
			older = trends.Daily[0].Count
		}
		switch {
		case recent > older:
			insights = append(insights, fmt.Sprintf("'%s' mentions have increased recently", keyword))
		case recent < older:
			insights = append(insights, fmt.Sprintf("'%s' mentions have decreased recently", keyword))
		default:
			insights = append(insights, fmt.Sprintf("'%s' mentions have remained stable", keyword))
		}
	}

	if len(trends.Weekly) > 1 {
		recentWeek := trends.Weekly[len(trends.Weekly)-1].AvgPerDay
		previousWeek := trends.Weekly[len(trends.Weekly)-2].AvgPerDay
		if recentWeek > previousWeek {
			insights = append(insights, fmt.Sprintf("Weekly average for '%s' is trending upward", keyword))
		} else if recentWeek < previousWeek {
			insights = append(insights, fmt.Sprintf("Weekly average for '%s' is trending downward", keyword))
		}
	}

	return insights, trends, nil
}

// GeneralInsights compares the recent window (14 days) against last week
// (7 days): themes present only recently are flagged as emerging, and
// themes whose recent count moved past the rise/fade thresholds get a
// corresponding observation. Iteration follows the ranked top order so
// output is deterministic.
func GeneralInsights(responses []model.Response, now time.Time) ([]string, error) {
	recent, err := FilterByWindow(responses, FilterRecent, now)
	if err != nil {
		return nil, err
	}
	lastWeek, err := FilterByWindow(responses, FilterLastWeek, now)
	if err != nil {
		return nil, err
	}

	recentFreq := KeywordFrequency(recent, "")
	weekFreq := KeywordFrequency(lastWeek, "")

	weekTop := make(map[string]bool, len(weekFreq.Top))
	for _, e := range weekFreq.Top {
		weekTop[e.Entry] = true
	}

	insights := []string{}

	var emerging []string
	for _, e := range recentFreq.Top {
		if !weekTop[e.Entry] {
			emerging = append(emerging, e.Entry)
		}
	}
	if len(emerging) > 0 {
		if len(emerging) > 3 {
			emerging = emerging[:3]
		}
		insights = append(insights, "New themes emerging: "+strings.Join(emerging, ", "))
	}

	for _, e := range recentFreq.Top {
		if !weekTop[e.Entry] {
			continue
		}
		weekCount := weekFreq.AbsoluteCounts[e.Entry]
		switch {
		case float64(e.Count) > float64(weekCount)*insightRiseFactor:
			insights = append(insights, fmt.Sprintf("You've been thinking more about '%s' recently", e.Entry))
		case float64(e.Count) < float64(weekCount)*insightFadeFactor:
			insights = append(insights, fmt.Sprintf("You've been thinking less about '%s' recently", e.Entry))
		}
	}

	return insights, nil
}
