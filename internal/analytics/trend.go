package analytics

import (
	"sort"
	"strings"

	"dailyq/internal/model"
)

// TrendLines builds the daily series for one keyword (or resolved option
// text) and rolls it up into Monday-anchored weeks. Days where the
// keyword never appears are left out of the daily series, and a week's
// average divides by the distinct days present in that week.
func TrendLines(responses []model.Response, catalog *model.Catalog, keyword, questionID string) (model.TrendSeries, error) {
	target := strings.ToLower(keyword)

	countsByDate := make(map[string]int)
	for _, r := range responses {
		n := 0
		for _, a := range r.Answers {
			if questionID != "" && a.QuestionID != questionID {
				continue
			}
			for _, kw := range a.Keywords {
				if strings.ToLower(kw) == target {
					n++
				}
			}
			if a.IsStructured() && catalog != nil {
				for _, optID := range a.SelectedOptionIDs {
					if strings.ToLower(catalog.ResolveOption(optID)) == target {
						n++
					}
				}
				for _, optIDs := range a.SubAnswers {
					for _, optID := range optIDs {
						if strings.ToLower(catalog.ResolveOption(optID)) == target {
							n++
						}
					}
				}
			}
		}
		if n > 0 {
			countsByDate[r.Date] += n
		}
	}

	daily := make([]model.TrendPoint, 0, len(countsByDate))
	for date, n := range countsByDate {
		daily = append(daily, model.TrendPoint{Date: date, Count: n})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	type weekAgg struct {
		count int
		days  int
	}
	weeks := make(map[string]*weekAgg)
	for _, p := range daily {
		d, err := parseDate(p.Date)
		if err != nil {
			return model.TrendSeries{}, err
		}
		key := weekStart(d).Format(model.DateLayout)
		w := weeks[key]
		if w == nil {
			w = &weekAgg{}
			weeks[key] = w
		}
		w.count += p.Count
		w.days++
	}

	weekly := make([]model.WeekPoint, 0, len(weeks))
	for start, w := range weeks {
		weekly = append(weekly, model.WeekPoint{
			WeekStart: start,
			Count:     w.count,
			AvgPerDay: float64(w.count) / float64(w.days),
		})
	}
	sort.Slice(weekly, func(i, j int) bool { return weekly[i].WeekStart < weekly[j].WeekStart })

	return model.TrendSeries{Daily: daily, Weekly: weekly}, nil
}
