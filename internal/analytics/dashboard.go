package analytics

import (
	"time"

	"dailyq/internal/model"
)

// maxCatalogOrder bounds the per-question breakdown; the catalog is a
// fixed 6-8 item list.
const maxCatalogOrder = 8

// DashboardAnalytics produces the full analytics payload: an overall
// frequency table, a per-question breakdown for every catalog entry, and
// summary statistics over the filtered window.
func DashboardAnalytics(responses []model.Response, catalog *model.Catalog, timeFilter string, now time.Time) (model.DashboardAnalytics, error) {
	filtered, err := FilterByWindow(responses, timeFilter, now)
	if err != nil {
		return model.DashboardAnalytics{}, err
	}

	overall := KeywordFrequency(filtered, "")

	perQuestion := make(map[string]model.FrequencyTable)
	for order := 1; order <= maxCatalogOrder; order++ {
		qid, ok := catalog.QuestionID(order)
		if !ok {
			continue
		}
		perQuestion[qid] = KeywordFrequency(filtered, qid)
	}

	summary := model.AnalyticsSummary{
		TotalResponses:       len(filtered),
		MostFrequentKeywords: topEntries(overall, 5),
	}
	for _, r := range filtered {
		if summary.DateRange.Start == "" || r.Date < summary.DateRange.Start {
			summary.DateRange.Start = r.Date
		}
		if r.Date > summary.DateRange.End {
			summary.DateRange.End = r.Date
		}
	}

	return model.DashboardAnalytics{
		Summary:     summary,
		PerQuestion: perQuestion,
		Overall:     overall,
		TimeFilter:  timeFilter,
	}, nil
}

func topEntries(table model.FrequencyTable, n int) []string {
	entries := make([]string, 0, n)
	for _, e := range table.Top {
		if len(entries) == n {
			break
		}
		entries = append(entries, e.Entry)
	}
	return entries
}
