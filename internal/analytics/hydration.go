package analytics

import (
	"strings"

	"dailyq/internal/model"
)

const hydrationQuestionOrder = 5

// Hydration day classifications.
const (
	HydrationAdequate = "adequate"
	HydrationLow      = "low"
)

// classifyHydration matches the selected option text; options that say
// neither are left out of the consistency ratio.
func classifyHydration(optionText string) (string, bool) {
	label := normalizeLabel(optionText)
	switch {
	case strings.Contains(label, "adequate"):
		return HydrationAdequate, true
	case strings.Contains(label, "low"):
		return HydrationLow, true
	default:
		return "", false
	}
}

// HydrationSummary classifies each day as adequate or low and reports
// the adequate percentage over classified days. Missing catalog entry
// yields the zero value.
func HydrationSummary(responses []model.Response, catalog *model.Catalog) model.HydrationSummary {
	hydrationQID, ok := catalog.QuestionID(hydrationQuestionOrder)
	if !ok {
		return model.HydrationSummary{}
	}

	byDate := make(map[string]string)
	for _, r := range responses {
		if _, done := byDate[r.Date]; done {
			continue
		}
		for _, a := range r.Answers {
			if !a.IsStructured() || a.QuestionID != hydrationQID || len(a.SelectedOptionIDs) == 0 {
				continue
			}
			if class, ok := classifyHydration(catalog.ResolveOption(a.SelectedOptionIDs[0])); ok {
				byDate[r.Date] = class
			}
			break
		}
	}

	adequate, low := 0, 0
	for _, class := range byDate {
		if class == HydrationAdequate {
			adequate++
		} else {
			low++
		}
	}

	consistency := 0.0
	if adequate+low > 0 {
		consistency = round1(100 * float64(adequate) / float64(adequate+low))
	}
	return model.HydrationSummary{
		Consistency:  consistency,
		AdequateDays: adequate,
		LowDays:      low,
		ByDate:       byDate,
	}
}
