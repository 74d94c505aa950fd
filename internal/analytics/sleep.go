package analytics

import (
	"math"
	"strings"

	"dailyq/internal/model"
)

// Sleep catalog positions: question order 2, sub-questions
// 1 = quality, 2 = duration, 3 = bedtime.
const (
	sleepQuestionOrder = 2
	sleepSubQuality    = 1
	sleepSubDuration   = 2
	sleepSubBedtime    = 3
)

// Composite weights: quality dominates, consistency is the smallest term.
const (
	sleepWeightQuality     = 0.5
	sleepWeightDuration    = 0.3
	sleepWeightConsistency = 0.2
)

var sleepQualityScores = map[string]float64{
	"excellent": 100,
	"good":      80,
	"fair":      60,
	"poor":      40,
	"very poor": 20,
}

var sleepDurationScores = map[string]float64{
	"7-8 hours":         100,
	"more than 8 hours": 85,
	"6-7 hours":         70,
	"5-6 hours":         50,
	"less than 5 hours": 30,
}

// Bedtime labels on a numeric hour-of-day scale; past-midnight options
// extend beyond 24 so variance stays meaningful across the boundary.
var bedtimeHours = map[string]float64{
	"before 10 pm":     21.5,
	"10-11 pm":         22.5,
	"11 pm - midnight": 23.5,
	"after midnight":   24.5,
}

// SleepScore computes the weighted sleep composite from the sleep
// question's sub-answers. If the sleep question or any of its three
// sub-questions is missing from the catalog, the whole result is the
// zero value rather than a partial composite.
func SleepScore(responses []model.Response, catalog *model.Catalog) model.SleepScore {
	sleepQID, ok := catalog.QuestionID(sleepQuestionOrder)
	if !ok {
		return model.SleepScore{}
	}
	qualityID, okQ := catalog.SubQuestionID(sleepQuestionOrder, sleepSubQuality)
	durationID, okD := catalog.SubQuestionID(sleepQuestionOrder, sleepSubDuration)
	bedtimeID, okB := catalog.SubQuestionID(sleepQuestionOrder, sleepSubBedtime)
	if !okQ || !okD || !okB {
		return model.SleepScore{}
	}

	var qualitySum, durationSum float64
	var qualityN, durationN int
	var bedtimes []float64
	daysTracked := 0

	for _, r := range responses {
		tracked := false
		for _, a := range r.Answers {
			if !a.IsStructured() || a.QuestionID != sleepQID {
				continue
			}
			for subID, optIDs := range a.SubAnswers {
				for _, optID := range optIDs {
					label := normalizeLabel(catalog.ResolveOption(optID))
					switch subID {
					case qualityID:
						if s, ok := sleepQualityScores[label]; ok {
							qualitySum += s
							qualityN++
							tracked = true
						}
					case durationID:
						if s, ok := sleepDurationScores[label]; ok {
							durationSum += s
							durationN++
							tracked = true
						}
					case bedtimeID:
						if h, ok := bedtimeHours[label]; ok {
							bedtimes = append(bedtimes, h)
							tracked = true
						}
					}
				}
			}
		}
		if tracked {
			daysTracked++
		}
	}

	if daysTracked == 0 {
		return model.SleepScore{}
	}

	var quality, duration float64
	if qualityN > 0 {
		quality = qualitySum / float64(qualityN)
	}
	if durationN > 0 {
		duration = durationSum / float64(durationN)
	}
	consistency := bedtimeConsistency(bedtimes)

	composite := sleepWeightQuality*quality + sleepWeightDuration*duration + sleepWeightConsistency*consistency
	return model.SleepScore{
		Composite:        round1(composite),
		QualityScore:     round1(quality),
		DurationScore:    round1(duration),
		ConsistencyScore: round1(consistency),
		DaysTracked:      daysTracked,
	}
}

// bedtimeConsistency maps bedtime variance to a 0-100 score: a steady
// bedtime scores 100 and every squared hour of variance costs 20 points,
// floored at 0.
func bedtimeConsistency(hours []float64) float64 {
	if len(hours) == 0 {
		return 0
	}
	mean := 0.0
	for _, h := range hours {
		mean += h
	}
	mean /= float64(len(hours))

	variance := 0.0
	for _, h := range hours {
		variance += (h - mean) * (h - mean)
	}
	variance /= float64(len(hours))

	score := 100 - 20*variance
	if score < 0 {
		return 0
	}
	return score
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
