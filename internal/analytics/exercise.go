package analytics

import (
	"sort"
	"strings"

	"dailyq/internal/model"
)

const exerciseQuestionOrder = 4

// Duration buckets for exercised days.
const (
	BucketUnder30 = "under_30"
	BucketOver30  = "over_30"
)

// classifyExercise reads the selected option text: a negation phrase
// means no exercise that day, otherwise the duration bucket comes from
// the under/over 30 minute wording.
func classifyExercise(optionText string) (exercised bool, bucket string) {
	label := normalizeLabel(optionText)
	if strings.Contains(label, "no exercise") || strings.Contains(label, "rest day") {
		return false, ""
	}
	if strings.Contains(label, "under 30") || strings.Contains(label, "less than 30") {
		return true, BucketUnder30
	}
	if strings.Contains(label, "over 30") || strings.Contains(label, "more than 30") {
		return true, BucketOver30
	}
	return true, ""
}

// ExerciseSummary derives the per-day exercised/not distribution from
// the exercise question's selections. Missing catalog entry yields the
// zero value. One classification per date; duplicate dates keep the
// first selection seen.
func ExerciseSummary(responses []model.Response, catalog *model.Catalog) model.ExerciseSummary {
	exerciseQID, ok := catalog.QuestionID(exerciseQuestionOrder)
	if !ok {
		return model.ExerciseSummary{}
	}

	byDate := make(map[string]model.ExerciseDay)
	for _, r := range responses {
		if _, done := byDate[r.Date]; done {
			continue
		}
		for _, a := range r.Answers {
			if !a.IsStructured() || a.QuestionID != exerciseQID || len(a.SelectedOptionIDs) == 0 {
				continue
			}
			exercised, bucket := classifyExercise(catalog.ResolveOption(a.SelectedOptionIDs[0]))
			byDate[r.Date] = model.ExerciseDay{Date: r.Date, Exercised: exercised, Bucket: bucket}
			break
		}
	}

	days := make([]model.ExerciseDay, 0, len(byDate))
	exercisedDays := 0
	for _, d := range byDate {
		days = append(days, d)
		if d.Exercised {
			exercisedDays++
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	frequency := 0.0
	if len(days) > 0 {
		frequency = round1(100 * float64(exercisedDays) / float64(len(days)))
	}
	return model.ExerciseSummary{
		Days:          days,
		DaysExercised: exercisedDays,
		DaysTracked:   len(days),
		Frequency:     frequency,
	}
}
