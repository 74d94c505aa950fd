package analytics

import (
	"strings"

	"dailyq/internal/model"
)

const nutritionQuestionOrder = 3

// mealClass is the substring-based meal classification. The matching rule
// is deliberately isolated here so it can later be swapped for an explicit
// option tag without touching the scoring math.
type mealClass int

const (
	mealUnclassified mealClass = iota
	mealHealthy
	mealEasy
)

func classifyMeal(optionText string) mealClass {
	label := normalizeLabel(optionText)
	switch {
	case strings.Contains(label, "healthy"):
		return mealHealthy
	case strings.Contains(label, "easy"), strings.Contains(label, "snack"):
		return mealEasy
	default:
		return mealUnclassified
	}
}

// NutritionScore is the healthy percentage over all classified meal
// selections of the nutrition question's sub-answers. A catalog without
// the nutrition question yields the zero value.
func NutritionScore(responses []model.Response, catalog *model.Catalog) model.NutritionScore {
	nutritionQID, ok := catalog.QuestionID(nutritionQuestionOrder)
	if !ok {
		return model.NutritionScore{}
	}

	healthy, easy := 0, 0
	for _, r := range responses {
		for _, a := range r.Answers {
			if !a.IsStructured() || a.QuestionID != nutritionQID {
				continue
			}
			for _, optIDs := range a.SubAnswers {
				for _, optID := range optIDs {
					switch classifyMeal(catalog.ResolveOption(optID)) {
					case mealHealthy:
						healthy++
					case mealEasy:
						easy++
					}
				}
			}
		}
	}

	total := healthy + easy
	score := 0.0
	if total > 0 {
		score = round1(100 * float64(healthy) / float64(total))
	}
	return model.NutritionScore{
		Score:        score,
		HealthyCount: healthy,
		EasyCount:    easy,
		TotalMeals:   total,
	}
}
