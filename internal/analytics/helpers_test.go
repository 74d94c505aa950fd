package analytics

import (
	"time"

	"dailyq/internal/model"
)

// testCatalog mirrors the seeded daily catalog closely enough for the
// scorers: mood at order 1, sleep with three sub-questions at order 2,
// nutrition at 3, exercise at 4, hydration at 5.
func testCatalog() *model.Catalog {
	return model.NewCatalog([]model.Question{
		{
			ID:    "q_mood",
			Order: 1,
			Type:  model.QuestionSingleSelect,
			Options: []model.Option{
				{ID: "opt_excited", Text: "Excited"},
				{ID: "opt_happy", Text: "Happy"},
				{ID: "opt_content", Text: "Content"},
				{ID: "opt_neutral", Text: "Neutral"},
				{ID: "opt_tired", Text: "Tired"},
				{ID: "opt_sad", Text: "Sad"},
				{ID: "opt_depressed", Text: "Depressed"},
			},
		},
		{
			ID:    "q_sleep",
			Order: 2,
			Type:  model.QuestionSubQuestions,
			SubQuestions: []model.SubQuestion{
				{
					ID:    "q_sleep_quality",
					Order: 1,
					Options: []model.Option{
						{ID: "opt_sq_excellent", Text: "Excellent"},
						{ID: "opt_sq_good", Text: "Good"},
						{ID: "opt_sq_fair", Text: "Fair"},
						{ID: "opt_sq_poor", Text: "Poor"},
					},
				},
				{
					ID:    "q_sleep_duration",
					Order: 2,
					Options: []model.Option{
						{ID: "opt_sd_78", Text: "7-8 hours"},
						{ID: "opt_sd_67", Text: "6-7 hours"},
						{ID: "opt_sd_lt5", Text: "Less than 5 hours"},
					},
				},
				{
					ID:    "q_sleep_bedtime",
					Order: 3,
					Options: []model.Option{
						{ID: "opt_sb_before10", Text: "Before 10 PM"},
						{ID: "opt_sb_1011", Text: "10-11 PM"},
						{ID: "opt_sb_aftermid", Text: "After midnight"},
					},
				},
			},
		},
		{
			ID:    "q_nutrition",
			Order: 3,
			Type:  model.QuestionSubQuestions,
			SubQuestions: []model.SubQuestion{
				{
					ID:    "q_nutrition_lunch",
					Order: 1,
					Options: []model.Option{
						{ID: "opt_nl_healthy", Text: "Healthy home-cooked"},
						{ID: "opt_nl_easy", Text: "Easy / takeout"},
						{ID: "opt_nl_snack", Text: "Snacks only"},
					},
				},
			},
		},
		{
			ID:    "q_exercise",
			Order: 4,
			Type:  model.QuestionSingleSelect,
			Options: []model.Option{
				{ID: "opt_ex_none", Text: "No exercise today"},
				{ID: "opt_ex_under", Text: "Yes, under 30 minutes"},
				{ID: "opt_ex_over", Text: "Yes, over 30 minutes"},
			},
		},
		{
			ID:    "q_hydration",
			Order: 5,
			Type:  model.QuestionSingleSelect,
			Options: []model.Option{
				{ID: "opt_hy_adequate", Text: "Adequate (6+ glasses)"},
				{ID: "opt_hy_low", Text: "Low (fewer than 6 glasses)"},
			},
		},
	})
}

func freeTextResponse(date, text string, keywords ...string) model.Response {
	return model.Response{
		UserID: "u1",
		Date:   date,
		Answers: []model.Answer{
			{QuestionID: "q_journal", Kind: model.AnswerFreeText, Text: text, Keywords: keywords},
		},
	}
}

func moodResponse(date, optionID string) model.Response {
	return model.Response{
		UserID: "u1",
		Date:   date,
		Answers: []model.Answer{
			{QuestionID: "q_mood", Kind: model.AnswerStructured, SelectedOptionIDs: []string{optionID}},
		},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
