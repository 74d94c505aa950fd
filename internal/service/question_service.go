package service

import (
	"context"
	"log"

	"dailyq/internal/model"
	"dailyq/internal/repository"
)

// QuestionService serves the fixed daily catalog and builds the
// immutable lookup snapshot the analytics engine consumes.
type QuestionService struct {
	questions repository.QuestionRepo
}

// NewQuestionService creates a question service.
func NewQuestionService(questions repository.QuestionRepo) *QuestionService {
	return &QuestionService{questions: questions}
}

// List returns the catalog in order, seeding the defaults first if the
// collection is empty.
func (s *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	if err := s.SeedIfEmpty(ctx); err != nil {
		return nil, err
	}
	return s.questions.List(ctx)
}

// GetByID returns one catalog question, or nil when absent.
func (s *QuestionService) GetByID(ctx context.Context, id string) (*model.Question, error) {
	return s.questions.GetByID(ctx, id)
}

// Catalog builds the engine's lookup snapshot from the stored questions.
func (s *QuestionService) Catalog(ctx context.Context) (*model.Catalog, error) {
	questions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewCatalog(questions), nil
}

// SeedIfEmpty inserts the default catalog on first run.
func (s *QuestionService) SeedIfEmpty(ctx context.Context) error {
	count, err := s.questions.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	log.Println("seeding default question catalog")
	return s.questions.InsertMany(ctx, DefaultQuestions())
}

func opts(qid string, labels ...string) []model.Option {
	options := make([]model.Option, len(labels))
	for i, label := range labels {
		options[i] = model.Option{ID: qid + "_opt_" + slug(label), Text: label, Value: slug(label)}
	}
	return options
}

func slug(label string) string {
	out := make([]rune, 0, len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-':
			out = append(out, '_')
		}
	}
	return string(out)
}

// DefaultQuestions is the seeded daily questionnaire. Orders are
// load-bearing: the analytics engine addresses questions by them.
func DefaultQuestions() []model.Question {
	return []model.Question{
		{
			ID: "q_mood", Order: 1, Type: model.QuestionSingleSelect,
			Text:    "How are you feeling today?",
			Options: opts("q_mood", "Excited", "Happy", "Content", "Neutral", "Tired", "Sad", "Depressed"),
		},
		{
			ID: "q_sleep", Order: 2, Type: model.QuestionSubQuestions,
			Text: "How did you sleep?",
			SubQuestions: []model.SubQuestion{
				{
					ID: "q_sleep_quality", Order: 1, Text: "Sleep quality",
					Options: opts("q_sleep_quality", "Excellent", "Good", "Fair", "Poor", "Very Poor"),
				},
				{
					ID: "q_sleep_duration", Order: 2, Text: "Hours slept",
					Options: opts("q_sleep_duration", "More than 8 hours", "7-8 hours", "6-7 hours", "5-6 hours", "Less than 5 hours"),
				},
				{
					ID: "q_sleep_bedtime", Order: 3, Text: "When did you go to bed?",
					Options: opts("q_sleep_bedtime", "Before 10 PM", "10-11 PM", "11 PM - midnight", "After midnight"),
				},
			},
		},
		{
			ID: "q_nutrition", Order: 3, Type: model.QuestionSubQuestions,
			Text: "How did you eat today?",
			SubQuestions: []model.SubQuestion{
				{
					ID: "q_nutrition_breakfast", Order: 1, Text: "Breakfast",
					Options: opts("q_nutrition_breakfast", "Healthy home-cooked", "Easy / grab-and-go", "Skipped"),
				},
				{
					ID: "q_nutrition_lunch", Order: 2, Text: "Lunch",
					Options: opts("q_nutrition_lunch", "Healthy home-cooked", "Easy / takeout", "Snacks only"),
				},
				{
					ID: "q_nutrition_dinner", Order: 3, Text: "Dinner",
					Options: opts("q_nutrition_dinner", "Healthy home-cooked", "Easy / takeout", "Snacks only"),
				},
			},
		},
		{
			ID: "q_exercise", Order: 4, Type: model.QuestionSingleSelect,
			Text:    "Did you move your body today?",
			Options: opts("q_exercise", "No exercise today", "Light activity (under 30 minutes)", "Workout (over 30 minutes)"),
		},
		{
			ID: "q_hydration", Order: 5, Type: model.QuestionSingleSelect,
			Text:    "How much water did you drink?",
			Options: opts("q_hydration", "Adequate (8+ glasses)", "Moderate (4-7 glasses)", "Low (under 4 glasses)"),
		},
		{
			ID: "q_social", Order: 6, Type: model.QuestionMultiSelect,
			Text:    "Who did you spend time with today?",
			Options: opts("q_social", "Family", "Friends", "Colleagues", "Partner", "Nobody"),
		},
	}
}
