package model

import "time"

// AnswerKind distinguishes the two questionnaire variants
type AnswerKind string

const (
	AnswerStructured AnswerKind = "structured" // option selections
	AnswerFreeText   AnswerKind = "freetext"   // legacy free-text with extracted keywords
)

// Answer is one answered question within a daily response.
// Exactly one variant is populated, selected by Kind.
type Answer struct {
	QuestionID string     `json:"questionId" bson:"questionId"`
	Kind       AnswerKind `json:"kind" bson:"kind"`

	// Structured variant
	SelectedOptionIDs []string            `json:"selectedOptionIds,omitempty" bson:"selectedOptionIds,omitempty"`
	SubAnswers        map[string][]string `json:"subAnswers,omitempty" bson:"subAnswers,omitempty"` // subQuestionId -> option ids

	// Free-text variant
	Text     string   `json:"text,omitempty" bson:"text,omitempty"`
	Keywords []string `json:"keywords,omitempty" bson:"keywords,omitempty"` // extracted at submission, max 5
}

// IsStructured reports whether the answer carries option selections.
func (a *Answer) IsStructured() bool {
	return a.Kind == AnswerStructured
}

// Response is one submission by one user for one calendar date.
// (UserID, Date) is unique; the submission layer enforces it before
// anything reaches the analytics engine.
type Response struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"userId" bson:"userId"`
	Date        string    `json:"date" bson:"date"` // YYYY-MM-DD
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
	Answers     []Answer  `json:"answers" bson:"answers"`
	KeywordsAgg []string  `json:"keywordsAgg,omitempty" bson:"keywordsAgg,omitempty"` // unique keywords across answers
}

// DateLayout is the calendar-date wire format used throughout the system.
const DateLayout = "2006-01-02"
