package model

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionSingleSelect QuestionType = "single_select"
	QuestionMultiSelect  QuestionType = "multi_select"
	QuestionSubQuestions QuestionType = "sub_questions" // answered through conditional sub-questions
)

// Option is one selectable choice of a question or sub-question
type Option struct {
	ID    string `json:"id" bson:"_id"`
	Text  string `json:"text" bson:"text"`
	Value string `json:"value,omitempty" bson:"value,omitempty"`
}

// SubQuestion is conditionally active, shown only when its trigger
// option of the parent question was selected.
type SubQuestion struct {
	ID            string   `json:"id" bson:"_id"`
	Order         int      `json:"order" bson:"order"` // 1-based within the parent
	Text          string   `json:"text" bson:"text"`
	TriggerOption string   `json:"triggerOption,omitempty" bson:"triggerOption,omitempty"`
	Options       []Option `json:"options" bson:"options"`
}

// Question is one entry of the fixed daily catalog, addressable by
// its 1-based order number.
type Question struct {
	ID           string        `json:"id" bson:"_id"`
	Order        int           `json:"order" bson:"order"`
	Text         string        `json:"text" bson:"text"`
	Type         QuestionType  `json:"type" bson:"type"`
	Options      []Option      `json:"options,omitempty" bson:"options,omitempty"`
	SubQuestions []SubQuestion `json:"subQuestions,omitempty" bson:"subQuestions,omitempty"`
}
