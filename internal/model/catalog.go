package model

// Catalog is an immutable snapshot of the question catalog handed to the
// analytics engine: an order -> question id index plus an option id ->
// option lookup. The engine never mutates it.
type Catalog struct {
	questionsByOrder map[int]Question
	subQuestions     map[string]map[int]SubQuestion // parent question id -> sub order -> sub-question
	options          map[string]Option
}

// NewCatalog builds the lookup snapshot from the ordered question list.
func NewCatalog(questions []Question) *Catalog {
	c := &Catalog{
		questionsByOrder: make(map[int]Question, len(questions)),
		subQuestions:     make(map[string]map[int]SubQuestion),
		options:          make(map[string]Option),
	}
	for _, q := range questions {
		c.questionsByOrder[q.Order] = q
		for _, opt := range q.Options {
			c.options[opt.ID] = opt
		}
		if len(q.SubQuestions) > 0 {
			subs := make(map[int]SubQuestion, len(q.SubQuestions))
			for _, sq := range q.SubQuestions {
				subs[sq.Order] = sq
				for _, opt := range sq.Options {
					c.options[opt.ID] = opt
				}
			}
			c.subQuestions[q.ID] = subs
		}
	}
	return c
}

// QuestionID returns the question id at the given 1-based catalog order.
func (c *Catalog) QuestionID(order int) (string, bool) {
	q, ok := c.questionsByOrder[order]
	if !ok {
		return "", false
	}
	return q.ID, true
}

// SubQuestionID returns the sub-question id at (parent order, sub order).
func (c *Catalog) SubQuestionID(order, subOrder int) (string, bool) {
	q, ok := c.questionsByOrder[order]
	if !ok {
		return "", false
	}
	subs, ok := c.subQuestions[q.ID]
	if !ok {
		return "", false
	}
	sq, ok := subs[subOrder]
	if !ok {
		return "", false
	}
	return sq.ID, true
}

// ResolveOption maps an option id to its display text. Unknown ids
// resolve to the id itself so a stale reference never aborts an
// aggregation.
func (c *Catalog) ResolveOption(optionID string) string {
	if opt, ok := c.options[optionID]; ok {
		return opt.Text
	}
	return optionID
}

// OptionValue returns the stored option value, when the option is known.
func (c *Catalog) OptionValue(optionID string) (string, bool) {
	opt, ok := c.options[optionID]
	if !ok {
		return "", false
	}
	return opt.Value, true
}
