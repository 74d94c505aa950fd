package analytics

import (
	"sort"

	"dailyq/internal/model"
)

// TopN is the frequency-table ranking depth.
const TopN = 10

// counter tracks counts together with first-seen order so ranking ties
// break deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(entry string, n int) {
	if _, seen := c.counts[entry]; !seen {
		c.order = append(c.order, entry)
	}
	c.counts[entry] += n
}

// table materialises the counter into a FrequencyTable: absolute counts,
// percentage of all counted entries, and the top N with ties in
// discovery order.
func (c *counter) table(totalResponses, topN int) model.FrequencyTable {
	total := 0
	for _, n := range c.counts {
		total += n
	}

	percentages := make(map[string]float64, len(c.counts))
	for entry, n := range c.counts {
		if total > 0 {
			percentages[entry] = 100 * float64(n) / float64(total)
		} else {
			percentages[entry] = 0
		}
	}

	ranked := make([]model.EntryCount, 0, len(c.order))
	for _, entry := range c.order {
		ranked = append(ranked, model.EntryCount{Entry: entry, Count: c.counts[entry]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return model.FrequencyTable{
		AbsoluteCounts: c.counts,
		Percentages:    percentages,
		Top:            ranked,
		TotalResponses: totalResponses,
	}
}

// KeywordFrequency aggregates extracted keywords across responses,
// optionally restricted to one question.
func KeywordFrequency(responses []model.Response, questionID string) model.FrequencyTable {
	c := newCounter()
	for _, r := range responses {
		for _, a := range r.Answers {
			if questionID != "" && a.QuestionID != questionID {
				continue
			}
			for _, kw := range a.Keywords {
				c.add(kw, 1)
			}
		}
	}
	return c.table(len(responses), TopN)
}

// SelectionFrequency aggregates structured selections resolved to their
// display text, optionally restricted to one question and/or one
// sub-question.
func SelectionFrequency(responses []model.Response, catalog *model.Catalog, questionID, subQuestionID string) model.FrequencyTable {
	c := newCounter()
	for _, r := range responses {
		for _, a := range r.Answers {
			if !a.IsStructured() {
				continue
			}
			if questionID != "" && a.QuestionID != questionID {
				continue
			}
			if subQuestionID == "" {
				for _, optID := range a.SelectedOptionIDs {
					c.add(catalog.ResolveOption(optID), 1)
				}
				// Sorted sub-question order keeps discovery order, and
				// therefore ranking tie-breaks, deterministic.
				subIDs := make([]string, 0, len(a.SubAnswers))
				for subID := range a.SubAnswers {
					subIDs = append(subIDs, subID)
				}
				sort.Strings(subIDs)
				for _, subID := range subIDs {
					for _, optID := range a.SubAnswers[subID] {
						c.add(catalog.ResolveOption(optID), 1)
					}
				}
				continue
			}
			for _, optID := range a.SubAnswers[subQuestionID] {
				c.add(catalog.ResolveOption(optID), 1)
			}
		}
	}
	return c.table(len(responses), TopN)
}
