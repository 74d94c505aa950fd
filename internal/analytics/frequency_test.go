package analytics

import (
	"math"
	"testing"

	"dailyq/internal/model"
)

func TestKeywordFrequency_Ranking(t *testing.T) {
	responses := []model.Response{
		freeTextResponse("2026-03-13", "", "work", "work", "sleep"),
		freeTextResponse("2026-03-14", "", "work", "sleep", "family"),
		freeTextResponse("2026-03-15", "", "work", "work", "sleep"),
	}
	table := KeywordFrequency(responses, "")

	if table.AbsoluteCounts["work"] != 5 || table.AbsoluteCounts["sleep"] != 3 || table.AbsoluteCounts["family"] != 1 {
		t.Fatalf("counts = %v", table.AbsoluteCounts)
	}
	if table.TotalResponses != 3 {
		t.Errorf("totalResponses = %d, want 3", table.TotalResponses)
	}

	want := []model.EntryCount{{Entry: "work", Count: 5}, {Entry: "sleep", Count: 3}, {Entry: "family", Count: 1}}
	if len(table.Top) != len(want) {
		t.Fatalf("top = %v, want %v", table.Top, want)
	}
	for i := range want {
		if table.Top[i] != want[i] {
			t.Errorf("top[%d] = %v, want %v", i, table.Top[i], want[i])
		}
	}

	if got := table.Percentages["work"]; math.Abs(got-100*5.0/9.0) > 1e-9 {
		t.Errorf("percentage[work] = %v, want %v", got, 100*5.0/9.0)
	}
}

func TestKeywordFrequency_TiesKeepFirstSeenOrder(t *testing.T) {
	responses := []model.Response{
		freeTextResponse("2026-03-15", "", "beta", "alpha", "beta", "alpha"),
	}
	table := KeywordFrequency(responses, "")
	if table.Top[0].Entry != "beta" || table.Top[1].Entry != "alpha" {
		t.Errorf("tie order = %v, want first-seen [beta alpha]", table.Top)
	}
}

func TestKeywordFrequency_TopCappedAtTen(t *testing.T) {
	keywords := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	responses := []model.Response{freeTextResponse("2026-03-15", "", keywords...)}
	table := KeywordFrequency(responses, "")
	if len(table.Top) != TopN {
		t.Errorf("top length = %d, want %d", len(table.Top), TopN)
	}
	if len(table.AbsoluteCounts) != len(keywords) {
		t.Errorf("absolute counts must keep every entry, got %d", len(table.AbsoluteCounts))
	}
}

func TestKeywordFrequency_QuestionScoped(t *testing.T) {
	responses := []model.Response{
		{
			UserID: "u1",
			Date:   "2026-03-15",
			Answers: []model.Answer{
				{QuestionID: "q_journal", Kind: model.AnswerFreeText, Keywords: []string{"work"}},
				{QuestionID: "q_other", Kind: model.AnswerFreeText, Keywords: []string{"family"}},
			},
		},
	}
	table := KeywordFrequency(responses, "q_journal")
	if table.AbsoluteCounts["family"] != 0 || table.AbsoluteCounts["work"] != 1 {
		t.Errorf("counts = %v, want only q_journal keywords", table.AbsoluteCounts)
	}
}

func TestKeywordFrequency_Empty(t *testing.T) {
	table := KeywordFrequency(nil, "")
	if len(table.Top) != 0 || len(table.AbsoluteCounts) != 0 || table.TotalResponses != 0 {
		t.Errorf("expected empty table, got %+v", table)
	}
}

func TestSelectionFrequency(t *testing.T) {
	responses := []model.Response{
		moodResponse("2026-03-14", "opt_happy"),
		moodResponse("2026-03-15", "opt_happy"),
		sleepResponse("2026-03-15", "opt_sq_good", "", ""),
	}
	table := SelectionFrequency(responses, testCatalog(), "", "")

	if table.AbsoluteCounts["Happy"] != 2 {
		t.Errorf("counts = %v, want Happy:2", table.AbsoluteCounts)
	}
	if table.AbsoluteCounts["Good"] != 1 {
		t.Errorf("counts = %v, want Good:1 from sub-answers", table.AbsoluteCounts)
	}
	if table.Top[0].Entry != "Happy" {
		t.Errorf("top = %v, want Happy first", table.Top)
	}
}

func TestSelectionFrequency_SubQuestionScoped(t *testing.T) {
	responses := []model.Response{
		sleepResponse("2026-03-15", "opt_sq_good", "opt_sd_78", ""),
	}
	table := SelectionFrequency(responses, testCatalog(), "q_sleep", "q_sleep_duration")
	if table.AbsoluteCounts["7-8 hours"] != 1 || table.AbsoluteCounts["Good"] != 0 {
		t.Errorf("counts = %v, want only duration selections", table.AbsoluteCounts)
	}
}
