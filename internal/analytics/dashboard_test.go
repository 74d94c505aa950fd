package analytics

import (
	"reflect"
	"testing"

	"dailyq/internal/model"
)

func TestDashboardAnalytics(t *testing.T) {
	now := mustTime("2026-03-15T12:00:00Z")
	responses := []model.Response{
		{
			UserID: "u1",
			Date:   "2026-03-14",
			Answers: []model.Answer{
				{QuestionID: "q_mood", Kind: model.AnswerFreeText, Keywords: []string{"work", "sleep"}},
			},
		},
		{
			UserID: "u1",
			Date:   "2026-03-15",
			Answers: []model.Answer{
				{QuestionID: "q_mood", Kind: model.AnswerFreeText, Keywords: []string{"work"}},
			},
		},
	}

	out, err := DashboardAnalytics(responses, testCatalog(), FilterAll, now)
	if err != nil {
		t.Fatalf("DashboardAnalytics: %v", err)
	}

	if out.Summary.TotalResponses != 2 {
		t.Errorf("totalResponses = %d, want 2", out.Summary.TotalResponses)
	}
	if out.Summary.DateRange.Start != "2026-03-14" || out.Summary.DateRange.End != "2026-03-15" {
		t.Errorf("dateRange = %+v", out.Summary.DateRange)
	}
	if out.Overall.AbsoluteCounts["work"] != 2 {
		t.Errorf("overall counts = %v", out.Overall.AbsoluteCounts)
	}
	if len(out.Summary.MostFrequentKeywords) == 0 || out.Summary.MostFrequentKeywords[0] != "work" {
		t.Errorf("mostFrequent = %v, want work first", out.Summary.MostFrequentKeywords)
	}

	moodTable, ok := out.PerQuestion["q_mood"]
	if !ok {
		t.Fatal("expected per-question table for q_mood")
	}
	if moodTable.AbsoluteCounts["work"] != 2 {
		t.Errorf("q_mood counts = %v", moodTable.AbsoluteCounts)
	}
}

func TestDashboardAnalytics_TimeFilterApplied(t *testing.T) {
	now := mustTime("2026-03-15T12:00:00Z")
	responses := []model.Response{
		freeTextResponse("2026-03-15", "", "work"),
		freeTextResponse("2026-01-01", "", "holiday"),
	}
	out, err := DashboardAnalytics(responses, testCatalog(), FilterLastWeek, now)
	if err != nil {
		t.Fatalf("DashboardAnalytics: %v", err)
	}
	if out.Summary.TotalResponses != 1 {
		t.Errorf("totalResponses = %d, want 1 after filtering", out.Summary.TotalResponses)
	}
	if out.Overall.AbsoluteCounts["holiday"] != 0 {
		t.Errorf("filtered-out keyword leaked: %v", out.Overall.AbsoluteCounts)
	}
	if out.TimeFilter != FilterLastWeek {
		t.Errorf("timeFilter = %q, want %q", out.TimeFilter, FilterLastWeek)
	}
}

// Aggregations over the same inputs must be byte-for-byte repeatable.
func TestDashboardAnalytics_Idempotent(t *testing.T) {
	now := mustTime("2026-03-15T12:00:00Z")
	responses := []model.Response{
		freeTextResponse("2026-03-13", "", "alpha", "beta", "gamma"),
		freeTextResponse("2026-03-14", "", "beta", "gamma", "delta"),
		moodResponse("2026-03-15", "opt_happy"),
	}

	first, err := DashboardAnalytics(responses, testCatalog(), FilterAll, now)
	if err != nil {
		t.Fatalf("DashboardAnalytics: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := DashboardAnalytics(responses, testCatalog(), FilterAll, now)
		if err != nil {
			t.Fatalf("DashboardAnalytics: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst %+v\nagain %+v", i, first, again)
		}
	}
}
