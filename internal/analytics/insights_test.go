package analytics

import (
	"strings"
	"testing"

	"dailyq/internal/model"
)

func TestKeywordInsights_IncreasingMentions(t *testing.T) {
	responses := []model.Response{
		freeTextResponse("2026-03-10", "", "work"),
		freeTextResponse("2026-03-15", "", "work", "work", "work"),
	}
	insights, series, err := KeywordInsights(responses, testCatalog(), "work", "")
	if err != nil {
		t.Fatalf("KeywordInsights: %v", err)
	}
	if len(series.Daily) != 2 {
		t.Fatalf("daily = %v, want 2 points", series.Daily)
	}
	if len(insights) == 0 || !strings.Contains(insights[0], "increased") {
		t.Errorf("insights = %v, want an increase observation", insights)
	}
}

func TestKeywordInsights_WeeklyDirection(t *testing.T) {
	responses := []model.Response{
		freeTextResponse("2026-03-04", "", "work", "work", "work", "work"), // previous ISO week
		freeTextResponse("2026-03-10", "", "work"),
	}
	insights, _, err := KeywordInsights(responses, testCatalog(), "work", "")
	if err != nil {
		t.Fatalf("KeywordInsights: %v", err)
	}
	found := false
	for _, in := range insights {
		if strings.Contains(in, "trending downward") {
			found = true
		}
	}
	if !found {
		t.Errorf("insights = %v, want a downward weekly observation", insights)
	}
}

func TestKeywordInsights_NoMentions(t *testing.T) {
	insights, series, err := KeywordInsights(nil, testCatalog(), "work", "")
	if err != nil {
		t.Fatalf("KeywordInsights: %v", err)
	}
	if len(insights) != 0 || len(series.Daily) != 0 {
		t.Errorf("expected no insights for an unmentioned keyword, got %v", insights)
	}
}

func TestGeneralInsights_EmergingThemes(t *testing.T) {
	now := mustTime("2026-03-15T12:00:00Z")
	responses := []model.Response{
		// Present only in the recent window, not in the last week.
		freeTextResponse("2026-03-03", "", "garden", "garden"),
		// Present in both windows.
		freeTextResponse("2026-03-14", "", "work"),
	}
	insights, err := GeneralInsights(responses, now)
	if err != nil {
		t.Fatalf("GeneralInsights: %v", err)
	}
	found := false
	for _, in := range insights {
		if strings.HasPrefix(in, "New themes emerging:") && strings.Contains(in, "garden") {
			found = true
		}
	}
	if !found {
		t.Errorf("insights = %v, want garden flagged as emerging", insights)
	}
}

func TestGeneralInsights_RisingTheme(t *testing.T) {
	now := mustTime("2026-03-15T12:00:00Z")
	responses := []model.Response{
		// Heavy recent mentions outside the last-week window push the
		// recent count past the rise threshold.
		freeTextResponse("2026-03-03", "", "work", "work", "work", "work"),
		freeTextResponse("2026-03-14", "", "work"),
	}
	insights, err := GeneralInsights(responses, now)
	if err != nil {
		t.Fatalf("GeneralInsights: %v", err)
	}
	found := false
	for _, in := range insights {
		if strings.Contains(in, "thinking more about 'work'") {
			found = true
		}
	}
	if !found {
		t.Errorf("insights = %v, want a rising observation for work", insights)
	}
}

func TestGeneralInsights_Deterministic(t *testing.T) {
	now := mustTime("2026-03-15T12:00:00Z")
	responses := []model.Response{
		freeTextResponse("2026-03-03", "", "alpha", "beta", "gamma", "delta"),
		freeTextResponse("2026-03-14", "", "work"),
	}
	first, err := GeneralInsights(responses, now)
	if err != nil {
		t.Fatalf("GeneralInsights: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := GeneralInsights(responses, now)
		if err != nil {
			t.Fatalf("GeneralInsights: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d produced %v, first run %v", i, again, first)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d produced %v, first run %v", i, again, first)
			}
		}
	}
}
