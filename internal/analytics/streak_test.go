package analytics

import (
	"testing"

	"dailyq/internal/model"
)

func progressFor(t *testing.T, dates []string, now string) model.StreakProgress {
	t.Helper()
	responses := make([]model.Response, 0, len(dates))
	for _, d := range dates {
		responses = append(responses, freeTextResponse(d, ""))
	}
	p, err := DailyProgress(responses, mustTime(now))
	if err != nil {
		t.Fatalf("DailyProgress: %v", err)
	}
	return p
}

func TestDailyProgress_Empty(t *testing.T) {
	p := progressFor(t, nil, "2026-03-15T12:00:00Z")
	if p.CurrentStreak != 0 || p.LongestStreak != 0 || p.TotalDays != 0 || p.DaysThisMonth != 0 {
		t.Errorf("expected all zeros, got %+v", p)
	}
}

func TestDailyProgress_ConsecutiveThroughToday(t *testing.T) {
	p := progressFor(t, []string{"2026-03-13", "2026-03-14", "2026-03-15"}, "2026-03-15T12:00:00Z")
	if p.CurrentStreak != 3 {
		t.Errorf("current = %d, want 3", p.CurrentStreak)
	}
	if p.LongestStreak != 3 {
		t.Errorf("longest = %d, want 3", p.LongestStreak)
	}
	if p.TotalDays != 3 {
		t.Errorf("total = %d, want 3", p.TotalDays)
	}
}

func TestDailyProgress_GapResetsCurrent(t *testing.T) {
	// Two-day run ending two days ago, then today alone.
	p := progressFor(t, []string{"2026-03-12", "2026-03-13", "2026-03-15"}, "2026-03-15T12:00:00Z")
	if p.CurrentStreak != 1 {
		t.Errorf("current = %d, want 1", p.CurrentStreak)
	}
	if p.LongestStreak != 2 {
		t.Errorf("longest = %d, want 2", p.LongestStreak)
	}
}

func TestDailyProgress_StaleHistoryScoresZero(t *testing.T) {
	// A long run that ended a week before now must not be reported as live.
	p := progressFor(t, []string{"2026-03-05", "2026-03-06", "2026-03-07", "2026-03-08"}, "2026-03-15T12:00:00Z")
	if p.CurrentStreak != 0 {
		t.Errorf("current = %d, want 0 for stale history", p.CurrentStreak)
	}
	if p.LongestStreak != 4 {
		t.Errorf("longest = %d, want 4", p.LongestStreak)
	}
}

func TestDailyProgress_YesterdayStillCounts(t *testing.T) {
	p := progressFor(t, []string{"2026-03-13", "2026-03-14"}, "2026-03-15T09:00:00Z")
	if p.CurrentStreak != 2 {
		t.Errorf("current = %d, want 2 when last entry was yesterday", p.CurrentStreak)
	}
}

func TestDailyProgress_DuplicateDatesCollapse(t *testing.T) {
	p := progressFor(t, []string{"2026-03-14", "2026-03-14", "2026-03-15"}, "2026-03-15T12:00:00Z")
	if p.TotalDays != 2 {
		t.Errorf("total = %d, want 2", p.TotalDays)
	}
	if p.CurrentStreak != 2 {
		t.Errorf("current = %d, want 2", p.CurrentStreak)
	}
}

func TestDailyProgress_DaysThisMonth(t *testing.T) {
	p := progressFor(t, []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}, "2026-03-02T12:00:00Z")
	if p.DaysThisMonth != 2 {
		t.Errorf("daysThisMonth = %d, want 2", p.DaysThisMonth)
	}
	if p.CurrentStreak != 4 {
		t.Errorf("current = %d, want 4 across the month boundary", p.CurrentStreak)
	}
}

func TestDailyProgress_InvalidDate(t *testing.T) {
	responses := []model.Response{freeTextResponse("15-03-2026", "")}
	if _, err := DailyProgress(responses, mustTime("2026-03-15T12:00:00Z")); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestDailyProgress_CurrentNeverExceedsLongest(t *testing.T) {
	p := progressFor(t, []string{"2026-03-10", "2026-03-12", "2026-03-13", "2026-03-14", "2026-03-15"}, "2026-03-15T12:00:00Z")
	if p.CurrentStreak > p.LongestStreak {
		t.Errorf("current %d exceeds longest %d", p.CurrentStreak, p.LongestStreak)
	}
	if p.LongestStreak > p.TotalDays {
		t.Errorf("longest %d exceeds total %d", p.LongestStreak, p.TotalDays)
	}
}
