package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"dailyq/internal/analytics"
	"dailyq/internal/cache"
	"dailyq/internal/model"
	"dailyq/internal/repository"
)

// ErrInvalidTimeFilter rejects unknown dashboard time filters.
var ErrInvalidTimeFilter = errors.New("invalid time filter: must be recent, last_week, last_month or all")

// DashboardService assembles dashboard payloads: it pulls the user's
// history, hands it to the analytics engine, and caches the result with
// a short TTL. All computation lives in the engine; all I/O lives here.
type DashboardService struct {
	responses repository.ResponseRepo
	questions *QuestionService
	dashCache cache.DashboardCache
	now       func() time.Time
}

// NewDashboardService creates a dashboard service.
func NewDashboardService(responses repository.ResponseRepo, questions *QuestionService, dashCache cache.DashboardCache) *DashboardService {
	return &DashboardService{
		responses: responses,
		questions: questions,
		dashCache: dashCache,
		now:       time.Now,
	}
}

func (s *DashboardService) load(ctx context.Context, userID string) ([]model.Response, *model.Catalog, error) {
	responses, err := s.responses.ListByUser(ctx, userID, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := s.questions.Catalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	return responses, catalog, nil
}

func (s *DashboardService) cacheSet(ctx context.Context, key string, value interface{}) {
	if err := s.dashCache.Set(ctx, key, value); err != nil {
		log.Printf("dashboard cache set failed: %v", err)
	}
}

// Summary computes the full dashboard summary: streaks, mood, weekly
// report, top keywords and the structured domain scores.
func (s *DashboardService) Summary(ctx context.Context, userID string) (*model.DashboardSummary, error) {
	key := s.dashCache.Key(userID, "summary")
	var cached model.DashboardSummary
	if hit, err := s.dashCache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	responses, catalog, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	summary := &model.DashboardSummary{TotalReflections: len(responses)}
	if len(responses) > 0 {
		last := responses[0].Date
		for _, r := range responses[1:] {
			if r.Date > last {
				last = r.Date
			}
		}
		summary.LastSubmission = last
	}

	// The scorers are independent pure reductions over the same inputs,
	// so they fan out.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		progress, err := analytics.DailyProgress(responses, now)
		if err != nil {
			return err
		}
		summary.DailyProgress = progress
		return nil
	})
	g.Go(func() error {
		mood := analytics.StructuredMoodScore(responses, catalog)
		if len(mood.Distribution) == 0 {
			// No structured mood selections; fall back to the legacy
			// free-text sentiment path.
			mood = analytics.PositivityScore(responses)
		}
		summary.PositivityScore = mood
		return nil
	})
	g.Go(func() error {
		weekly, err := analytics.WeeklySummary(responses, now)
		if err != nil {
			return err
		}
		summary.WeeklySummary = weekly
		return nil
	})
	g.Go(func() error {
		summary.TopKeywords = analytics.KeywordFrequency(responses, "")
		return nil
	})
	g.Go(func() error {
		summary.Domains = model.DomainScores{
			Sleep:     analytics.SleepScore(responses, catalog),
			Nutrition: analytics.NutritionScore(responses, catalog),
			Exercise:  analytics.ExerciseSummary(responses, catalog),
			Hydration: analytics.HydrationSummary(responses, catalog),
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, summary)
	return summary, nil
}

// Analytics returns the per-question and overall frequency breakdown for
// one time filter.
func (s *DashboardService) Analytics(ctx context.Context, userID, timeFilter string) (*model.DashboardAnalytics, error) {
	if !analytics.ValidTimeFilter(timeFilter) {
		return nil, ErrInvalidTimeFilter
	}

	key := s.dashCache.Key(userID, "analytics", timeFilter)
	var cached model.DashboardAnalytics
	if hit, err := s.dashCache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	responses, catalog, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	result, err := analytics.DashboardAnalytics(responses, catalog, timeFilter, s.now())
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, result)
	return &result, nil
}

// FrequencyChart returns a keyword or selection frequency table,
// optionally filtered by question and sub-question.
func (s *DashboardService) FrequencyChart(ctx context.Context, userID, questionID, subQuestionID, source string) (*model.FrequencyTable, error) {
	key := s.dashCache.Key(userID, "frequency", questionID, subQuestionID, source)
	var cached model.FrequencyTable
	if hit, err := s.dashCache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	responses, catalog, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	var table model.FrequencyTable
	if source == "selections" || subQuestionID != "" {
		table = analytics.SelectionFrequency(responses, catalog, questionID, subQuestionID)
	} else {
		table = analytics.KeywordFrequency(responses, questionID)
	}

	s.cacheSet(ctx, key, table)
	return &table, nil
}

// TrendLine returns daily and weekly trend series for one keyword or
// option text, with its generated insight strings.
func (s *DashboardService) TrendLine(ctx context.Context, userID, keyword, questionID string) (model.TrendSeries, []string, error) {
	responses, catalog, err := s.load(ctx, userID)
	if err != nil {
		return model.TrendSeries{}, nil, err
	}
	insights, trends, err := analytics.KeywordInsights(responses, catalog, keyword, questionID)
	if err != nil {
		return model.TrendSeries{}, nil, err
	}
	return trends, insights, nil
}

// Insights returns either keyword-specific or general window-comparison
// insights.
func (s *DashboardService) Insights(ctx context.Context, userID, keyword, questionID string) ([]string, int, error) {
	responses, catalog, err := s.load(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	if keyword != "" {
		insights, _, err := analytics.KeywordInsights(responses, catalog, keyword, questionID)
		if err != nil {
			return nil, 0, err
		}
		return insights, len(responses), nil
	}

	insights, err := analytics.GeneralInsights(responses, s.now())
	if err != nil {
		return nil, 0, err
	}
	return insights, len(responses), nil
}

// MoodChart returns the per-day mood scores over a trailing window.
func (s *DashboardService) MoodChart(ctx context.Context, userID string, windowDays int) (map[string]model.DailyMoodPoint, error) {
	key := s.dashCache.Key(userID, "moodchart", strconv.Itoa(windowDays))
	var cached map[string]model.DailyMoodPoint
	if hit, err := s.dashCache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	responses, catalog, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	chart, err := analytics.DailyMoodChart(responses, catalog, s.now(), windowDays)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, chart)
	return chart, nil
}
