package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"dailyq/internal/cache"
	"dailyq/internal/model"
	"dailyq/internal/nlp"
	"dailyq/internal/repository"
)

var (
	ErrDuplicateDate    = errors.New("response for this date already submitted")
	ErrIncompleteAnswer = errors.New("all catalog questions must be answered")
	ErrInvalidDate      = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrNotFound         = errors.New("response not found")
	ErrForbidden        = errors.New("response belongs to another user")
)

// Keyword extraction is the expensive part of submission; it runs off
// the request path on a bounded group, one answer at a time.
const extractWorkers = 3

// ResponseService handles submission and retrieval of daily responses.
type ResponseService struct {
	responses repository.ResponseRepo
	questions *QuestionService
	extractor *nlp.Extractor
	dashCache cache.DashboardCache
}

// NewResponseService creates a response service.
func NewResponseService(responses repository.ResponseRepo, questions *QuestionService, extractor *nlp.Extractor, dashCache cache.DashboardCache) *ResponseService {
	return &ResponseService{
		responses: responses,
		questions: questions,
		extractor: extractor,
		dashCache: dashCache,
	}
}

// Submit validates and stores one day's answers. Free-text answers get
// their keywords extracted before the response is persisted. A second
// submission for the same (user, date) is rejected.
func (s *ResponseService) Submit(ctx context.Context, userID, date string, answers []model.Answer) (*model.Response, error) {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	catalog, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateAnswers(answers, catalog); err != nil {
		return nil, err
	}

	exists, err := s.responses.ExistsForDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateDate
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(extractWorkers)
	for i := range answers {
		if answers[i].Kind != model.AnswerFreeText {
			continue
		}
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			keywords, err := s.extractor.Extract(answers[i].Text)
			if err != nil {
				return fmt.Errorf("keyword extraction: %w", err)
			}
			answers[i].Keywords = keywords
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	response := &model.Response{
		ID:          uuid.New().String(),
		UserID:      userID,
		Date:        date,
		SubmittedAt: time.Now(),
		Answers:     answers,
		KeywordsAgg: aggregateKeywords(answers),
	}
	if err := s.responses.Create(ctx, response); err != nil {
		return nil, err
	}

	// Stale dashboards are worse than a recomputed one; a failed
	// invalidation is logged, not returned.
	if err := s.dashCache.InvalidateUser(ctx, userID); err != nil {
		log.Printf("dashboard cache invalidation failed for user %s: %v", userID, err)
	}
	return response, nil
}

func validateAnswers(answers []model.Answer, catalog []model.Question) error {
	answered := make(map[string]bool, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = true
	}
	for _, q := range catalog {
		if !answered[q.ID] {
			return ErrIncompleteAnswer
		}
	}
	return nil
}

func aggregateKeywords(answers []model.Answer) []string {
	unique := make(map[string]bool)
	var agg []string
	for _, a := range answers {
		for _, kw := range a.Keywords {
			if !unique[kw] {
				unique[kw] = true
				agg = append(agg, kw)
			}
		}
	}
	sort.Strings(agg)
	return agg
}

// ListByUser returns the user's responses, optionally bounded by
// YYYY-MM-DD start/end dates (inclusive).
func (s *ResponseService) ListByUser(ctx context.Context, userID, startDate, endDate string) ([]model.Response, error) {
	var start, end *time.Time
	if startDate != "" {
		t, err := time.Parse(model.DateLayout, startDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		start = &t
	}
	if endDate != "" {
		t, err := time.Parse(model.DateLayout, endDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		end = &t
	}
	return s.responses.ListByUser(ctx, userID, start, end)
}

// GetByID returns one response after checking ownership.
func (s *ResponseService) GetByID(ctx context.Context, userID, responseID string) (*model.Response, error) {
	response, err := s.responses.GetByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, ErrNotFound
	}
	if response.UserID != userID {
		return nil, ErrForbidden
	}
	return response, nil
}

// TodayStatus reports whether the user already submitted today.
type TodayStatus struct {
	Date       string `json:"date"`
	Submitted  bool   `json:"submitted"`
	ResponseID string `json:"response_id,omitempty"`
}

// Today checks for a submission on the current date.
func (s *ResponseService) Today(ctx context.Context, userID string, now time.Time) (*TodayStatus, error) {
	today := now.Format(model.DateLayout)
	start, err := time.Parse(model.DateLayout, today)
	if err != nil {
		return nil, err
	}
	responses, err := s.responses.ListByUser(ctx, userID, &start, &start)
	if err != nil {
		return nil, err
	}
	status := &TodayStatus{Date: today}
	if len(responses) > 0 {
		status.Submitted = true
		status.ResponseID = responses[0].ID
	}
	return status, nil
}
