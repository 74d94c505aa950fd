package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"dailyq/internal/model"
)

// In-memory doubles for the Mongo repositories and the Redis cache.
// They keep the same semantics the real implementations have: sorted
// listing, nil-on-missing lookups, and user-scoped cache invalidation.

type fakeQuestionRepo struct {
	questions []model.Question
	inserts   int
}

func (f *fakeQuestionRepo) List(ctx context.Context) ([]model.Question, error) {
	out := append([]model.Question(nil), f.questions...)
	return out, nil
}

func (f *fakeQuestionRepo) GetByID(ctx context.Context, id string) (*model.Question, error) {
	for i := range f.questions {
		if f.questions[i].ID == id {
			q := f.questions[i]
			return &q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuestionRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.questions)), nil
}

func (f *fakeQuestionRepo) InsertMany(ctx context.Context, questions []model.Question) error {
	f.questions = append(f.questions, questions...)
	f.inserts++
	return nil
}

type fakeResponseRepo struct {
	responses []model.Response
}

func (f *fakeResponseRepo) Create(ctx context.Context, response *model.Response) error {
	f.responses = append(f.responses, *response)
	return nil
}

func (f *fakeResponseRepo) GetByID(ctx context.Context, id string) (*model.Response, error) {
	for i := range f.responses {
		if f.responses[i].ID == id {
			r := f.responses[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeResponseRepo) ListByUser(ctx context.Context, userID string, start, end *time.Time) ([]model.Response, error) {
	var out []model.Response
	for _, r := range f.responses {
		if r.UserID != userID {
			continue
		}
		if start != nil && r.Date < start.Format(model.DateLayout) {
			continue
		}
		if end != nil && r.Date > end.Format(model.DateLayout) {
			continue
		}
		out = append(out, r)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Date < out[j-1].Date; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (f *fakeResponseRepo) ExistsForDate(ctx context.Context, userID, date string) (bool, error) {
	for _, r := range f.responses {
		if r.UserID == userID && r.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeResponseRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

type fakeDashCache struct {
	entries       map[string][]byte
	invalidations []string
}

func newFakeDashCache() *fakeDashCache {
	return &fakeDashCache{entries: make(map[string][]byte)}
}

func (f *fakeDashCache) Key(userID, endpoint string, params ...string) string {
	return "dash:" + userID + ":" + endpoint + ":" + strings.Join(params, ":")
}

func (f *fakeDashCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeDashCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeDashCache) InvalidateUser(ctx context.Context, userID string) error {
	f.invalidations = append(f.invalidations, userID)
	prefix := "dash:" + userID + ":"
	for key := range f.entries {
		if strings.HasPrefix(key, prefix) {
			delete(f.entries, key)
		}
	}
	return nil
}
