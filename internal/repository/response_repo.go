package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dailyq/internal/model"
)

// ResponseRepo stores and retrieves daily responses.
type ResponseRepo interface {
	Create(ctx context.Context, response *model.Response) error
	GetByID(ctx context.Context, id string) (*model.Response, error)
	ListByUser(ctx context.Context, userID string, start, end *time.Time) ([]model.Response, error)
	ExistsForDate(ctx context.Context, userID, date string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a response repository.
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{collection: db.Collection("responses")}
}

// EnsureIndexes creates the unique (userId, date) index backing the
// one-submission-per-day guarantee.
func (r *responseRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *responseRepo) Create(ctx context.Context, response *model.Response) error {
	if response.SubmittedAt.IsZero() {
		response.SubmittedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, response)
	return err
}

func (r *responseRepo) GetByID(ctx context.Context, id string) (*model.Response, error) {
	var response model.Response
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&response)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepo) ListByUser(ctx context.Context, userID string, start, end *time.Time) ([]model.Response, error) {
	filter := bson.M{"userId": userID}
	dateFilter := bson.M{}
	if start != nil {
		dateFilter["$gte"] = start.Format(model.DateLayout)
	}
	if end != nil {
		dateFilter["$lte"] = end.Format(model.DateLayout)
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []model.Response
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepo) ExistsForDate(ctx context.Context, userID, date string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID, "date": date})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
