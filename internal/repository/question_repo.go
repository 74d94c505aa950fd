package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dailyq/internal/model"
)

// QuestionRepo stores the fixed daily question catalog.
type QuestionRepo interface {
	List(ctx context.Context) ([]model.Question, error)
	GetByID(ctx context.Context, id string) (*model.Question, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, questions []model.Question) error
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a question repository.
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{collection: db.Collection("questions")}
}

func (r *questionRepo) List(ctx context.Context) ([]model.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) GetByID(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *questionRepo) InsertMany(ctx context.Context, questions []model.Question) error {
	docs := make([]interface{}, len(questions))
	for i := range questions {
		docs[i] = questions[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
