package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dailyq/internal/repository"
	"dailyq/internal/service"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "dailyq"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewQuestionRepo(client.Database(mongoDB))

	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count questions: %v", err)
	}
	if count > 0 {
		fmt.Printf("Question catalog already has %d questions, nothing to do\n", count)
		return
	}

	questions := service.DefaultQuestions()
	if err := repo.InsertMany(ctx, questions); err != nil {
		log.Fatalf("Failed to insert questions: %v", err)
	}

	fmt.Printf("Successfully seeded %d daily questions\n", len(questions))
}
