package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dailyq/internal/cache"
	"dailyq/internal/config"
	"dailyq/internal/nlp"
	"dailyq/internal/repository"
	"dailyq/internal/service"
	"dailyq/internal/transport/rest"
)

// @title DailyQ API
// @version 1.0
// @description Daily journaling backend with streak, mood and wellness analytics
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()
	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	if err := responseRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create response indexes:", err)
	}

	// Initialize cache
	dashCache := cache.NewDashboardCache(rdb, cfg.CacheTTL)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	questionSvc := service.NewQuestionService(questionRepo)
	responseSvc := service.NewResponseService(responseRepo, questionSvc, nlp.NewExtractor(), dashCache)
	dashboardSvc := service.NewDashboardService(responseRepo, questionSvc, dashCache)

	if err := questionSvc.SeedIfEmpty(ctx); err != nil {
		log.Fatal("Failed to seed question catalog:", err)
	}

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		QuestionService:  questionSvc,
		ResponseService:  responseSvc,
		DashboardService: dashboardSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/register")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/questions")
		log.Println("  POST/GET /v1/responses")
		log.Println("  GET  /v1/responses/today/status")
		log.Println("  GET  /v1/dashboard/summary")
		log.Println("  GET  /v1/dashboard/analytics")
		log.Println("  GET  /v1/dashboard/trend-line/{keyword}")
		log.Println("  GET  /v1/dashboard/insights")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
