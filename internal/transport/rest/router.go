package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"dailyq/internal/service"
	"dailyq/internal/transport/rest/handler"
	"dailyq/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	QuestionService  *service.QuestionService
	ResponseService  *service.ResponseService
	DashboardService *service.DashboardService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	questionHandler := handler.NewQuestionHandler(c.QuestionService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)
	dashboardHandler := handler.NewDashboardHandler(c.DashboardService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questions/{questionId}", questionHandler.Get).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/responses", responseHandler.Submit).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/responses", responseHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/responses/today/status", responseHandler.TodayStatus).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/responses/{responseId}", responseHandler.Get).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/dashboard/summary", dashboardHandler.Summary).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/dashboard/analytics", dashboardHandler.Analytics).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/dashboard/frequency-chart", dashboardHandler.FrequencyChart).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/dashboard/trend-line/{keyword}", dashboardHandler.TrendLine).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/dashboard/insights", dashboardHandler.Insights).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/dashboard/mood-chart", dashboardHandler.MoodChart).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
