package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dailyq/internal/analytics"
	"dailyq/internal/service"
	"dailyq/internal/transport/rest/middleware"
)

// DashboardHandler serves the computed analytics endpoints
type DashboardHandler struct {
	dashboardSvc *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardSvc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Summary handles GET /v1/dashboard/summary
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	summary, err := h.dashboardSvc.Summary(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Analytics handles GET /v1/dashboard/analytics?time_filter=
func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	timeFilter := r.URL.Query().Get("time_filter")
	if timeFilter == "" {
		timeFilter = analytics.FilterRecent
	}

	result, err := h.dashboardSvc.Analytics(r.Context(), userID, timeFilter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeFilter) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// FrequencyChart handles GET /v1/dashboard/frequency-chart
func (h *DashboardHandler) FrequencyChart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	q := r.URL.Query()

	table, err := h.dashboardSvc.FrequencyChart(r.Context(), userID,
		q.Get("question_id"), q.Get("sub_question_id"), q.Get("source"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"question_id":     q.Get("question_id"),
		"sub_question_id": q.Get("sub_question_id"),
		"data":            table,
	})
}

// TrendLine handles GET /v1/dashboard/trend-line/{keyword}
func (h *DashboardHandler) TrendLine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	keyword := mux.Vars(r)["keyword"]
	questionID := r.URL.Query().Get("question_id")

	trends, insights, err := h.dashboardSvc.TrendLine(r.Context(), userID, keyword, questionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"keyword":     keyword,
		"question_id": questionID,
		"trends":      trends,
		"insights":    insights,
	})
}

// Insights handles GET /v1/dashboard/insights
func (h *DashboardHandler) Insights(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	q := r.URL.Query()

	insights, total, err := h.dashboardSvc.Insights(r.Context(), userID, q.Get("keyword"), q.Get("question_id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"insights":        insights,
		"keyword":         q.Get("keyword"),
		"question_id":     q.Get("question_id"),
		"total_responses": total,
	})
}

// MoodChart handles GET /v1/dashboard/mood-chart?window=
func (h *DashboardHandler) MoodChart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	window := analytics.DefaultChartWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "window must be an integer")
			return
		}
		window = parsed
	}

	chart, err := h.dashboardSvc.MoodChart(r.Context(), userID, window)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"window": window,
		"days":   chart,
	})
}
