package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"dailyq/internal/model"
	"dailyq/internal/service"
	"dailyq/internal/transport/rest/middleware"
)

// ResponseHandler handles daily response submission and retrieval
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// SubmitRequest is the request body for submitting a daily response
type SubmitRequest struct {
	Date    string         `json:"date"`
	Answers []model.Answer `json:"answers"`
}

// Submit handles POST /v1/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.responseSvc.Submit(r.Context(), userID, req.Date, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrIncompleteAnswer):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateDate):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":     "Response submitted successfully",
		"response_id": response.ID,
		"date":        response.Date,
	})
}

// List handles GET /v1/responses?start_date=&end_date=
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	responses, err := h.responseSvc.ListByUser(r.Context(), userID,
		r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, responses)
}

// Get handles GET /v1/responses/{responseId}
func (h *ResponseHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	responseID := mux.Vars(r)["responseId"]

	response, err := h.responseSvc.GetByID(r.Context(), userID, responseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// TodayStatus handles GET /v1/responses/today/status
func (h *ResponseHandler) TodayStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	status, err := h.responseSvc.Today(r.Context(), userID, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, status)
}
