package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"dailyq/internal/service"
)

// QuestionHandler serves the daily question catalog
type QuestionHandler struct {
	questionSvc *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSvc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// List handles GET /v1/questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

// Get handles GET /v1/questions/{questionId}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]
	question, err := h.questionSvc.GetByID(r.Context(), questionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if question == nil {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}
	writeJSON(w, http.StatusOK, question)
}
