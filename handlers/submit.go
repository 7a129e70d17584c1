// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quizhost/middleware"
	"github.com/danielhkuo/quizhost/models"
	"github.com/danielhkuo/quizhost/quiz"
)

type SubmitHandler struct {
	quiz *quiz.Manager
}

func NewSubmitHandler(q *quiz.Manager) *SubmitHandler {
	return &SubmitHandler{quiz: q}
}

// SubmitQuiz handles POST /submit-quiz
func (h *SubmitHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitQuizRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.TeamID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "teamId is required")
		return
	}

	if err := h.quiz.Submit(req); err != nil {
		slog.Error("failed to record submission", "team", req.TeamID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save score")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BasicResponse{
		Success: true,
		Message: "Quiz submitted successfully!",
	})
}

// LiveUpdate handles POST /api/live-update
// Partial update of a team's in-progress answers; 404 for unknown teams.
func (h *SubmitHandler) LiveUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.LiveUpdateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.TeamID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "teamId is required")
		return
	}

	err := h.quiz.LiveUpdate(req.TeamID, req.DetailedAnswers)
	switch {
	case errors.Is(err, quiz.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Team not found")
		return
	case err != nil:
		slog.Error("live update failed", "team", req.TeamID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save answers")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BasicResponse{
		Success: true,
		Message: "Answers saved",
	})
}
