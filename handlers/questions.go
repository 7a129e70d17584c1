// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quizhost/middleware"
	"github.com/danielhkuo/quizhost/quiz"
)

type QuestionHandler struct {
	quiz *quiz.Manager
}

func NewQuestionHandler(q *quiz.Manager) *QuestionHandler {
	return &QuestionHandler{quiz: q}
}

// Get handles GET /questions/{teamId}
// Serves the raw question document for the team's assigned set in the
// active round.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("teamId")
	if teamID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "teamId is required")
		return
	}

	data, err := h.quiz.Questions(teamID)
	switch {
	case errors.Is(err, quiz.ErrNotLoggedIn):
		middleware.ErrorResponse(w, http.StatusNotFound, "Team is not logged in")
		return
	case errors.Is(err, quiz.ErrMissingResource):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question set not found")
		return
	case err != nil:
		slog.Error("failed to load questions", "team", teamID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load questions")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write question document", "team", teamID, "error", err)
	}
}
