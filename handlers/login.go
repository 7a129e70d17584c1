// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quizhost/middleware"
	"github.com/danielhkuo/quizhost/models"
	"github.com/danielhkuo/quizhost/tracker"
)

type LoginHandler struct {
	tracker *tracker.Tracker
}

func NewLoginHandler(t *tracker.Tracker) *LoginHandler {
	return &LoginHandler{tracker: t}
}

// Login handles POST /login
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.TeamID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "teamId is required")
		return
	}
	if req.RegNum == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "regNum is required")
		return
	}

	s, err := h.tracker.Login(req.TeamID, req.RegNum)
	switch {
	case errors.Is(err, tracker.ErrInvalidCredentials):
		middleware.Refused(w, "Invalid credentials.")
		return
	case errors.Is(err, tracker.ErrAlreadyParticipated):
		middleware.Refused(w, "This team has already participated.")
		return
	case err != nil:
		slog.Error("login failed", "team", req.TeamID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record login")
		return
	}

	resp := models.LoginResponse{
		Success: true,
		Message: "Login successful!",
		TeamID:  s.TeamID,
	}
	if s.QuestionSet != nil {
		resp.QuestionSet = *s.QuestionSet
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
