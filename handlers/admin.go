// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quizhost/auth"
	"github.com/danielhkuo/quizhost/cliparse"
	"github.com/danielhkuo/quizhost/middleware"
	"github.com/danielhkuo/quizhost/models"
	"github.com/danielhkuo/quizhost/quiz"
	"github.com/danielhkuo/quizhost/state"
	"github.com/danielhkuo/quizhost/tracker"
)

type AdminHandler struct {
	tracker *tracker.Tracker
	quiz    *quiz.Manager
	app     *state.App
	cfg     cliparse.Config
}

func NewAdminHandler(t *tracker.Tracker, q *quiz.Manager, app *state.App, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{tracker: t, quiz: q, app: app, cfg: cfg}
}

// Login handles POST /admin/login
// Checks the shared admin password and sets the session cookie.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !auth.ConstantTimeEquals(req.Password, h.cfg.AdminPassword) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := auth.GenerateSessionToken(h.cfg.SessionSalt)
	if err != nil {
		slog.Error("failed to generate admin session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	slog.Info("admin logged in", "remote", r.RemoteAddr)

	middleware.JSONResponse(w, http.StatusOK, models.BasicResponse{
		Success: true,
		Message: "Admin login successful",
	})
}

// SetRound handles POST /admin/set-round
func (h *AdminHandler) SetRound(w http.ResponseWriter, r *http.Request) {
	var req models.SetRoundRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.app.SetRound(req.Round); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid round %q", req.Round))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BasicResponse{
		Success: true,
		Message: "Active round set to " + req.Round,
	})
}

// StartQuiz handles POST /admin/start-quiz
func (h *AdminHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	h.armFlag(w, models.FlagStartQuiz)
}

// PublishResults handles POST /admin/publish-results
func (h *AdminHandler) PublishResults(w http.ResponseWriter, r *http.Request) {
	h.armFlag(w, models.FlagResultsPublished)
}

// ForceRedirect handles POST /admin/force-redirect
func (h *AdminHandler) ForceRedirect(w http.ResponseWriter, r *http.Request) {
	h.armFlag(w, models.FlagForceRedirect)
}

func (h *AdminHandler) armFlag(w http.ResponseWriter, flag string) {
	if err := h.app.SetFlag(flag); err != nil {
		slog.Error("failed to arm signal flag", "flag", flag, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to arm signal")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.BasicResponse{
		Success: true,
		Message: fmt.Sprintf("Signal %s armed for %s", flag, h.cfg.SignalTTL),
	})
}

// FinalizeSelections handles POST /admin/finalize-selections
func (h *AdminHandler) FinalizeSelections(w http.ResponseWriter, r *http.Request) {
	var req models.FinalizeSelectionsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.tracker.Finalize(req.SelectedTeams); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save selections")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BasicResponse{
		Success: true,
		Message: fmt.Sprintf("%d team(s) selected for the next round", len(req.SelectedTeams)),
	})
}

// ResetLogins handles POST /admin/reset-logins
// The single full system reset: sessions, selections, round, and flags.
func (h *AdminHandler) ResetLogins(w http.ResponseWriter, r *http.Request) {
	if err := h.tracker.ResetAll(); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error resetting login tracker")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BasicResponse{
		Success: true,
		Message: "Login tracker reset successfully",
	})
}

// RemoveTeam handles POST /admin/remove-team
func (h *AdminHandler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveTeamRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.TeamID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "teamId is required")
		return
	}

	err := h.tracker.Remove(req.TeamID)
	switch {
	case errors.Is(err, tracker.ErrNotFound):
		middleware.Refused(w, "Team not found")
		return
	case err != nil:
		slog.Error("failed to remove team", "team", req.TeamID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error updating login tracker")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BasicResponse{
		Success: true,
		Message: fmt.Sprintf("Team %s removed successfully", req.TeamID),
	})
}

// RemoveTeamsBatch handles POST /admin/remove-teams-batch
func (h *AdminHandler) RemoveTeamsBatch(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveTeamsBatchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.TeamIDs) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "teamIds is required")
		return
	}

	removed, err := h.tracker.RemoveBatch(req.TeamIDs)
	if err != nil {
		slog.Error("failed to remove teams", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error updating login tracker")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RemoveBatchResponse{
		Success: true,
		Message: fmt.Sprintf("%d team(s) removed", removed),
		Removed: removed,
	})
}
