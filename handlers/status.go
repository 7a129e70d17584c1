// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quizhost/middleware"
	"github.com/danielhkuo/quizhost/models"
	"github.com/danielhkuo/quizhost/state"
	"github.com/danielhkuo/quizhost/tracker"
)

// StatusHandler serves the read-only status endpoints clients poll to
// drive their UI.
type StatusHandler struct {
	tracker *tracker.Tracker
	app     *state.App
}

func NewStatusHandler(t *tracker.Tracker, app *state.App) *StatusHandler {
	return &StatusHandler{tracker: t, app: app}
}

// Status handles GET /api/status
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.app.Status())
}

// LoggedTeams handles GET /api/logged-teams and GET /admin/logged-teams
func (h *StatusHandler) LoggedTeams(w http.ResponseWriter, r *http.Request) {
	teams := h.tracker.Sessions()
	middleware.JSONResponse(w, http.StatusOK, models.LoggedTeamsResponse{
		Success:       true,
		TotalLoggedIn: len(teams),
		Teams:         teams,
	})
}

// SelectedTeams handles GET /api/selected-teams
func (h *StatusHandler) SelectedTeams(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.SelectedTeamsResponse{
		Success:       true,
		SelectedTeams: h.tracker.SelectedTeams(),
	})
}

// ResultsStatus handles GET /api/results-status
func (h *StatusHandler) ResultsStatus(w http.ResponseWriter, r *http.Request) {
	h.flagStatus(w, models.FlagResultsPublished)
}

// RedirectStatus handles GET /api/redirect-status
func (h *StatusHandler) RedirectStatus(w http.ResponseWriter, r *http.Request) {
	h.flagStatus(w, models.FlagForceRedirect)
}

// StartQuizStatus handles GET /api/start-quiz-status
func (h *StatusHandler) StartQuizStatus(w http.ResponseWriter, r *http.Request) {
	h.flagStatus(w, models.FlagStartQuiz)
}

func (h *StatusHandler) flagStatus(w http.ResponseWriter, flag string) {
	middleware.JSONResponse(w, http.StatusOK, models.FlagStatusResponse{
		Success: true,
		Flag:    flag,
		Active:  h.app.Flag(flag),
	})
}
