// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quizhost/cliparse"
	"github.com/danielhkuo/quizhost/handlers"
	"github.com/danielhkuo/quizhost/middleware"
	"github.com/danielhkuo/quizhost/quiz"
	"github.com/danielhkuo/quizhost/state"
	"github.com/danielhkuo/quizhost/tracker"
)

func NewRouter(t *tracker.Tracker, q *quiz.Manager, app *state.App, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(t)
	questionHandler := handlers.NewQuestionHandler(q)
	submitHandler := handlers.NewSubmitHandler(q)
	statusHandler := handlers.NewStatusHandler(t, app)
	adminHandler := handlers.NewAdminHandler(t, q, app, cfg)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.SessionSalt, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Team operations (public)
	mux.HandleFunc("POST /login", middleware.WithLogging(loginHandler.Login))
	mux.HandleFunc("GET /questions/{teamId}", middleware.WithLogging(questionHandler.Get))
	mux.HandleFunc("POST /submit-quiz", middleware.WithLogging(submitHandler.SubmitQuiz))
	mux.HandleFunc("POST /api/live-update", middleware.WithLogging(submitHandler.LiveUpdate))

	// Status polling (public)
	mux.HandleFunc("GET /api/status", middleware.WithLogging(statusHandler.Status))
	mux.HandleFunc("GET /api/logged-teams", middleware.WithLogging(statusHandler.LoggedTeams))
	mux.HandleFunc("GET /api/selected-teams", middleware.WithLogging(statusHandler.SelectedTeams))
	mux.HandleFunc("GET /api/results-status", middleware.WithLogging(statusHandler.ResultsStatus))
	mux.HandleFunc("GET /api/redirect-status", middleware.WithLogging(statusHandler.RedirectStatus))
	mux.HandleFunc("GET /api/start-quiz-status", middleware.WithLogging(statusHandler.StartQuizStatus))

	// Admin operations (session cookie required, except login)
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /admin/set-round", admin(adminHandler.SetRound))
	mux.HandleFunc("POST /admin/start-quiz", admin(adminHandler.StartQuiz))
	mux.HandleFunc("POST /admin/publish-results", admin(adminHandler.PublishResults))
	mux.HandleFunc("POST /admin/force-redirect", admin(adminHandler.ForceRedirect))
	mux.HandleFunc("POST /admin/finalize-selections", admin(adminHandler.FinalizeSelections))
	mux.HandleFunc("POST /admin/reset-logins", admin(adminHandler.ResetLogins))
	mux.HandleFunc("POST /admin/remove-team", admin(adminHandler.RemoveTeam))
	mux.HandleFunc("POST /admin/remove-teams-batch", admin(adminHandler.RemoveTeamsBatch))
	mux.HandleFunc("GET /admin/logged-teams", admin(statusHandler.LoggedTeams))
	mux.HandleFunc("GET /admin/export", admin(adminHandler.Export))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quizhost API v1"))
	})

	return mux
}
