// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the quizhost API.

# Handler Types

Each handler is a struct with its dependencies injected via a constructor:

  - LoginHandler: team login
  - QuestionHandler: round-gated question delivery
  - SubmitHandler: quiz submission and live answer updates
  - StatusHandler: read-only status endpoints polled by clients
  - AdminHandler: admin session, round control, signals, selections,
    removals, reset, and CSV export

# Team Flow

	POST /login                  -> Login (assigns the question set)
	GET  /questions/{teamId}     -> Get (404 until logged in)
	POST /api/live-update        -> LiveUpdate (in-progress answers)
	POST /submit-quiz            -> SubmitQuiz (idempotent per team+round)

# Admin Flow

	POST /admin/login            -> sets the quiz_admin session cookie
	POST /admin/set-round        -> switch the active round
	POST /admin/start-quiz       -> arm a signal flag (auto-expires)
	POST /admin/publish-results
	POST /admin/force-redirect
	POST /admin/finalize-selections -> replace the selection registry
	POST /admin/remove-team(s-batch)
	POST /admin/reset-logins     -> full system reset
	GET  /admin/export           -> ranked results CSV

All admin routes except login require the session cookie.

# Error Conventions

Malformed requests get 400, missing auth 401, unknown teams or missing
question files 404, storage failures 500. Business-rule refusals (bad
credentials, already participated, team not found on removal) return 200
with success:false per middleware.Refused.
*/
package handlers
