// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quizhost API server.

Quizhost is a quiz-administration backend: teams log in with credentials,
receive round-specific question sets, submit answers, and an admin drives
round progression, team selection, and result export.

# Starting the Server

The server reads a .env file if present, then environment variables or
CLI flags:

	ADMIN_PASSWORD=... SESSION_SALT=... go run main.go

Or with flags:

	go run main.go -p 3000 -store file -data ./data -questions ./questions

# Configuration

Required settings:

  - ADMIN_PASSWORD (--admin-password): shared admin password
  - SESSION_SALT (--session-salt): secret for admin session token HMAC

Optional settings:

  - PORT (-p): server port (default: 3000)
  - STORE_TYPE (-store): file, sqlite, or postgres (default: file)
  - DATA_DIR (-data): file-store directory (default: data)
  - DATABASE_URL (-d): sqlite path or postgres DSN for the sql backends
  - QUESTION_DIR (-questions): round question files (default: questions)
  - SIGNAL_TTL (-signal-ttl): signal flag auto-expiry (default: 3m)

Team credentials are TEAM_ID_<teamId>=<secret> environment variables,
typically kept in the .env file.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (login, questions, submit, status, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, admin session gate
  - models: Request/response and domain types
  - auth: Admin session token generation and validation
  - store: JSON document persistence (file, sqlite, or postgres)
  - registry: Team credential resolution from the environment
  - state: Round controller and self-expiring signal flags
  - tracker: Per-team login state machine and selection registry
  - quiz: Question delivery, submission, and score recording
  - cliparse: Configuration parsing

The quizctl command under cmd/ gives operators a terminal view of
standings and logged-in teams.

See package documentation for each component.
*/
package main
