// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the shared domain, request, and response types for
the quizhost API, plus the round and signal-flag enumerations.

# Domain Types

  - Session: the login tracker's per-team mutable record
  - ScoreEntry: one submission in the score document, keyed by team+round
  - Answer: one entry of a detailed answer list (opaque to the server)

# Persisted Documents

The document shapes stored through the store package:

  - LoginTrackerDoc  (key "login-tracker")
  - SelectedTeamsDoc (key "selected-teams")
  - ScoresDoc        (key "scores")

# Question-Set Assignment

AssignQuestionSet is the single deterministic mapping from a registration
number and round to a question-set tag ("round1", "round2a", "round2b", ...).
Both the login tracker and the quiz manager go through it, so a team's set
never changes between login and question delivery within a round.
*/
package models
