// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package quiz orchestrates question delivery, answer submission, and score
recording on top of the login tracker, round controller, and store.

Question sets live as JSON files under the configured question directory,
named by round and set tag (round1.json, round2a.json, round2b.json, ...).
Which file a team receives follows models.AssignQuestionSet and the active
round, so delivery is deterministic within a round.

Submissions are idempotent keyed by team+round: resubmitting replaces the
team's entry for the round in the score document and overwrites the
session record's completion fields. A submission always succeeds once the
score document is durable, even when no session record exists for the
team; the missing session is logged, not surfaced.
*/
package quiz
