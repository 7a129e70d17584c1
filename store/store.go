// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

// Document keys used by the application.
const (
	KeyLoginTracker  = "login-tracker"
	KeySelectedTeams = "selected-teams"
	KeyScores        = "scores"
)

// Store is the persistence contract: named JSON documents with safe
// defaulting on read. There is no cross-key locking; concurrent writers
// to the same key race and the last write wins.
type Store interface {
	// Read loads the document under key into out. Callers pre-fill out
	// with the default value: a missing, unparsable, or unreadable
	// document leaves out unchanged (the failure is logged, never
	// returned), so reads cannot fail from the caller's perspective.
	Read(key string, out any)

	// Write persists v under key as pretty-printed JSON. A false return
	// means the document may not be durable; callers must check it
	// before reporting success.
	Write(key string, v any) bool

	Close() error
}
