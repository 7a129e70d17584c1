// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the persistence layer: named JSON documents with
safe defaulting on read and fail-closed writes.

# Contract

Reads never fail from the caller's perspective. The caller pre-fills the
destination with a default value; a missing or unparsable document leaves
the default in place and logs the problem:

	doc := models.LoginTrackerDoc{LoggedInTeams: []models.Session{}}
	st.Read(store.KeyLoginTracker, &doc)

Writes serialize pretty-printed JSON and return false on any failure.
Callers must check the return before assuming durability.

# Backends

  - FileStore: one <key>.json per document under a data directory, written
    via temp-file rename. The default.
  - SQLStore: a single document(key, body, updated_at) table over the
    embedded sqlite driver (modernc.org/sqlite) or postgres (lib/pq),
    selected by configuration.

Neither backend locks across keys: two concurrent writers to the same key
race and the last write wins. Acceptable at classroom scale only.
*/
package store
