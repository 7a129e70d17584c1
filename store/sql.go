// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// SQLStore keeps documents in a single key/body table, over either the
// embedded sqlite driver or postgres. The body column holds the same
// pretty-printed JSON the file backend would write, so the two backends
// are interchangeable.
type SQLStore struct {
	db     *sql.DB
	driver string
}

const schema = `
CREATE TABLE IF NOT EXISTS document (
    key TEXT PRIMARY KEY,
    body TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// OpenSQL opens a document store over the named driver ("sqlite" or
// "postgres") and ensures the schema exists. Safe to call on an existing
// database.
func OpenSQL(driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s store ping failed: %w", driver, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create document table: %w", err)
	}
	return &SQLStore{db: db, driver: driver}, nil
}

func (s *SQLStore) Read(key string, out any) {
	query := "SELECT body FROM document WHERE key = ?"
	if s.driver == "postgres" {
		query = "SELECT body FROM document WHERE key = $1"
	}

	var body string
	err := s.db.QueryRow(query, key).Scan(&body)
	if err == sql.ErrNoRows {
		return
	}
	if err != nil {
		slog.Error("store read failed, using default", "key", key, "error", err)
		return
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		slog.Error("store document unparsable, using default", "key", key, "error", err)
	}
}

func (s *SQLStore) Write(key string, v any) bool {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("store marshal failed", "key", key, "error", err)
		return false
	}

	query := `
		INSERT INTO document (key, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`
	if s.driver == "postgres" {
		query = `
		INSERT INTO document (key, body, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`
	}

	if _, err := s.db.Exec(query, key, string(data), time.Now()); err != nil {
		slog.Error("store write failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
