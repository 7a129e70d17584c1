// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// FileStore keeps each document in its own <key>.json file under a data
// directory. Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated document behind.
type FileStore struct {
	dir string
}

// OpenFile creates the data directory if needed and returns a FileStore
// over it.
func OpenFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Read(key string, out any) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("store read failed, using default", "key", key, "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Error("store document unparsable, using default", "key", key, "error", err)
	}
}

func (s *FileStore) Write(key string, v any) bool {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("store marshal failed", "key", key, "error", err)
		return false
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		slog.Error("store write failed", "key", key, "error", err)
		return false
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		slog.Error("store rename failed", "key", key, "error", err)
		os.Remove(tmp)
		return false
	}
	return true
}

func (s *FileStore) Close() error {
	return nil
}
