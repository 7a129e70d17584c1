// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/quizhost/cliparse"
	"github.com/danielhkuo/quizhost/quiz"
	"github.com/danielhkuo/quizhost/registry"
	"github.com/danielhkuo/quizhost/state"
	"github.com/danielhkuo/quizhost/store"
	"github.com/danielhkuo/quizhost/tracker"
)

// SetupStore returns a file-backed store rooted in a fresh temp dir.
func SetupStore(t *testing.T) store.Store {
	t.Helper()

	st, err := store.OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// GetTestConfig returns a standard test configuration with temp dirs.
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	return cliparse.Config{
		Port:          3000,
		StoreType:     cliparse.StoreFile,
		DataDir:       t.TempDir(),
		QuestionDir:   t.TempDir(),
		AdminPassword: "test-admin-password",
		SessionSalt:   "test-session-salt",
		SignalTTL:     50 * time.Millisecond,
	}
}

// Env is the full set of components wired over a temp-dir store, ready
// for handler and integration tests.
type Env struct {
	Cfg     cliparse.Config
	Store   store.Store
	App     *state.App
	Tracker *tracker.Tracker
	Quiz    *quiz.Manager
}

// SetupEnv wires store, state, tracker, and quiz manager the way main.go
// does, over temp directories.
func SetupEnv(t *testing.T) *Env {
	t.Helper()

	cfg := GetTestConfig(t)
	st, err := store.OpenFile(cfg.DataDir)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	app := state.New(cfg.SignalTTL)
	trk := tracker.New(st, app)
	qm := quiz.New(st, trk, app, cfg.QuestionDir)

	return &Env{Cfg: cfg, Store: st, App: app, Tracker: trk, Quiz: qm}
}

// RegisterTeam exposes a team credential for the duration of the test.
func RegisterTeam(t *testing.T, teamID, regNum string) {
	t.Helper()
	t.Setenv(registry.EnvPrefix+teamID, regNum)
}

// WriteQuestionFile drops a minimal question document for the given set
// tag into the env's question dir and returns its contents.
func (e *Env) WriteQuestionFile(t *testing.T, tag string) []byte {
	t.Helper()

	doc := []byte(`{"questions":[{"question":"placeholder for ` + tag + `"}]}`)
	path := filepath.Join(e.Cfg.QuestionDir, tag+".json")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("Failed to write question file %s: %v", path, err)
	}
	return doc
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
