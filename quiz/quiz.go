// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quizhost/models"
	"github.com/danielhkuo/quizhost/state"
	"github.com/danielhkuo/quizhost/store"
	"github.com/danielhkuo/quizhost/tracker"
)

var (
	ErrNotLoggedIn     = errors.New("team is not logged in")
	ErrNotFound        = errors.New("team not found")
	ErrMissingResource = errors.New("question file not found")
	ErrStorage         = errors.New("storage failure")
)

// Manager orchestrates question delivery, answer submission, and score
// recording. mu serializes read-modify-write cycles on the scores
// document; session updates go through the tracker's own locking.
type Manager struct {
	store       store.Store
	tracker     *tracker.Tracker
	app         *state.App
	questionDir string

	mu sync.Mutex
}

func New(st store.Store, t *tracker.Tracker, app *state.App, questionDir string) *Manager {
	return &Manager{store: st, tracker: t, app: app, questionDir: questionDir}
}

// Questions returns the raw question document for the team's assigned set
// in the active round. The assignment is deterministic, so repeated calls
// within a round always serve the same file.
func (m *Manager) Questions(teamID string) ([]byte, error) {
	s, ok := m.tracker.Get(teamID)
	if !ok {
		return nil, ErrNotLoggedIn
	}

	tag := models.AssignQuestionSet(s.RegNum, m.app.Round())
	path := filepath.Join(m.questionDir, tag+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingResource, tag)
		}
		slog.Error("failed to read question file", "path", path, "error", err)
		return nil, err
	}
	return data, nil
}

// Submit records a quiz submission. The score entry is keyed by team and
// round: a repeat submission replaces the earlier entry in place instead
// of appending a duplicate. Once the score document is durable the call
// succeeds; updating the team's session record afterwards is best-effort
// and a missing session or failed session write is only logged.
func (m *Manager) Submit(req models.SubmitQuizRequest) error {
	round := m.app.Round()
	now := time.Now()

	m.mu.Lock()
	doc := models.ScoresDoc{Entries: []models.ScoreEntry{}}
	m.store.Read(store.KeyScores, &doc)

	entry := models.ScoreEntry{
		ID:              uuid.New().String(),
		TeamID:          req.TeamID,
		Round:           round,
		Score:           req.Score,
		TimeTaken:       req.TimeTaken,
		QuizStartTime:   req.QuizStartTime,
		SubmittedAt:     now,
		DetailedAnswers: req.DetailedAnswers,
	}

	replaced := false
	for i := range doc.Entries {
		if doc.Entries[i].TeamID == req.TeamID && doc.Entries[i].Round == round {
			entry.ID = doc.Entries[i].ID
			doc.Entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Entries = append(doc.Entries, entry)
	}

	ok := m.store.Write(store.KeyScores, doc)
	m.mu.Unlock()
	if !ok {
		return ErrStorage
	}
	slog.Info("submission recorded", "team", req.TeamID, "round", round,
		"score", req.Score, "replaced", replaced)

	s, found := m.tracker.Get(req.TeamID)
	if !found {
		slog.Warn("submission for team with no session record", "team", req.TeamID)
		return nil
	}
	score := req.Score
	s.Score = &score
	end := now
	s.EndTime = &end
	taken := req.TimeTaken
	s.TimeTaken = &taken
	s.QuizStartTime = req.QuizStartTime
	s.DetailedAnswers = req.DetailedAnswers
	if !m.tracker.Put(s) {
		slog.Error("failed to update session after submission", "team", req.TeamID)
	}
	return nil
}

// LiveUpdate overwrites a team's in-progress answer list without marking
// completion. Fails with ErrNotFound when the team has no session record.
func (m *Manager) LiveUpdate(teamID string, answers []models.Answer) error {
	s, ok := m.tracker.Get(teamID)
	if !ok {
		return ErrNotFound
	}
	s.DetailedAnswers = answers
	if !m.tracker.Put(s) {
		return ErrStorage
	}
	return nil
}

// Scores returns the score document entries in recorded order.
func (m *Manager) Scores() []models.ScoreEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := models.ScoresDoc{Entries: []models.ScoreEntry{}}
	m.store.Read(store.KeyScores, &doc)
	return doc.Entries
}

// Ranked returns all score entries in ranking order.
func (m *Manager) Ranked() []models.ScoreEntry {
	return Rank(m.Scores())
}

// Rank sorts score entries: higher score first, then lower time taken,
// then earlier submission. The input slice is not modified.
func Rank(entries []models.ScoreEntry) []models.ScoreEntry {
	ranked := make([]models.ScoreEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].TimeTaken != ranked[j].TimeTaken {
			return ranked[i].TimeTaken < ranked[j].TimeTaken
		}
		return ranked[i].SubmittedAt.Before(ranked[j].SubmittedAt)
	})
	return ranked
}
