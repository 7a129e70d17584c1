package quiz

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/quizhost/models"
	"github.com/danielhkuo/quizhost/registry"
	"github.com/danielhkuo/quizhost/state"
	"github.com/danielhkuo/quizhost/store"
	"github.com/danielhkuo/quizhost/tracker"
)

func setupManager(t *testing.T) (*Manager, *tracker.Tracker, *state.App, string) {
	t.Helper()

	st, err := store.OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	app := state.New(time.Minute)
	trk := tracker.New(st, app)
	qdir := t.TempDir()
	return New(st, trk, app, qdir), trk, app, qdir
}

func writeQuestions(t *testing.T, dir, tag string) []byte {
	t.Helper()
	doc := []byte(`{"questions":[{"question":"` + tag + ` q1"}]}`)
	if err := os.WriteFile(filepath.Join(dir, tag+".json"), doc, 0o644); err != nil {
		t.Fatalf("Failed to write question file: %v", err)
	}
	return doc
}

func TestAssignQuestionSet(t *testing.T) {
	tests := []struct {
		regNum string
		round  string
		want   string
	}{
		{"1234564", models.Round2, "round2a"}, // even last digit -> set a
		{"1234567", models.Round2, "round2b"}, // odd last digit -> set b
		{"1234564", models.Round3, "round3a"},
		{"1234567", models.Round3, "round3b"},
		{"1234567", models.Round1, "round1"}, // round1 ignores parity
		{"1234564", models.Round1, "round1"},
		{"regX", models.Round2, "round2a"}, // no digits falls to set a
	}

	for _, tt := range tests {
		if got := models.AssignQuestionSet(tt.regNum, tt.round); got != tt.want {
			t.Errorf("AssignQuestionSet(%q, %q) = %q, want %q", tt.regNum, tt.round, got, tt.want)
		}
	}

	// Deterministic across repeated calls
	for i := 0; i < 5; i++ {
		if got := models.AssignQuestionSet("1234567", models.Round2); got != "round2b" {
			t.Fatalf("Assignment not deterministic: got %q on call %d", got, i)
		}
	}
}

func TestQuestionsRequiresLogin(t *testing.T) {
	m, _, _, _ := setupManager(t)

	if _, err := m.Questions("GHOST"); err != ErrNotLoggedIn {
		t.Errorf("Expected ErrNotLoggedIn, got %v", err)
	}
}

func TestQuestionsMissingFile(t *testing.T) {
	m, trk, app, _ := setupManager(t)
	t.Setenv(registry.EnvPrefix+"ALPHA", "1234567")

	if _, err := trk.Login("ALPHA", "1234567"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	app.SetRound(models.Round2)

	if _, err := m.Questions("ALPHA"); !errors.Is(err, ErrMissingResource) {
		t.Errorf("Expected ErrMissingResource, got %v", err)
	}
}

func TestQuestionsServesAssignedSet(t *testing.T) {
	m, trk, app, qdir := setupManager(t)
	t.Setenv(registry.EnvPrefix+"ALPHA", "1234567")

	app.SetRound(models.Round2)
	want := writeQuestions(t, qdir, "round2b")
	writeQuestions(t, qdir, "round2a")

	if _, err := trk.Login("ALPHA", "1234567"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	got, err := m.Questions("ALPHA")
	if err != nil {
		t.Fatalf("Questions failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected round2b document, got %s", got)
	}
}

func TestSubmitIdempotentPerRound(t *testing.T) {
	m, trk, _, _ := setupManager(t)
	t.Setenv(registry.EnvPrefix+"ALPHA", "1234564")

	if _, err := trk.Login("ALPHA", "1234564"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	req := models.SubmitQuizRequest{
		TeamID:    "ALPHA",
		Score:     6,
		TimeTaken: 120000,
		DetailedAnswers: []models.Answer{
			{Question: "q1", Selected: "a", IsCorrect: true},
		},
	}
	if err := m.Submit(req); err != nil {
		t.Fatalf("First submit failed: %v", err)
	}

	req.Score = 8
	if err := m.Submit(req); err != nil {
		t.Fatalf("Second submit failed: %v", err)
	}

	entries := m.Scores()
	if len(entries) != 1 {
		t.Fatalf("Expected one entry for team+round, got %d", len(entries))
	}
	if entries[0].Score != 8 {
		t.Errorf("Expected replaced entry score 8, got %d", entries[0].Score)
	}

	s, ok := trk.Get("ALPHA")
	if !ok {
		t.Fatal("Session record missing after submit")
	}
	if s.Score == nil || *s.Score != 8 {
		t.Errorf("Expected session score 8, got %v", s.Score)
	}
	if s.EndTime == nil {
		t.Error("Expected non-nil end time after submit")
	}
	if s.TimeTaken == nil || *s.TimeTaken != 120000 {
		t.Errorf("Expected timeTaken 120000, got %v", s.TimeTaken)
	}
}

func TestSubmitWithoutSessionStillRecorded(t *testing.T) {
	m, trk, _, _ := setupManager(t)

	err := m.Submit(models.SubmitQuizRequest{TeamID: "GHOST", Score: 3, TimeTaken: 1000})
	if err != nil {
		t.Fatalf("Submit without session must succeed, got %v", err)
	}

	if len(m.Scores()) != 1 {
		t.Error("Submission must land in the score record even without a session")
	}
	if trk.IsLoggedIn("GHOST") {
		t.Error("Submit must not create a session record")
	}
}

func TestSubmitSeparateRounds(t *testing.T) {
	m, trk, app, _ := setupManager(t)
	t.Setenv(registry.EnvPrefix+"ALPHA", "1234564")

	if _, err := trk.Login("ALPHA", "1234564"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := m.Submit(models.SubmitQuizRequest{TeamID: "ALPHA", Score: 5, TimeTaken: 1000}); err != nil {
		t.Fatalf("round1 submit failed: %v", err)
	}

	app.SetRound(models.Round2)
	if err := m.Submit(models.SubmitQuizRequest{TeamID: "ALPHA", Score: 9, TimeTaken: 2000}); err != nil {
		t.Fatalf("round2 submit failed: %v", err)
	}

	entries := m.Scores()
	if len(entries) != 2 {
		t.Errorf("Submissions in different rounds must both be kept, got %d entries", len(entries))
	}
}

func TestLiveUpdate(t *testing.T) {
	m, trk, _, _ := setupManager(t)
	t.Setenv(registry.EnvPrefix+"ALPHA", "1234564")

	if err := m.LiveUpdate("ALPHA", nil); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound before login, got %v", err)
	}

	if _, err := trk.Login("ALPHA", "1234564"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	answers := []models.Answer{{Question: "q1", Selected: "b"}}
	if err := m.LiveUpdate("ALPHA", answers); err != nil {
		t.Fatalf("LiveUpdate failed: %v", err)
	}

	s, _ := trk.Get("ALPHA")
	if len(s.DetailedAnswers) != 1 || s.DetailedAnswers[0].Selected != "b" {
		t.Errorf("Expected live answers persisted, got %+v", s.DetailedAnswers)
	}
	if s.EndTime != nil || s.TimeTaken != nil {
		t.Error("LiveUpdate must not mark completion")
	}
}

func TestRank(t *testing.T) {
	base := time.Now()
	entries := []models.ScoreEntry{
		{TeamID: "LOW", Score: 3, TimeTaken: 1000, SubmittedAt: base},
		{TeamID: "SLOW", Score: 8, TimeTaken: 9000, SubmittedAt: base},
		{TeamID: "FAST", Score: 8, TimeTaken: 2000, SubmittedAt: base},
		{TeamID: "LATE", Score: 8, TimeTaken: 2000, SubmittedAt: base.Add(time.Minute)},
	}

	ranked := Rank(entries)
	order := []string{"FAST", "LATE", "SLOW", "LOW"}
	for i, want := range order {
		if ranked[i].TeamID != want {
			t.Errorf("rank %d: expected %s, got %s", i+1, want, ranked[i].TeamID)
		}
	}

	// Input order untouched
	if entries[0].TeamID != "LOW" {
		t.Error("Rank must not modify its input")
	}
}
