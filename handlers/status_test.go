package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quizhost/models"
	"github.com/danielhkuo/quizhost/testutil"
)

func TestStatus(t *testing.T) {
	env := testutil.SetupEnv(t)
	handler := NewStatusHandler(env.Tracker, env.App)

	env.App.SetRound(models.Round2)
	env.App.SetFlag(models.FlagStartQuiz)

	w := httptest.NewRecorder()
	handler.Status(w, testutil.MakeRequest("GET", "/api/status", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.StatusResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.ActiveRound != models.Round2 {
		t.Errorf("Expected round2, got %q", resp.ActiveRound)
	}
	if !resp.StartQuiz || resp.ResultsPublished || resp.ForceRedirect {
		t.Errorf("Unexpected flags: %+v", resp)
	}
}

func TestLoggedTeams(t *testing.T) {
	env := testutil.SetupEnv(t)
	testutil.RegisterTeam(t, "ALPHA", "1234564")
	handler := NewStatusHandler(env.Tracker, env.App)

	w := httptest.NewRecorder()
	handler.LoggedTeams(w, testutil.MakeRequest("GET", "/api/logged-teams", nil, nil))

	var resp models.LoggedTeamsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.TotalLoggedIn != 0 || len(resp.Teams) != 0 {
		t.Errorf("Expected empty tracker, got %+v", resp)
	}

	if _, err := env.Tracker.Login("ALPHA", "1234564"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	w = httptest.NewRecorder()
	handler.LoggedTeams(w, testutil.MakeRequest("GET", "/api/logged-teams", nil, nil))
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalLoggedIn != 1 || len(resp.Teams) != 1 || resp.Teams[0].TeamID != "ALPHA" {
		t.Errorf("Expected ALPHA listed, got %+v", resp)
	}
}

func TestSelectedTeams(t *testing.T) {
	env := testutil.SetupEnv(t)
	handler := NewStatusHandler(env.Tracker, env.App)

	if err := env.Tracker.Finalize([]string{"T1", "T2"}); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	w := httptest.NewRecorder()
	handler.SelectedTeams(w, testutil.MakeRequest("GET", "/api/selected-teams", nil, nil))

	var resp models.SelectedTeamsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.SelectedTeams) != 2 || resp.SelectedTeams[0] != "T1" {
		t.Errorf("Unexpected selected teams: %+v", resp.SelectedTeams)
	}
}

func TestFlagStatusEndpoints(t *testing.T) {
	env := testutil.SetupEnv(t)
	handler := NewStatusHandler(env.Tracker, env.App)

	env.App.SetFlag(models.FlagForceRedirect)

	tests := []struct {
		name   string
		serve  http.HandlerFunc
		flag   string
		expect bool
	}{
		{"results off", handler.ResultsStatus, models.FlagResultsPublished, false},
		{"redirect on", handler.RedirectStatus, models.FlagForceRedirect, true},
		{"start-quiz off", handler.StartQuizStatus, models.FlagStartQuiz, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.serve(w, testutil.MakeRequest("GET", "/api/flag-status", nil, nil))

			var resp models.FlagStatusResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Flag != tt.flag || resp.Active != tt.expect {
				t.Errorf("Expected %s=%v, got %+v", tt.flag, tt.expect, resp)
			}
		})
	}
}
