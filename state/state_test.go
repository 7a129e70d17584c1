package state

import (
	"testing"
	"time"

	"github.com/danielhkuo/quizhost/models"
)

func TestSetRound(t *testing.T) {
	app := New(time.Minute)

	if app.Round() != models.Round1 {
		t.Errorf("Expected initial round %q, got %q", models.Round1, app.Round())
	}

	if err := app.SetRound(models.Round2); err != nil {
		t.Fatalf("SetRound(round2) failed: %v", err)
	}
	if app.Round() != models.Round2 {
		t.Errorf("Expected round2, got %q", app.Round())
	}

	if err := app.SetRound("round9"); err != ErrInvalidRound {
		t.Errorf("Expected ErrInvalidRound, got %v", err)
	}
	if app.Round() != models.Round2 {
		t.Error("Invalid SetRound must not change the active round")
	}
}

func TestSetRoundHook(t *testing.T) {
	app := New(time.Minute)

	var got string
	app.OnRoundChange(func(round string) { got = round })

	if err := app.SetRound(models.Round3); err != nil {
		t.Fatalf("SetRound failed: %v", err)
	}
	if got != models.Round3 {
		t.Errorf("Expected hook to see round3, got %q", got)
	}
}

func TestFlagExpiry(t *testing.T) {
	app := New(30 * time.Millisecond)

	if err := app.SetFlag(models.FlagStartQuiz); err != nil {
		t.Fatalf("SetFlag failed: %v", err)
	}
	if !app.Flag(models.FlagStartQuiz) {
		t.Fatal("Flag should be armed immediately after SetFlag")
	}

	time.Sleep(80 * time.Millisecond)
	if app.Flag(models.FlagStartQuiz) {
		t.Error("Flag should have expired")
	}
}

func TestFlagRearmResetsTimer(t *testing.T) {
	app := New(60 * time.Millisecond)

	if err := app.SetFlag(models.FlagResultsPublished); err != nil {
		t.Fatalf("SetFlag failed: %v", err)
	}
	time.Sleep(40 * time.Millisecond)
	// Re-arm before the first timer fires: expiry must be measured from
	// this call, not the first one.
	if err := app.SetFlag(models.FlagResultsPublished); err != nil {
		t.Fatalf("SetFlag re-arm failed: %v", err)
	}

	time.Sleep(40 * time.Millisecond)
	if !app.Flag(models.FlagResultsPublished) {
		t.Error("Flag expired on the first timer; re-arm should have reset it")
	}

	time.Sleep(40 * time.Millisecond)
	if app.Flag(models.FlagResultsPublished) {
		t.Error("Flag should have expired after the re-armed TTL")
	}
}

func TestSetFlagUnknown(t *testing.T) {
	app := New(time.Minute)
	if err := app.SetFlag("no-such-flag"); err != ErrUnknownFlag {
		t.Errorf("Expected ErrUnknownFlag, got %v", err)
	}
	if app.Flag("no-such-flag") {
		t.Error("Unknown flag must read false")
	}
}

func TestReset(t *testing.T) {
	app := New(time.Minute)

	app.SetRound(models.Round3)
	app.SetFlag(models.FlagStartQuiz)
	app.SetFlag(models.FlagForceRedirect)

	app.Reset()

	if app.Round() != models.Round1 {
		t.Errorf("Expected round1 after reset, got %q", app.Round())
	}
	st := app.Status()
	if st.StartQuiz || st.ForceRedirect || st.ResultsPublished {
		t.Errorf("Expected all flags clear after reset, got %+v", st)
	}
}

func TestStatusSnapshot(t *testing.T) {
	app := New(time.Minute)
	app.SetRound(models.Round2)
	app.SetFlag(models.FlagResultsPublished)

	st := app.Status()
	if st.ActiveRound != models.Round2 {
		t.Errorf("Expected activeRound round2, got %q", st.ActiveRound)
	}
	if !st.ResultsPublished || st.StartQuiz || st.ForceRedirect {
		t.Errorf("Unexpected flag snapshot: %+v", st)
	}
}
