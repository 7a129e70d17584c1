// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/quizhost/models"
	"github.com/danielhkuo/quizhost/registry"
	"github.com/danielhkuo/quizhost/state"
	"github.com/danielhkuo/quizhost/store"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAlreadyParticipated = errors.New("team has already participated")
	ErrNotFound            = errors.New("team not found")
	ErrStorage             = errors.New("storage failure")
)

// Tracker is the login state machine over the persistent store. Each team
// is either not logged in (no session record) or logged in with a session
// for some round. mu guards document access; the per-team locks serialize
// the whole login read-modify-write so two concurrent logins for one team
// cannot both pass the not-yet-logged-in check.
type Tracker struct {
	store store.Store
	app   *state.App

	mu sync.Mutex

	lmu   sync.Mutex
	locks map[string]*sync.Mutex
}

// New builds a Tracker and registers its round-change hook on app, so a
// round transition clears in-progress fields for selected teams.
func New(st store.Store, app *state.App) *Tracker {
	t := &Tracker{
		store: st,
		app:   app,
		locks: make(map[string]*sync.Mutex),
	}
	app.OnRoundChange(func(round string) {
		t.resetSelectedSessions()
	})
	return t
}

func (t *Tracker) teamLock(teamID string) *sync.Mutex {
	t.lmu.Lock()
	defer t.lmu.Unlock()
	l, ok := t.locks[teamID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[teamID] = l
	}
	return l
}

// readDoc and writeDoc expect t.mu to be held.

func (t *Tracker) readDoc() models.LoginTrackerDoc {
	doc := models.LoginTrackerDoc{LoggedInTeams: []models.Session{}}
	t.store.Read(store.KeyLoginTracker, &doc)
	return doc
}

func (t *Tracker) writeDoc(doc models.LoginTrackerDoc) bool {
	return t.store.Write(store.KeyLoginTracker, doc)
}

// Login validates credentials and transitions the team's session state.
//
// A team with no record gets a fresh session for the active round. A team
// with an existing record may log in again only if it is in the selection
// registry; its per-round fields are then reset and the login re-stamped.
// A recorded team outside the registry fails terminally with
// ErrAlreadyParticipated.
func (t *Tracker) Login(teamID, regNum string) (models.Session, error) {
	// Malformed identifiers must fail before any record mutation.
	if !registry.ValidTeamID(teamID) {
		return models.Session{}, ErrInvalidCredentials
	}
	secret, ok := registry.Lookup(teamID)
	if !ok || secret != regNum {
		return models.Session{}, ErrInvalidCredentials
	}

	l := t.teamLock(teamID)
	l.Lock()
	defer l.Unlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	doc := t.readDoc()
	round := t.app.Round()
	now := time.Now()

	for i := range doc.LoggedInTeams {
		if doc.LoggedInTeams[i].TeamID != teamID {
			continue
		}
		if !t.isSelectedLocked(teamID) {
			return models.Session{}, ErrAlreadyParticipated
		}

		// Selected team advancing to the next round: reset the mutable
		// per-round fields and re-stamp the login.
		s := &doc.LoggedInTeams[i]
		s.RegNum = regNum
		s.LoginTime = now
		s.QuizStartTime = nil
		s.EndTime = nil
		s.TimeTaken = nil
		score := 0
		s.Score = &score
		s.DetailedAnswers = nil
		tag := models.AssignQuestionSet(regNum, round)
		s.QuestionSet = &tag

		if !t.writeDoc(doc) {
			return models.Session{}, ErrStorage
		}
		slog.Info("team re-login", "team", teamID, "round", round, "question_set", tag)
		return *s, nil
	}

	score := 0
	tag := models.AssignQuestionSet(regNum, round)
	s := models.Session{
		TeamID:      teamID,
		RegNum:      regNum,
		LoginTime:   now,
		Score:       &score,
		QuestionSet: &tag,
	}
	doc.LoggedInTeams = append(doc.LoggedInTeams, s)
	if !t.writeDoc(doc) {
		return models.Session{}, ErrStorage
	}
	slog.Info("team login", "team", teamID, "round", round, "question_set", tag)
	return s, nil
}

// IsLoggedIn reports whether the team has a session record.
func (t *Tracker) IsLoggedIn(teamID string) bool {
	_, ok := t.Get(teamID)
	return ok
}

// Get returns the team's session record, if any.
func (t *Tracker) Get(teamID string) (models.Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	doc := t.readDoc()
	for _, s := range doc.LoggedInTeams {
		if s.TeamID == teamID {
			return s, true
		}
	}
	return models.Session{}, false
}

// Sessions returns all session records in login order.
func (t *Tracker) Sessions() []models.Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readDoc().LoggedInTeams
}

// Put upserts a session record by team identifier. Used by the quiz
// manager when a submission or live update lands.
func (t *Tracker) Put(s models.Session) bool {
	l := t.teamLock(s.TeamID)
	l.Lock()
	defer l.Unlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	doc := t.readDoc()
	for i := range doc.LoggedInTeams {
		if doc.LoggedInTeams[i].TeamID == s.TeamID {
			doc.LoggedInTeams[i] = s
			return t.writeDoc(doc)
		}
	}
	doc.LoggedInTeams = append(doc.LoggedInTeams, s)
	return t.writeDoc(doc)
}

// Remove deletes a team's session record and strips the team from the
// selection registry so the two stores stay consistent.
func (t *Tracker) Remove(teamID string) error {
	n, err := t.RemoveBatch([]string{teamID})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveBatch deletes every matching session record and strips the same
// identifiers from the selection registry. Returns how many records were
// deleted; identifiers with no record are skipped silently.
func (t *Tracker) RemoveBatch(teamIDs []string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	drop := make(map[string]bool, len(teamIDs))
	for _, id := range teamIDs {
		drop[id] = true
	}

	doc := t.readDoc()
	kept := doc.LoggedInTeams[:0]
	removed := 0
	for _, s := range doc.LoggedInTeams {
		if drop[s.TeamID] {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	doc.LoggedInTeams = kept

	if removed > 0 {
		if !t.writeDoc(doc) {
			return 0, ErrStorage
		}
	}
	if !t.removeSelectedLocked(teamIDs) {
		return 0, ErrStorage
	}

	slog.Info("teams removed", "count", removed)
	return removed, nil
}

// ResetAll clears every session record and the selection registry, then
// re-seeds the round controller to the initial round with all flags clear.
// Sequential writes with no rollback: on a failed write the prior state is
// reported unchanged to the caller.
func (t *Tracker) ResetAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.writeDoc(models.LoginTrackerDoc{LoggedInTeams: []models.Session{}}) {
		return ErrStorage
	}
	if !t.store.Write(store.KeySelectedTeams, models.SelectedTeamsDoc{SelectedTeams: []string{}}) {
		return ErrStorage
	}
	t.app.Reset()

	slog.Info("system reset")
	return nil
}

// resetSelectedSessions clears the in-progress per-round fields of every
// session whose team is in the selection registry. Invoked on round
// transitions so stale answers never leak into the new round.
func (t *Tracker) resetSelectedSessions() {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc := t.readDoc()
	changed := false
	for i := range doc.LoggedInTeams {
		s := &doc.LoggedInTeams[i]
		if !t.isSelectedLocked(s.TeamID) {
			continue
		}
		s.QuizStartTime = nil
		s.EndTime = nil
		s.TimeTaken = nil
		score := 0
		s.Score = &score
		s.DetailedAnswers = nil
		s.QuestionSet = nil
		changed = true
	}
	if changed && !t.writeDoc(doc) {
		slog.Error("failed to clear in-progress sessions on round change")
	}
}
