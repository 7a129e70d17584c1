// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"log/slog"

	"github.com/danielhkuo/quizhost/models"
	"github.com/danielhkuo/quizhost/store"
)

// Selection registry: the admin-curated list of teams admitted to
// subsequent rounds. Consulted by Login on re-login and kept consistent
// with batch removal.

// readSelected expects t.mu to be held.
func (t *Tracker) readSelected() models.SelectedTeamsDoc {
	doc := models.SelectedTeamsDoc{SelectedTeams: []string{}}
	t.store.Read(store.KeySelectedTeams, &doc)
	return doc
}

// Finalize replaces the selection registry wholesale. Identifiers are not
// validated against the team registry.
func (t *Tracker) Finalize(teamIDs []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if teamIDs == nil {
		teamIDs = []string{}
	}
	if !t.store.Write(store.KeySelectedTeams, models.SelectedTeamsDoc{SelectedTeams: teamIDs}) {
		return ErrStorage
	}
	slog.Info("selections finalized", "count", len(teamIDs))
	return nil
}

// IsSelected reports whether the team is admitted to subsequent rounds.
func (t *Tracker) IsSelected(teamID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isSelectedLocked(teamID)
}

func (t *Tracker) isSelectedLocked(teamID string) bool {
	for _, id := range t.readSelected().SelectedTeams {
		if id == teamID {
			return true
		}
	}
	return false
}

// SelectedTeams returns the registry contents in finalize order.
func (t *Tracker) SelectedTeams() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readSelected().SelectedTeams
}

// removeSelectedLocked filters the given identifiers out of the selection
// registry. Expects t.mu to be held; returns false on a failed write.
func (t *Tracker) removeSelectedLocked(teamIDs []string) bool {
	drop := make(map[string]bool, len(teamIDs))
	for _, id := range teamIDs {
		drop[id] = true
	}

	doc := t.readSelected()
	kept := doc.SelectedTeams[:0]
	changed := false
	for _, id := range doc.SelectedTeams {
		if drop[id] {
			changed = true
			continue
		}
		kept = append(kept, id)
	}
	if !changed {
		return true
	}
	doc.SelectedTeams = kept
	return t.store.Write(store.KeySelectedTeams, doc)
}
