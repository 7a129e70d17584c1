// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package state

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/quizhost/models"
)

var (
	ErrInvalidRound = errors.New("invalid round")
	ErrUnknownFlag  = errors.New("unknown signal flag")
)

// flagState tracks one signal flag and its expiry timer. gen guards
// against a stale timer callback clearing a flag that was re-armed after
// the callback was scheduled.
type flagState struct {
	on    bool
	gen   int
	timer *time.Timer
}

// App holds the process-wide round and signal-flag state. It is created
// once at startup and injected into whatever needs it; there are no
// package-level variables.
type App struct {
	mu    sync.Mutex
	round string
	ttl   time.Duration
	flags map[string]*flagState

	onRoundChange func(round string)
}

// New returns an App at its reset defaults: the initial round active and
// every flag clear. ttl is how long an armed flag stays true.
func New(ttl time.Duration) *App {
	a := &App{
		round: models.Round1,
		ttl:   ttl,
		flags: make(map[string]*flagState, len(models.Flags)),
	}
	for _, name := range models.Flags {
		a.flags[name] = &flagState{}
	}
	return a
}

// OnRoundChange registers a hook invoked after every successful SetRound,
// outside the state lock. Used by the login tracker to clear in-progress
// session fields for selected teams so a round transition does not leak
// stale answers.
func (a *App) OnRoundChange(fn func(round string)) {
	a.mu.Lock()
	a.onRoundChange = fn
	a.mu.Unlock()
}

// Round returns the active round identifier.
func (a *App) Round() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.round
}

// SetRound switches the active round. Fails with ErrInvalidRound for
// identifiers outside the enumerated set.
func (a *App) SetRound(id string) error {
	if !models.ValidRound(id) {
		return ErrInvalidRound
	}

	a.mu.Lock()
	a.round = id
	fn := a.onRoundChange
	a.mu.Unlock()

	slog.Info("round changed", "round", id)
	if fn != nil {
		fn(id)
	}
	return nil
}

// SetFlag arms the named flag and schedules an automatic clear after the
// configured ttl. Re-arming before expiry resets the timer: the flag stays
// true until ttl elapses from the last call, never from the first.
func (a *App) SetFlag(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	fs, ok := a.flags[name]
	if !ok {
		return ErrUnknownFlag
	}

	if fs.timer != nil {
		fs.timer.Stop()
	}
	fs.on = true
	fs.gen++
	gen := fs.gen
	fs.timer = time.AfterFunc(a.ttl, func() {
		a.expire(name, gen)
	})

	slog.Info("signal flag armed", "flag", name, "ttl", a.ttl)
	return nil
}

// expire clears a flag when its timer fires, unless the flag was re-armed
// since the timer was scheduled.
func (a *App) expire(name string, gen int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	fs := a.flags[name]
	if fs == nil || fs.gen != gen {
		return
	}
	fs.on = false
	fs.timer = nil
	slog.Info("signal flag expired", "flag", name)
}

// Flag reports whether the named flag is currently armed. Unknown names
// read as false.
func (a *App) Flag(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	fs, ok := a.flags[name]
	return ok && fs.on
}

// Status returns a read-only snapshot of the round and all flags.
func (a *App) Status() models.StatusResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	return models.StatusResponse{
		ActiveRound:      a.round,
		ResultsPublished: a.flags[models.FlagResultsPublished].on,
		ForceRedirect:    a.flags[models.FlagForceRedirect].on,
		StartQuiz:        a.flags[models.FlagStartQuiz].on,
	}
}

// Reset restores the initial round and clears every flag, stopping any
// pending expiry timers. Part of the full system reset; does not invoke
// the round-change hook.
func (a *App) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.round = models.Round1
	for _, fs := range a.flags {
		if fs.timer != nil {
			fs.timer.Stop()
			fs.timer = nil
		}
		fs.on = false
		fs.gen++
	}
}
