// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tracker implements the per-team login state machine and the
selection registry over the persistent store.

# State Machine

Each team is NotLoggedIn (no session record) or LoggedIn for some round:

	Login (fresh team)      NotLoggedIn -> LoggedIn(current round)
	Login (selected team)   LoggedIn(N) -> LoggedIn(N+1), per-round fields reset
	Login (unselected team) rejected with ErrAlreadyParticipated, terminal
	Remove / ResetAll       LoggedIn -> NotLoggedIn

Credential checks happen against the registry package before any record is
touched, so invalid or malformed logins never cause partial writes.

# Concurrency

Login holds a per-team mutex across its whole read-modify-write, so two
concurrent logins for the same team serialize and exactly one can create
the session. A tracker-wide mutex guards document access for cross-team
operations. The store itself remains last-write-wins.

# Consistency

Remove and RemoveBatch strip the same identifiers from the selection
registry in the same call. ResetAll clears both documents and re-seeds the
round controller; its writes are sequential with no rollback, a documented
limitation of the file-backed store.
*/
package tracker
