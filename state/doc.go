// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package state holds the process-wide round controller and signal flags as
an explicit App struct injected into handlers, not as globals.

The active round gates which question file a team receives. The three
signal flags (results-published, force-redirect, start-quiz) are transient:
an admin arms one and it clears itself after a configurable TTL, so a true
state is self-healing even if no unset call ever arrives. Re-arming a flag
before expiry resets its timer rather than stacking a second one.
*/
package state
