// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package registry resolves team credentials from the environment.
// Variables named TEAM_ID_<teamId>=<secret> (typically loaded from .env at
// startup) form the static team roster; the mapping is a pure function of
// the environment and is never mutated at runtime.
package registry
