// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"os"
	"strings"
)

// EnvPrefix is the recognized credential variable prefix:
// TEAM_ID_<teamId>=<secret>.
const EnvPrefix = "TEAM_ID_"

// AllTeams scans the environment for credential variables and returns the
// team-id to secret mapping. Derived fresh on every call; the environment
// is read-only at runtime so callers may cache within a request.
func AllTeams() map[string]string {
	teams := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		id, ok := strings.CutPrefix(name, EnvPrefix)
		if !ok || id == "" {
			continue
		}
		teams[id] = value
	}
	return teams
}

// ValidTeamID reports whether id parses against the registry's variable
// name format. Identifiers that fail this check must be rejected before
// any record mutation.
func ValidTeamID(id string) bool {
	if id == "" {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

// Lookup returns the expected secret for a team, if registered.
func Lookup(id string) (string, bool) {
	secret, ok := AllTeams()[id]
	return secret, ok
}
