// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin session tokens and random identifiers.

Admin authentication is a shared password checked at POST /admin/login;
success issues a stateless nonce.signature cookie token, HMAC-signed under
the configured session salt. Validation recomputes the signature, so no
session storage is needed and restarting the server invalidates nothing.

This is deliberately classroom-grade: there is no expiry, rotation, or
per-admin identity.
*/
package auth
