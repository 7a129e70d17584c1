// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidToken = errors.New("invalid session token")

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateSessionToken creates a signed admin session token of the form
// nonce.signature, where the signature is an HMAC of the nonce under the
// configured salt. Tokens are stateless and verifiable without storage.
func GenerateSessionToken(salt string) (string, error) {
	nonce, err := GenerateID(16)
	if err != nil {
		return "", err
	}
	return nonce + "." + sign(nonce, salt), nil
}

// ValidateSessionToken checks that the token was issued under the salt.
func ValidateSessionToken(token, salt string) error {
	nonce, sig, ok := strings.Cut(token, ".")
	if !ok || nonce == "" {
		return ErrInvalidToken
	}
	expected := sign(nonce, salt)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return ErrInvalidToken
	}
	return nil
}

func sign(nonce, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(nonce))
	// URL-safe base64 and trim padding for a cleaner cookie value
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}

// ConstantTimeEquals compares two secrets without leaking length-adjusted
// timing. Used for the admin password check.
func ConstantTimeEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
