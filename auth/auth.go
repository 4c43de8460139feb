// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// adminScope is the fixed HMAC input for the service-wide admin key.
const adminScope = "qotd-admin"

// GenerateAdminKey derives the admin key from the configured salt.
// Deterministic, so operators can re-derive it from the deployment secret
// instead of storing it anywhere.
func GenerateAdminKey(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(adminScope))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks a presented key against the derived one in
// constant time.
func ValidateAdminKey(adminKey, salt string) error {
	expected := GenerateAdminKey(salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}
