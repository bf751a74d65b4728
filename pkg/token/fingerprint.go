// Package token provides client-side helpers for Beagle bearer tokens.
package token

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 12

// Fingerprint returns a short SHA-256 digest of a token, prefixed with
// "sha256:". It identifies a credential in logs without exposing it.
// The empty token maps to "sha256:-".
func Fingerprint(tok string) string {
	if tok == "" {
		return "sha256:-"
	}
	sum := sha256.Sum256([]byte(tok))
	return "sha256:" + hex.EncodeToString(sum[:])[:fingerprintLen]
}
