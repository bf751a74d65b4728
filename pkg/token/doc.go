// Package token provides client-side helpers for the bearer tokens issued
// by the Beagle backend.
//
// The backend signs and validates its own JWTs; this package never
// verifies a signature. It offers two things:
//
//   - Fingerprint: a short stable digest of a token, safe to log in place
//     of the credential itself.
//   - Peek: an unverified read of the JWT payload (expiry, subject) for
//     debug logging and expiry hints.
//
// Security:
//
//   - Raw tokens must never be logged; log Fingerprint output instead.
//   - Peek output is advisory only and must not gate authorization.
package token
