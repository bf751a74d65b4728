// Package token provides client-side helpers for Beagle bearer tokens.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the unverified view of a JWT payload.
type Claims struct {
	Subject   string
	Username  string
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry lies in the past. Tokens
// without an exp claim are never considered expired here; the backend has
// the final say either way.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// Peek decodes a JWT payload without verifying its signature. It fails on
// anything that is not structurally a JWT.
func Peek(tok string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return nil, fmt.Errorf("token: decode claims: %w", err)
	}

	out := &Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if username, ok := claims["username"].(string); ok {
		out.Username = username
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
