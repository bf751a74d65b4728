package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("eyJhbGciOiJIUzI1NiJ9.payload.sig")

	if !strings.HasPrefix(fp, "sha256:") {
		t.Errorf("fingerprint %q missing sha256 prefix", fp)
	}
	if len(fp) != len("sha256:")+12 {
		t.Errorf("fingerprint length = %d", len(fp))
	}
	if strings.Contains(fp, "eyJ") {
		t.Errorf("fingerprint %q leaks token material", fp)
	}

	// Stable for the same input, distinct for different inputs.
	if Fingerprint("a") != Fingerprint("a") {
		t.Error("fingerprint not deterministic")
	}
	if Fingerprint("a") == Fingerprint("b") {
		t.Error("distinct tokens share a fingerprint")
	}
}

func TestFingerprint_Empty(t *testing.T) {
	if got := Fingerprint(""); got != "sha256:-" {
		t.Errorf("Fingerprint(\"\") = %q", got)
	}
}

func TestPeek(t *testing.T) {
	exp := time.Now().Add(5 * time.Minute).Truncate(time.Second)
	tok := signedToken(t, jwt.MapClaims{
		"sub":      "42",
		"username": "alice",
		"exp":      exp.Unix(),
	})

	claims, err := Peek(tok)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if claims.Subject != "42" {
		t.Errorf("subject = %q, want %q", claims.Subject, "42")
	}
	if claims.Username != "alice" {
		t.Errorf("username = %q, want %q", claims.Username, "alice")
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Errorf("expiresAt = %v, want %v", claims.ExpiresAt, exp)
	}
	if claims.Expired(time.Now()) {
		t.Error("token should not be expired yet")
	}
	if !claims.Expired(exp.Add(time.Minute)) {
		t.Error("token should be expired after exp")
	}
}

func TestPeek_NoExpiry(t *testing.T) {
	claims, err := Peek(signedToken(t, jwt.MapClaims{"username": "bob"}))
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if !claims.ExpiresAt.IsZero() {
		t.Errorf("expiresAt = %v, want zero", claims.ExpiresAt)
	}
	if claims.Expired(time.Now()) {
		t.Error("token without exp must not report expired")
	}
}

func TestPeek_NotAJWT(t *testing.T) {
	if _, err := Peek("opaque-token"); err == nil {
		t.Error("expected error for non-JWT token")
	}
}
