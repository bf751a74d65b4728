// Package logger provides structured logging for beagle-cli.
package logger

import (
	"log/slog"
	"strings"
)

// jwtPrefix is the base64url encoding of `{"`. Every JWT header starts
// with it, making it a reliable marker for token-shaped values.
const jwtPrefix = "eyJ"

// Sensitive key patterns that force full redaction of the value.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"credential",
	"auth",
	"bearer",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive checks if an attribute contains sensitive data
// and redacts it if necessary.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()

		// JWT-shaped values are masked regardless of the key.
		if looksLikeJWT(strVal) {
			return slog.String(a.Key, maskJWT(strVal))
		}

		keyLower := strings.ToLower(a.Key)
		for _, pattern := range sensitiveKeyPatterns {
			if strings.Contains(keyLower, pattern) {
				if strVal != "" {
					return slog.String(a.Key, redactedValue)
				}
				break
			}
		}
	}

	// Handle nested groups recursively.
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// looksLikeJWT reports whether a value is structurally a JWT: three
// dot-separated segments starting with the base64url object marker.
func looksLikeJWT(value string) bool {
	return strings.HasPrefix(value, jwtPrefix) && strings.Count(value, ".") == 2
}

// maskJWT reduces a JWT to a short hint: the marker plus the last few
// characters of the signature.
func maskJWT(value string) string {
	const tail = 4
	if len(value) <= tail {
		return jwtPrefix + "***"
	}
	return jwtPrefix + "***" + value[len(value)-tail:]
}

// RedactString manually redacts a string value. Use this when a value must
// be sanitized before it reaches a non-logging sink (e.g. diagnostics).
func RedactString(value string) string {
	if looksLikeJWT(value) {
		return maskJWT(value)
	}
	return value
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
