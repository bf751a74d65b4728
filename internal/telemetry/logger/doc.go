// Package logger provides structured logging for beagle-cli.
//
// It wraps log/slog:
//
//   - logger.go: Logger interface, configuration, slog handler setup
//   - context.go: context propagation for the per-invocation request ID
//   - redact.go: sensitive data redaction (JWT values, credential keys)
//
// The CLI logs to stderr so command results on stdout stay clean for
// scripting. Default level is warn; --verbose lifts it to debug.
package logger
