// Package auth gates every invocation behind a valid access token.
//
// The gate is a three-state machine. The stored access token is verified
// against the backend; on rejection the refresh token is spent on a new
// access token; if that also fails the user re-authenticates with
// credentials from the configuration or an interactive prompt. Success in
// any state persists the updated tokens to the session store before the
// command runs. A failed interactive login is the one fatal outcome, and
// the process exits non-zero.
package auth
