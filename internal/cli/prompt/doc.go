// Package prompt collects interactive line input for beagle-cli.
//
// The authenticator and the pagination loop both suspend on a line of
// user input; this package is that suspension point, made explicit so
// tests can drive it with scripted readers. Password input is not echoed
// when standard input is a terminal and falls back to a plain line read
// otherwise, which keeps piped invocations working.
package prompt
