// Package main provides the entry point for beagle-cli.
//
// beagle-cli is the command-line client for the Beagle workflow and
// file-management service: it authenticates against the backend, keeps
// the session tokens and pagination cursors on disk between
// invocations, and exposes the backend's catalog as subcommands.
package main
