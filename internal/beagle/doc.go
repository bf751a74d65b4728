// Package beagle defines the wire-level vocabulary of the Beagle backend:
// the endpoint catalog, list-envelope and resource shapes, and helpers for
// the CWL-style run output trees consumed by the access commands.
//
// The package is intentionally thin. Commands talk to the backend through
// internal/cli/connection and only reach for the typed views here when they
// need to inspect a response (pagination cursors, pipeline lookup, output
// tree traversal); everything else is passed through as raw JSON.
package beagle
