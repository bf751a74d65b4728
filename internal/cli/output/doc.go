// Package output provides output formatting for beagle-cli.
//
// Backend responses are passed through as raw JSON and re-indented for
// readability, keeping the backend's own field order. The yaml format is
// an opt-in re-encoding; the explicit Table is used for local summaries
// such as the access link reports.
package output
