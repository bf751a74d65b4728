// Package metric provides Prometheus metrics for beagle-cli.
//
// A CLI process has no scrape endpoint, so metrics are collected into a
// private registry and, when --debug is set, written to stderr in the
// Prometheus text exposition format when the invocation ends. This keeps
// per-endpoint request counts, latencies, and authentication events
// observable without any serving surface.
package metric
