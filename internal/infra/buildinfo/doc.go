// Package buildinfo provides build-time version information for
// beagle-cli, injected via ldflags at release time.
package buildinfo
