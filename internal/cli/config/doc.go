// Package config provides the invocation configuration for beagle-cli.
//
// Configuration is assembled once at process start from three layers,
// lowest to highest precedence: the optional YAML file at
// ~/.beagle/config.yaml, BEAGLE_-prefixed environment variables, and
// command-line flags. The resulting struct is passed by reference into
// the authenticator and the dispatcher; there is no ambient global.
package config
