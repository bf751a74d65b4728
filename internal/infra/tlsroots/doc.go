// Package tlsroots provides TLS root certificate management for the
// HTTPS connection to the backend.
//
// It loads system roots, optionally extends them with a private CA bundle
// (the ca_bundle configuration key), and builds the client tls.Config.
// The insecure switch disables verification entirely for lab deployments
// fronted by self-signed certificates.
package tlsroots
