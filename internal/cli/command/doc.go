// Package command provides CLI command definitions for beagle-cli.
//
// Each verb (files, storage, file-types, file-group, run, etl,
// import-requests, tempo-mpgen, access) lives in its own file and maps
// its sub-actions onto dispatcher calls: one HTTP request per action,
// with identifiers substituted into item paths and options assembled
// into query parameters or JSON bodies. The root command owns the
// per-invocation environment and the authentication gate that runs
// before any action.
package command
