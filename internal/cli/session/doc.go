// Package session persists the on-disk session record that carries the
// CLI's identity between invocations.
//
// Every process starts by opening the store: the record is read from disk
// if present, otherwise created with empty defaults and persisted before
// anything else runs. Mutations rewrite the whole file atomically (temp
// file plus rename) so a subsequent process never observes a partial
// record. Concurrent invocations on the same file are out of scope.
package session
