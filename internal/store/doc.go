// Package store provides the in-memory credential overlay consulted by the
// signer.
//
// CredentialStore keeps an immutable snapshot behind an atomic pointer.
// Get, Has and Names read the current snapshot without locking; Set and
// Remove build a new snapshot under a mutex and publish it atomically, so
// readers always observe a consistent set of names and secrets.
package store
