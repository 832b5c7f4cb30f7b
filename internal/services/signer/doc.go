// Package signer attests transaction records with Ed25519.
//
// A Service resolves a key, canonicalizes the record and returns a copy with
// a hex signature. Resolution is first match wins:
//
//  1. SignOptions.PrivateKey, bypassing the store.
//  2. A credential name: SignOptions.Credential, else the name selected with
//     WithCredential, else the store default.
//  3. With a store attached, that name's secret. A null or empty secret is
//     ErrKeyRequired; it does not fall through.
//  4. Without a store, the host KeyLookup, consulted at most once.
//
// Service is a value. WithCredential and WithLogger return modified copies
// and never touch the receiver, so a base Service may be shared freely with
// the ones derived from it.
package signer
