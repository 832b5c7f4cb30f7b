// Package crypto holds the key material handling used by the signer.
//
// Contents
//
//   - Hex seed parsing and validation (ParseSeed)
//   - Ed25519 keypair derivation and detached signing (Derive, Keypair.Sign, SignHex)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - Passphrase-sealed secrets for configuration files (Seal, Open)
//
// # Notes
//
// Seeds and private keys live only for the duration of a single call. Every
// buffer holding secret bytes is wiped with memzero before the function that
// allocated it returns, on success and error paths alike. Callers that hold a
// *Seed or *Keypair must call Wipe themselves, typically with defer.
package crypto
