package interfaces

import types "wertsigner/internal/domain/types"

// CredentialStore resolves named credential secrets.
//
// Implementations must be safe for concurrent reads.
type CredentialStore interface {
	// Get returns the secret for name, substituting the default name when
	// name is empty. An absent name fails with *types.UnknownCredentialError;
	// a present name with no value returns types.NullSecret and no error.
	Get(name string) (types.Secret, error)
	Has(name string) bool
	// Names lists configured names in insertion order.
	Names() []string
	DefaultName() string
}

// MutableCredentialStore is a CredentialStore the host may edit at runtime.
type MutableCredentialStore interface {
	CredentialStore
	Set(name string, secret types.Secret)
	Remove(name string)
}
