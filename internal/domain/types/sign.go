package types

// SignOptions selects the key used for one signature.
type SignOptions struct {
	// Credential names a store entry. Empty means the signer's selected
	// credential, then the store default.
	Credential string
	// PrivateKey, when non-nil, is used directly and bypasses the store.
	PrivateKey *string
}

// KeySource records where a signing key was resolved from.
type KeySource string

const (
	SourceExplicitKey KeySource = "key"
	SourceStore       KeySource = "store"
	SourceFallback    KeySource = "fallback"
)
