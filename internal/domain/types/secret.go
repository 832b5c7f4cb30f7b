package types

// Secret is an optional credential value. The zero Secret is "configured but
// empty".
type Secret struct {
	value string
	set   bool
}

// SecretOf wraps a hex-encoded seed.
func SecretOf(s string) Secret { return Secret{value: s, set: true} }

// NullSecret is a credential with no value.
var NullSecret = Secret{}

// Value returns the secret and whether one is configured.
func (s Secret) Value() (string, bool) { return s.value, s.set }

// IsNull reports whether no value is configured.
func (s Secret) IsNull() bool { return !s.set }

// Usable reports whether s holds a non-empty value.
func (s Secret) Usable() bool { return s.set && s.value != "" }

// String never reveals the secret.
func (s Secret) String() string {
	if !s.set {
		return "<null>"
	}
	return "<redacted>"
}

func (s Secret) GoString() string { return s.String() }
