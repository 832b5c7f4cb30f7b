package app

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"wertsigner/internal/crypto"
	"wertsigner/internal/domain"
	"wertsigner/internal/store"
	"wertsigner/internal/util/memzero"
)

// CredentialsFile is the parsed credentials document:
//
//	default: production
//	credentials:
//	  production: "0x<64 hex>"
//	  staging: null
//	  vault:
//	    sealed: {v: 1, salt: ..., scrypt_N: 32768, scrypt_r: 8, scrypt_p: 1, cipher: ...}
type CredentialsFile struct {
	Default string
	Entries []CredentialEntry
}

// CredentialEntry is one credential in document order. At most one of Key
// and Sealed is set; neither means null.
type CredentialEntry struct {
	Name   string
	Key    *string
	Sealed *crypto.Envelope
}

type credentialsDoc struct {
	Default     string    `yaml:"default"`
	Credentials yaml.Node `yaml:"credentials"`
}

type sealedEntry struct {
	Sealed *crypto.Envelope `yaml:"sealed"`
}

// SealedEntry returns the YAML form of a sealed credential under name.
func SealedEntry(name string, env crypto.Envelope) ([]byte, error) {
	return yaml.Marshal(map[string]sealedEntry{name: {Sealed: &env}})
}

// LoadCredentialsFile reads and parses the credentials file at path.
func LoadCredentialsFile(path string) (CredentialsFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return CredentialsFile{}, errors.Wrap(err, "read credentials file")
	}
	defer memzero.Zero(b)

	f, err := ParseCredentials(b)
	if err != nil {
		return CredentialsFile{}, errors.Wrapf(err, "parse credentials file %s", path)
	}
	return f, nil
}

// ParseCredentials decodes a credentials document, keeping entry order.
func ParseCredentials(b []byte) (CredentialsFile, error) {
	var doc credentialsDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return CredentialsFile{}, err
	}
	out := CredentialsFile{Default: doc.Default}

	node := &doc.Credentials
	if node.Kind == 0 || node.ShortTag() == "!!null" {
		return out, nil
	}
	if node.Kind != yaml.MappingNode {
		return CredentialsFile{}, errors.Errorf("line %d: credentials must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode || k.Value == "" {
			return CredentialsFile{}, errors.Errorf("line %d: credential name must be a non-empty string", k.Line)
		}
		entry, err := parseEntry(k.Value, v)
		if err != nil {
			return CredentialsFile{}, err
		}
		out.Entries = append(out.Entries, entry)
	}
	return out, nil
}

func parseEntry(name string, v *yaml.Node) (CredentialEntry, error) {
	entry := CredentialEntry{Name: name}
	switch v.Kind {
	case yaml.ScalarNode:
		if v.ShortTag() == "!!null" {
			return entry, nil
		}
		// Raw text: unquoted seeds may otherwise resolve as YAML integers.
		key := v.Value
		entry.Key = &key
		return entry, nil
	case yaml.MappingNode:
		var s sealedEntry
		if err := v.Decode(&s); err != nil {
			return CredentialEntry{}, errors.Wrapf(err, "credential %q", name)
		}
		if s.Sealed == nil {
			return CredentialEntry{}, errors.Errorf("line %d: credential %q: mapping must contain \"sealed\"", v.Line, name)
		}
		entry.Sealed = s.Sealed
		return entry, nil
	default:
		return CredentialEntry{}, errors.Errorf("line %d: credential %q must be a string, null or sealed mapping", v.Line, name)
	}
}

// Credentials resolves entries into store credentials, opening sealed ones
// with passphrase.
func (f CredentialsFile) Credentials(passphrase string) ([]store.Credential, error) {
	out := make([]store.Credential, 0, len(f.Entries))
	for _, e := range f.Entries {
		c := store.Credential{Name: e.Name}
		switch {
		case e.Key != nil:
			c.Secret = domain.SecretOf(*e.Key)
		case e.Sealed != nil:
			if passphrase == "" {
				return nil, errors.Errorf("credential %q is sealed and no passphrase was given", e.Name)
			}
			pt, err := crypto.Open(passphrase, *e.Sealed)
			if err != nil {
				return nil, errors.Wrapf(err, "open credential %q", e.Name)
			}
			c.Secret = domain.SecretOf(string(pt))
			memzero.Zero(pt)
		}
		out = append(out, c)
	}
	return out, nil
}
