package store

import (
	"sync"
	"sync/atomic"

	"wertsigner/internal/domain"
)

// DefaultCredentialName is used when no default name is configured.
const DefaultCredentialName = "default"

// snapshot is an immutable view of the credentials. Writers replace it
// wholesale; readers never lock.
type snapshot struct {
	names   []string
	secrets map[string]domain.Secret
}

// CredentialStore is an in-memory, insertion-ordered overlay of named
// secrets with a designated default name. It is safe for concurrent use.
type CredentialStore struct {
	defaultName string

	mu   sync.Mutex // serializes writers
	snap atomic.Pointer[snapshot]
}

// Credential is one name/secret pair used to seed a store.
type Credential struct {
	Name   string
	Secret domain.Secret
}

// NewCredentialStore returns a store holding creds in the given order. A
// later duplicate name overwrites the earlier secret in place. An empty
// defaultName falls back to DefaultCredentialName.
func NewCredentialStore(creds []Credential, defaultName string) *CredentialStore {
	if defaultName == "" {
		defaultName = DefaultCredentialName
	}
	snap := &snapshot{secrets: make(map[string]domain.Secret, len(creds))}
	for _, c := range creds {
		if _, ok := snap.secrets[c.Name]; !ok {
			snap.names = append(snap.names, c.Name)
		}
		snap.secrets[c.Name] = c.Secret
	}
	s := &CredentialStore{defaultName: defaultName}
	s.snap.Store(snap)
	return s
}

// Get returns the secret for name, or for the default name when name is "".
func (s *CredentialStore) Get(name string) (domain.Secret, error) {
	if name == "" {
		name = s.defaultName
	}
	secret, ok := s.snap.Load().secrets[name]
	if !ok {
		return domain.NullSecret, &domain.UnknownCredentialError{Name: name}
	}
	return secret, nil
}

// Has reports whether name is configured, including with a null secret.
func (s *CredentialStore) Has(name string) bool {
	_, ok := s.snap.Load().secrets[name]
	return ok
}

// Names returns configured names in insertion order.
func (s *CredentialStore) Names() []string {
	names := s.snap.Load().names
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// DefaultName returns the name substituted when none is given.
func (s *CredentialStore) DefaultName() string { return s.defaultName }

// Set inserts or overwrites name. An overwritten name keeps its position.
func (s *CredentialStore) Set(name string, secret domain.Secret) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snap.Load()
	next := &snapshot{
		names:   cur.names,
		secrets: make(map[string]domain.Secret, len(cur.secrets)+1),
	}
	for k, v := range cur.secrets {
		next.secrets[k] = v
	}
	if _, ok := cur.secrets[name]; !ok {
		next.names = append(append([]string(nil), cur.names...), name)
	}
	next.secrets[name] = secret
	s.snap.Store(next)
}

// Remove deletes name if present; it is a no-op otherwise.
func (s *CredentialStore) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snap.Load()
	if _, ok := cur.secrets[name]; !ok {
		return
	}
	next := &snapshot{
		names:   make([]string, 0, len(cur.names)-1),
		secrets: make(map[string]domain.Secret, len(cur.secrets)-1),
	}
	for _, n := range cur.names {
		if n != name {
			next.names = append(next.names, n)
			next.secrets[n] = cur.secrets[n]
		}
	}
	s.snap.Store(next)
}

// Compile-time assertion that CredentialStore implements domain.MutableCredentialStore.
var _ domain.MutableCredentialStore = (*CredentialStore)(nil)
