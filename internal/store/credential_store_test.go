package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wertsigner/internal/domain"
	"wertsigner/internal/store"
)

const (
	keyA = "123456789abcdef123456789abcdef123456789abcdef123456789abcdef1234"
	keyB = "987654321fedcba987654321fedcba987654321fedcba987654321fedcba9876"
)

func newStore() *store.CredentialStore {
	return store.NewCredentialStore([]store.Credential{
		{Name: "default", Secret: domain.SecretOf(keyA)},
		{Name: "production", Secret: domain.SecretOf(keyB)},
	}, "default")
}

func secretValue(t *testing.T, s domain.Secret) string {
	t.Helper()
	v, ok := s.Value()
	require.True(t, ok, "expected a configured secret")
	return v
}

func TestGet_DefaultWhenNameEmpty(t *testing.T) {
	s := newStore()
	got, err := s.Get("")
	require.NoError(t, err)
	assert.Equal(t, keyA, secretValue(t, got))
}

func TestGet_SpecificCredential(t *testing.T) {
	got, err := newStore().Get("production")
	require.NoError(t, err)
	assert.Equal(t, keyB, secretValue(t, got))
}

func TestGet_UnknownCredential(t *testing.T) {
	_, err := newStore().Get("nonexistent")

	var uerr *domain.UnknownCredentialError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "nonexistent", uerr.Name)
	assert.ErrorIs(t, err, domain.ErrUnknownCredential)
	assert.EqualError(t, err, "credential 'nonexistent' is not configured")
}

func TestGet_EmptyStoreReportsDefaultName(t *testing.T) {
	s := store.NewCredentialStore(nil, "")
	assert.Equal(t, store.DefaultCredentialName, s.DefaultName())

	_, err := s.Get("")
	assert.EqualError(t, err, "credential 'default' is not configured")
}

func TestGet_NullSecretIsNotAnError(t *testing.T) {
	s := store.NewCredentialStore([]store.Credential{{Name: "default"}}, "default")
	got, err := s.Get("")
	require.NoError(t, err)
	assert.True(t, got.IsNull())
	assert.True(t, s.Has("default"))
}

func TestHas(t *testing.T) {
	s := newStore()
	assert.True(t, s.Has("default"))
	assert.True(t, s.Has("production"))
	assert.False(t, s.Has("nonexistent"))
}

func TestNames_InsertionOrder(t *testing.T) {
	s := store.NewCredentialStore([]store.Credential{
		{Name: "zulu"}, {Name: "alpha"}, {Name: "mike"}, {Name: "alpha", Secret: domain.SecretOf(keyA)},
	}, "alpha")
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, s.Names())

	got, err := s.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, keyA, secretValue(t, got))

	names := s.Names()
	names[0] = "mutated"
	assert.Equal(t, "zulu", s.Names()[0])
}

func TestSet_AddsAndOverwrites(t *testing.T) {
	s := newStore()
	s.Set("staging", domain.SecretOf("abc"))
	s.Set("default", domain.SecretOf(keyB))
	s.Set("nullable", domain.NullSecret)

	assert.Equal(t, []string{"default", "production", "staging", "nullable"}, s.Names())

	got, err := s.Get("default")
	require.NoError(t, err)
	assert.Equal(t, keyB, secretValue(t, got))

	got, err = s.Get("nullable")
	require.NoError(t, err)
	assert.True(t, got.IsNull())
}

func TestRemove(t *testing.T) {
	s := newStore()
	s.Remove("production")
	assert.False(t, s.Has("production"))
	assert.Equal(t, []string{"default"}, s.Names())

	assert.NotPanics(t, func() { s.Remove("nonexistent") })
	assert.Equal(t, []string{"default"}, s.Names())
}

func TestConcurrentReadsDuringWrites(t *testing.T) {
	s := newStore()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				name := fmt.Sprintf("w%d-%d", w, i)
				s.Set(name, domain.SecretOf(keyA))
				s.Remove(name)
			}
		}(w)
	}
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				got, err := s.Get("")
				if v, _ := got.Value(); err != nil || v != keyA {
					t.Errorf("default credential changed under concurrent writes")
					return
				}
				_ = s.Names()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, []string{"default", "production"}, s.Names())
}
