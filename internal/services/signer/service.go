package signer

import (
	"encoding/hex"
	"io"

	"github.com/sirupsen/logrus"

	"wertsigner/internal/canonical"
	"wertsigner/internal/crypto"
	"wertsigner/internal/domain"
)

// Service signs records using keys resolved from an optional credential
// store or an optional host lookup.
type Service struct {
	store    domain.CredentialStore
	fallback domain.KeyLookup
	selected string
	log      logrus.FieldLogger
}

// New returns a signer. Either dependency may be nil. The zero Service has
// neither and signs only with an explicit key.
func New(store domain.CredentialStore, fallback domain.KeyLookup) Service {
	return Service{store: store, fallback: fallback, log: discardLogger()}
}

// WithCredential returns a copy of s that resolves name when no credential is
// passed to Sign.
func (s Service) WithCredential(name string) Service {
	s.selected = name
	return s
}

// WithLogger returns a copy of s that writes debug entries to l.
func (s Service) WithLogger(l logrus.FieldLogger) Service {
	if l == nil {
		l = discardLogger()
	}
	s.log = l
	return s
}

// SelectedCredential returns the name chosen with WithCredential, if any.
func (s Service) SelectedCredential() string { return s.selected }

// Sign validates r, resolves a key and returns a copy of r carrying the
// signature. r is not modified and nothing is returned on failure.
func (s Service) Sign(r domain.Record, opts domain.SignOptions) (domain.Record, error) {
	if missing := r.MissingFields(); len(missing) > 0 {
		return domain.Record{}, &domain.MissingFieldsError{Fields: missing}
	}

	res, err := s.ResolveKey(opts)
	if err != nil {
		return domain.Record{}, err
	}

	sig, err := signPayload(res.Key, r)
	if err != nil {
		return domain.Record{}, err
	}

	out := r.Clone()
	out.Set(domain.FieldSignature, domain.String(sig))

	entry := s.logger().WithField("source", string(res.Source))
	if res.Credential != "" {
		entry = entry.WithField("credential", res.Credential)
	}
	entry.Debug("record signed")
	return out, nil
}

// KeyResolution is the key Sign would use for a set of options.
// Credential is set only when the key came from the store.
type KeyResolution struct {
	Key        string
	Source     domain.KeySource
	Credential string
}

// ResolveKey picks the signing key for opts without signing anything. The key
// is returned as given and is not validated.
func (s Service) ResolveKey(opts domain.SignOptions) (KeyResolution, error) {
	if opts.PrivateKey != nil {
		if *opts.PrivateKey == "" {
			return KeyResolution{}, domain.ErrEmptyKey
		}
		return KeyResolution{Key: *opts.PrivateKey, Source: domain.SourceExplicitKey}, nil
	}

	name := opts.Credential
	if name == "" {
		name = s.selected
	}

	if s.store != nil {
		if name == "" {
			name = s.store.DefaultName()
		}
		secret, err := s.store.Get(name)
		if err != nil {
			return KeyResolution{}, err
		}
		if !secret.Usable() {
			return KeyResolution{}, domain.ErrKeyRequired
		}
		key, _ := secret.Value()
		return KeyResolution{Key: key, Source: domain.SourceStore, Credential: name}, nil
	}

	if s.fallback != nil {
		if key, ok := s.fallback.LookupKey(); ok && key != "" {
			return KeyResolution{Key: key, Source: domain.SourceFallback}, nil
		}
	}
	return KeyResolution{}, domain.ErrKeyRequired
}

func (s Service) logger() logrus.FieldLogger {
	if s.log == nil {
		return discardLogger()
	}
	return s.log
}

// signPayload parses the key before canonicalizing, then signs. Seed and
// keypair are wiped on every return path.
func signPayload(hexKey string, r domain.Record) (string, error) {
	seed, err := crypto.ParseSeed(hexKey)
	if err != nil {
		return "", err
	}
	defer seed.Wipe()

	kp := crypto.Derive(seed)
	defer kp.Wipe()

	return hex.EncodeToString(kp.Sign(canonical.Encode(r))), nil
}

// SignRecord signs r with an explicit hex key and no credential store.
func SignRecord(r domain.Record, privateKey string) (domain.Record, error) {
	return New(nil, nil).Sign(r, domain.SignOptions{PrivateKey: &privateKey})
}

// RequiredFieldNames returns the fields every record must carry, in signing order.
func RequiredFieldNames() []string { return domain.RequiredFieldNames() }

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Compile-time assertion that Service implements domain.RecordSigner.
var _ domain.RecordSigner = Service{}
