package app

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"wertsigner/internal/domain"
	"wertsigner/internal/services/signer"
	"wertsigner/internal/store"
)

// Wire bundles the store, signer and logger for the CLI.
type Wire struct {
	// Store is nil when no credentials file is configured.
	Store  *store.CredentialStore
	Signer signer.Service
	Log    logrus.FieldLogger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	var credStore *store.CredentialStore
	if cfg.ConfigPath != "" {
		f, err := LoadCredentialsFile(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		creds, err := f.Credentials(cfg.Passphrase)
		if err != nil {
			return nil, errors.Wrapf(err, "load credentials from %s", cfg.ConfigPath)
		}
		def := f.Default
		if cfg.DefaultCredential != "" {
			def = cfg.DefaultCredential
		}
		credStore = store.NewCredentialStore(creds, def)
		log.WithFields(logrus.Fields{
			"path":    cfg.ConfigPath,
			"count":   len(creds),
			"default": credStore.DefaultName(),
		}).Debug("credentials loaded")
	}

	var fallback domain.KeyLookup
	if cfg.PrivateKey != "" {
		fallback = domain.StaticKey(cfg.PrivateKey)
	}

	// A nil *CredentialStore must not become a non-nil interface.
	var cs domain.CredentialStore
	if credStore != nil {
		cs = credStore
	}

	return &Wire{
		Store:  credStore,
		Signer: signer.New(cs, fallback).WithLogger(log),
		Log:    log,
	}, nil
}
