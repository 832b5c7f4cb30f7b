package app

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Environment variables read by LoadFromEnv.
const (
	EnvConfigPath        = "WERT_SC_SIGNER_CONFIG"
	EnvDefaultCredential = "WERT_DEFAULT_CREDENTIAL"
	EnvPrivateKey        = "WERT_PRIVATE_KEY"
	EnvPassphrase        = "WERT_PASSPHRASE"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	ConfigPath        string // credentials file; empty means no store is attached
	DefaultCredential string // overrides the file's default name when set
	PrivateKey        string // fallback key used when no store is attached
	Passphrase        string // opens sealed credentials

	Logger logrus.FieldLogger // optional; defaults to a discard logger
}

// LoadFromEnv reads config values from environment variables.
func LoadFromEnv() Config {
	return Config{
		ConfigPath:        os.Getenv(EnvConfigPath),
		DefaultCredential: os.Getenv(EnvDefaultCredential),
		PrivateKey:        os.Getenv(EnvPrivateKey),
		Passphrase:        os.Getenv(EnvPassphrase),
	}
}
