package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"wertsigner/internal/util/memzero"
)

const (
	// The current supported version of the sealed secret format.
	envelopeFormatVersion = 1

	saltBytes = 16
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// ciphertext has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted sealed secret")

// Envelope is a passphrase-sealed secret as it appears in configuration.
type Envelope struct {
	V      int    `json:"v" yaml:"v"`
	Salt   string `json:"salt" yaml:"salt"`
	N      int    `json:"scrypt_N" yaml:"scrypt_N"`
	R      int    `json:"scrypt_r" yaml:"scrypt_r"`
	P      int    `json:"scrypt_p" yaml:"scrypt_p"`
	Cipher string `json:"cipher" yaml:"cipher"`
}

// ScryptParamsDefault returns the scrypt tunables used by Seal.
func ScryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// Seal derives a key from passphrase and encrypts raw.
func Seal(passphrase string, raw []byte, N, r, p int) (Envelope, error) {
	var salt [saltBytes]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return Envelope{}, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return Envelope{}, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return Envelope{}, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return Envelope{
		V:      envelopeFormatVersion,
		Salt:   base64.StdEncoding.EncodeToString(salt[:]),
		N:      N,
		R:      r,
		P:      p,
		Cipher: base64.StdEncoding.EncodeToString(ct),
	}, nil
}

// Open decrypts env with a key derived from passphrase. The caller owns the
// returned plaintext and should wipe it.
func Open(passphrase string, env Envelope) ([]byte, error) {
	if env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("unsupported sealed secret version %d", env.V)
	}
	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	ct, err := base64.StdEncoding.DecodeString(env.Cipher)
	if err != nil {
		return nil, fmt.Errorf("decode cipher: %w", err)
	}

	key, err := scrypt.Key([]byte(passphrase), salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], ct, salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
