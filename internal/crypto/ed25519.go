package crypto

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ed25519"

	"wertsigner/internal/domain"
	"wertsigner/internal/util/memzero"
)

const (
	// SeedHexLen is the length of a hex-encoded seed without prefix.
	SeedHexLen = 2 * ed25519.SeedSize
	// SignatureHexLen is the length of a hex-encoded detached signature.
	SignatureHexLen = 2 * ed25519.SignatureSize

	hexPrefix = "0x"
)

// Seed is a 32-byte Ed25519 seed.
type Seed struct {
	b [ed25519.SeedSize]byte
}

// ParseSeed decodes a 64-digit hex seed with an optional "0x" prefix.
func ParseSeed(hexKey string) (*Seed, error) {
	if hexKey == "" {
		return nil, domain.ErrEmptyKey
	}
	trimmed := strings.TrimPrefix(hexKey, hexPrefix)
	if len(trimmed) != SeedHexLen {
		return nil, domain.ErrInvalidKeyLength
	}

	src := []byte(trimmed)
	defer memzero.Zero(src)

	s := &Seed{}
	if _, err := hex.Decode(s.b[:], src); err != nil {
		s.Wipe()
		return nil, domain.ErrInvalidKeyEncoding
	}
	return s, nil
}

// Wipe zeroes the seed bytes.
func (s *Seed) Wipe() {
	if s != nil {
		memzero.Zero(s.b[:])
	}
}

// Keypair is an expanded Ed25519 signing key.
type Keypair struct {
	priv ed25519.PrivateKey
}

// Derive expands seed into a keypair per RFC 8032.
func Derive(seed *Seed) *Keypair {
	return &Keypair{priv: ed25519.NewKeyFromSeed(seed.b[:])}
}

// Sign returns the 64-byte detached signature over payload.
func (k *Keypair) Sign(payload []byte) []byte {
	return ed25519.Sign(k.priv, payload)
}

// Public returns a copy of the public key.
func (k *Keypair) Public() ed25519.PublicKey {
	pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pub, k.priv[ed25519.SeedSize:])
	return pub
}

// Wipe zeroes the private key bytes.
func (k *Keypair) Wipe() {
	if k != nil {
		memzero.Zero(k.priv)
	}
}

// SignHex parses hexKey, signs payload and returns the lowercase hex
// signature. All derived key material is wiped before returning.
func SignHex(hexKey string, payload []byte) (string, error) {
	seed, err := ParseSeed(hexKey)
	if err != nil {
		return "", err
	}
	defer seed.Wipe()

	kp := Derive(seed)
	defer kp.Wipe()

	return hex.EncodeToString(kp.Sign(payload)), nil
}

// PublicKeyHex parses hexKey and returns its Ed25519 public key.
func PublicKeyHex(hexKey string) (ed25519.PublicKey, error) {
	seed, err := ParseSeed(hexKey)
	if err != nil {
		return nil, err
	}
	defer seed.Wipe()

	kp := Derive(seed)
	defer kp.Wipe()

	return kp.Public(), nil
}
