package domain

import (
	"encoding/hex"
	"errors"
)

const (
	// PrivateKeyLen is the exact size of a raw secp256k1 private key.
	PrivateKeyLen = 32
	// PublicKeyLen is the size of an uncompressed public key without the
	// 0x04 prefix byte.
	PublicKeyLen = 64
	// HexPublicKeyLen is the length of a hex-encoded public key.
	HexPublicKeyLen = 128
)

// ErrInvalidKeySize is returned when raw key material has the wrong length.
var ErrInvalidKeySize = errors.New("invalid key size")

// PrivateKey is a raw secp256k1 private key.
type PrivateKey [PrivateKeyLen]byte

// Slice returns the key as a []byte.
func (k PrivateKey) Slice() []byte { return k[:] }

// PublicKey is an uncompressed secp256k1 public key, prefix stripped.
type PublicKey [PublicKeyLen]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// ID returns the hex key id for the public key.
func (p PublicKey) ID() KeyID { return KeyID(hex.EncodeToString(p[:])) }

// KeyID is the hex-encoded public key, the peer's externally visible
// identity string. Always HexPublicKeyLen characters.
type KeyID string

// Bytes decodes the key id back into raw public key bytes.
func (id KeyID) Bytes() ([]byte, error) { return hex.DecodeString(string(id)) }

func (id KeyID) String() string { return string(id) }

// KeyPair holds a peer's long-term identity keys. Immutable once built:
// a pair is either loaded from disk or freshly generated, never changed
// in place.
type KeyPair struct {
	Priv PrivateKey
	Pub  PublicKey
}

// NewPrivateKey copies b into a PrivateKey, enforcing the exact size.
func NewPrivateKey(b []byte) (PrivateKey, error) {
	var k PrivateKey
	if len(b) != PrivateKeyLen {
		return k, ErrInvalidKeySize
	}
	copy(k[:], b)
	return k, nil
}

// NewPublicKey copies b into a PublicKey, enforcing the exact size.
func NewPublicKey(b []byte) (PublicKey, error) {
	var p PublicKey
	if len(b) != PublicKeyLen {
		return p, ErrInvalidKeySize
	}
	copy(p[:], b)
	return p, nil
}
