package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/crypto/ecies"
	"golang.org/x/crypto/sha3"

	"peerkey/internal/domain"
)

// SignatureLen is the size of a recoverable ECDSA signature (r || s || v).
const SignatureLen = 65

// keccak256 digests data with legacy Keccak-256, the digest the curve
// library signs over and the seed-to-key derivation function.
func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// PrivateFromSeed derives a private key from an arbitrary seed string.
// The result is rejected if it does not name a valid scalar on the curve.
func PrivateFromSeed(seed string) (domain.PrivateKey, error) {
	raw := keccak256([]byte(seed))
	if _, err := ethcrypto.ToECDSA(raw); err != nil {
		return domain.PrivateKey{}, fmt.Errorf("seed outside curve order: %w", err)
	}
	return domain.NewPrivateKey(raw)
}

// PublicFromPrivate derives the public key for priv.
func PublicFromPrivate(priv domain.PrivateKey) (domain.PublicKey, error) {
	key, err := ethcrypto.ToECDSA(priv.Slice())
	if err != nil {
		return domain.PublicKey{}, fmt.Errorf("import private key: %w", err)
	}
	// FromECDSAPub yields the 65-byte uncompressed point; drop the 0x04.
	return domain.NewPublicKey(ethcrypto.FromECDSAPub(&key.PublicKey)[1:])
}

// NormalizePublicKey accepts a public key as raw bytes or as a hex string
// and returns the raw form.
func NormalizePublicKey(pub []byte) ([]byte, error) {
	if len(pub) == domain.HexPublicKeyLen {
		decoded, err := hex.DecodeString(string(pub))
		if err != nil {
			return nil, fmt.Errorf("decode public key: %w", err)
		}
		pub = decoded
	}
	if len(pub) != domain.PublicKeyLen {
		return nil, domain.ErrInvalidKeySize
	}
	return pub, nil
}

// unmarshalPublic parses a raw 64-byte public key into its curve point.
func unmarshalPublic(pub []byte) (*ecdsa.PublicKey, error) {
	return ethcrypto.UnmarshalPubkey(append([]byte{4}, pub...))
}

// Sign signs Keccak-256(data) with priv and returns the 65-byte
// recoverable signature.
func Sign(priv domain.PrivateKey, data []byte) ([]byte, error) {
	key, err := ethcrypto.ToECDSA(priv.Slice())
	if err != nil {
		return nil, fmt.Errorf("import private key: %w", err)
	}
	return ethcrypto.Sign(keccak256(data), key)
}

// Verify reports whether sig is a valid signature over data for pub (raw
// or hex). Malformed keys and signatures return an error so the caller
// can decide whether to surface or swallow it.
func Verify(pub, sig, data []byte) (bool, error) {
	raw, err := NormalizePublicKey(pub)
	if err != nil {
		return false, err
	}
	if _, err := unmarshalPublic(raw); err != nil {
		return false, fmt.Errorf("parse public key: %w", err)
	}
	if len(sig) < SignatureLen-1 {
		return false, fmt.Errorf("signature too short: %d bytes", len(sig))
	}
	return ethcrypto.VerifySignature(
		append([]byte{4}, raw...), keccak256(data), sig[:SignatureLen-1]), nil
}

// Encrypt encrypts data with ECIES for pub (raw or hex).
func Encrypt(pub, data []byte) ([]byte, error) {
	raw, err := NormalizePublicKey(pub)
	if err != nil {
		return nil, err
	}
	point, err := unmarshalPublic(raw)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return ecies.Encrypt(rand.Reader, ecies.ImportECDSAPublic(point), data, nil, nil)
}

// Decrypt decrypts ECIES data with priv.
func Decrypt(priv domain.PrivateKey, data []byte) ([]byte, error) {
	key, err := ethcrypto.ToECDSA(priv.Slice())
	if err != nil {
		return nil, fmt.Errorf("import private key: %w", err)
	}
	return ecies.ImportECDSA(key).Decrypt(data, nil, nil)
}
