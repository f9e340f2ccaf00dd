package difficulty

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"math/big"

	"peerkey/internal/domain"
)

// HashToInt interprets SHA-256(b) as a big-endian 256-bit integer.
func HashToInt(b []byte) *big.Int {
	sum := sha256.Sum256(b)
	return new(big.Int).SetBytes(sum[:])
}

// maxHash is the exclusive threshold for a given difficulty:
// 2^(256-difficulty). Every hash below it has at least difficulty
// leading zero bits.
func maxHash(difficulty int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(256-difficulty))
}

// Check reports whether pub satisfies difficulty. pub is either a raw
// public key or its hex encoding; hex input is decoded first. Difficulty 0
// accepts every key.
func Check(pub []byte, difficulty int) bool {
	if len(pub) == domain.HexPublicKeyLen {
		decoded, err := hex.DecodeString(string(pub))
		if err == nil {
			pub = decoded
		}
	}
	return HashToInt(pub).Cmp(maxHash(difficulty)) < 0
}

// Estimate computes the difficulty of keyID as 256 - log2(hash).
//
// This is strictly more expensive than Check; use it for diagnostics and
// reporting, not for gating.
func Estimate(keyID domain.KeyID) (float64, error) {
	raw, err := keyID.Bytes()
	if err != nil {
		return 0, fmt.Errorf("decode key id: %w", err)
	}
	h := HashToInt(raw)
	if h.Sign() == 0 {
		return 256, nil
	}
	mant := new(big.Float)
	exp := new(big.Float).SetInt(h).MantExp(mant)
	m, _ := mant.Float64()
	return 256 - (float64(exp) + math.Log2(m)), nil
}
