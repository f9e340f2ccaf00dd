package keys

import (
	"context"
	"fmt"
	"strconv"

	"peerkey/internal/crypto"
	"peerkey/internal/difficulty"
	"peerkey/internal/domain"
	"peerkey/internal/random"
	"peerkey/internal/util/memzero"
)

// generate draws random seeds and derives key pairs until one whose
// public key satisfies d turns up. Difficulty 0 terminates on the first
// draw; the expected number of iterations grows as 2^d, and there is
// deliberately no iteration cap. Cancelling ctx is the only bound.
func generate(ctx context.Context, d int) (domain.KeyPair, error) {
	log.Info("generating new key pair")
	for {
		if err := ctx.Err(); err != nil {
			return domain.KeyPair{}, fmt.Errorf("key generation interrupted: %w", err)
		}

		seed, err := randomSeed()
		if err != nil {
			return domain.KeyPair{}, err
		}
		priv, err := crypto.PrivateFromSeed(seed)
		if err != nil {
			// Seed hashed outside the curve order; draw again.
			continue
		}
		pub, err := crypto.PublicFromPrivate(priv)
		if err != nil {
			memzero.Zero(priv[:])
			continue
		}
		if difficulty.Check(pub.Slice(), d) {
			return domain.KeyPair{Priv: priv, Pub: pub}, nil
		}
		memzero.Zero(priv[:])
	}
}

// randomSeed formats a fresh random fraction as the derivation seed.
func randomSeed() (string, error) {
	f, err := random.Float()
	if err != nil {
		return "", fmt.Errorf("draw seed: %w", err)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}
