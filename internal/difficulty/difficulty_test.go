package difficulty_test

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"testing"

	"peerkey/internal/difficulty"
	"peerkey/internal/domain"
)

// randomPub returns 64 bytes standing in for a public key.
func randomPub(t *testing.T) []byte {
	t.Helper()
	b := make([]byte, domain.PublicKeyLen)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	return b
}

func TestCheck_ZeroAcceptsEverything(t *testing.T) {
	for i := 0; i < 50; i++ {
		if !difficulty.Check(randomPub(t), 0) {
			t.Fatal("difficulty 0 must accept every key")
		}
	}
}

func TestCheck_MatchesThresholdDefinition(t *testing.T) {
	for _, d := range []int{0, 1, 4, 8, 16, 255} {
		pub := randomPub(t)
		sum := sha256.Sum256(pub)
		hash := new(big.Int).SetBytes(sum[:])
		max := new(big.Int).Lsh(big.NewInt(1), uint(256-d))

		want := hash.Cmp(max) < 0
		if got := difficulty.Check(pub, d); got != want {
			t.Fatalf("d=%d: Check=%v, threshold says %v", d, got, want)
		}
	}
}

func TestCheck_AcceptsHexInput(t *testing.T) {
	pub := randomPub(t)
	hexPub := []byte(hex.EncodeToString(pub))
	for _, d := range []int{0, 1, 8} {
		if difficulty.Check(pub, d) != difficulty.Check(hexPub, d) {
			t.Fatalf("raw and hex disagree at d=%d", d)
		}
	}
}

func TestEstimate_ConsistentWithCheck(t *testing.T) {
	pub := randomPub(t)
	id := domain.KeyID(hex.EncodeToString(pub))

	est, err := difficulty.Estimate(id)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if est < 0 || est > 256 {
		t.Fatalf("estimate %v outside [0, 256]", est)
	}
	// Every difficulty at or below the floor of the estimate must pass.
	for d := 0; d <= int(est); d++ {
		if !difficulty.Check(pub, d) {
			t.Fatalf("key estimated at %.2f fails difficulty %d", est, d)
		}
	}
	if difficulty.Check(pub, int(est)+1) {
		t.Fatalf("key estimated at %.2f passes difficulty %d", est, int(est)+1)
	}
}

func TestEstimate_MalformedHex(t *testing.T) {
	if _, err := difficulty.Estimate("not hex"); err == nil {
		t.Fatal("want decode error for malformed key id")
	}
}
