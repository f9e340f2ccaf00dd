package crypto_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"peerkey/internal/crypto"
	"peerkey/internal/domain"
)

func derivePair(t *testing.T, seed string) (domain.PrivateKey, domain.PublicKey) {
	t.Helper()
	priv, err := crypto.PrivateFromSeed(seed)
	if err != nil {
		t.Fatalf("PrivateFromSeed: %v", err)
	}
	pub, err := crypto.PublicFromPrivate(priv)
	if err != nil {
		t.Fatalf("PublicFromPrivate: %v", err)
	}
	return priv, pub
}

func TestPrivateFromSeed_Deterministic(t *testing.T) {
	a, err := crypto.PrivateFromSeed("0.123456")
	if err != nil {
		t.Fatalf("PrivateFromSeed: %v", err)
	}
	b, err := crypto.PrivateFromSeed("0.123456")
	if err != nil {
		t.Fatalf("PrivateFromSeed: %v", err)
	}
	if a != b {
		t.Fatal("same seed must derive the same key")
	}
	c, err := crypto.PrivateFromSeed("0.654321")
	if err != nil {
		t.Fatalf("PrivateFromSeed: %v", err)
	}
	if a == c {
		t.Fatal("different seeds derived the same key")
	}
}

func TestSignVerify_RoundTrip(t *testing.T) {
	priv, pub := derivePair(t, "sign seed")
	msg := []byte("hello")

	sig, err := crypto.Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != crypto.SignatureLen {
		t.Fatalf("signature length %d, want %d", len(sig), crypto.SignatureLen)
	}

	ok, err := crypto.Verify(pub.Slice(), sig, msg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("valid signature rejected")
	}

	ok, err = crypto.Verify(pub.Slice(), sig, []byte("hullo"))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("signature accepted for different message")
	}

	_, other := derivePair(t, "other seed")
	ok, err = crypto.Verify(other.Slice(), sig, msg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("signature accepted for different key")
	}
}

func TestVerify_HexPublicKey(t *testing.T) {
	priv, pub := derivePair(t, "hex seed")
	msg := []byte("payload")

	sig, err := crypto.Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	hexPub := []byte(hex.EncodeToString(pub.Slice()))
	ok, err := crypto.Verify(hexPub, sig, msg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("hex-encoded public key rejected")
	}
}

func TestVerify_MalformedInputs(t *testing.T) {
	priv, pub := derivePair(t, "malformed seed")
	sig, err := crypto.Sign(priv, []byte("x"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := crypto.Verify(nil, sig, []byte("x")); err == nil {
		t.Fatal("want error for empty public key")
	}
	if _, err := crypto.Verify(make([]byte, 64), sig, []byte("x")); err == nil {
		t.Fatal("want error for off-curve public key")
	}
	if _, err := crypto.Verify(pub.Slice(), []byte{1, 2, 3}, []byte("x")); err == nil {
		t.Fatal("want error for truncated signature")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	priv, pub := derivePair(t, "ecies seed")

	for _, msg := range [][]byte{nil, {0x42}, bytes.Repeat([]byte("0123456789"), 1024)} {
		ct, err := crypto.Encrypt(pub.Slice(), msg)
		if err != nil {
			t.Fatalf("Encrypt(%d bytes): %v", len(msg), err)
		}
		pt, err := crypto.Decrypt(priv, ct)
		if err != nil {
			t.Fatalf("Decrypt(%d bytes): %v", len(msg), err)
		}
		if !bytes.Equal(pt, msg) {
			t.Fatalf("round trip mismatch for %d bytes", len(msg))
		}
	}
}

func TestDecrypt_CorruptCiphertext(t *testing.T) {
	priv, pub := derivePair(t, "corrupt seed")
	ct, err := crypto.Encrypt(pub.Slice(), []byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	ct[len(ct)-1] ^= 0xff
	if _, err := crypto.Decrypt(priv, ct); err == nil {
		t.Fatal("want error for corrupt ciphertext")
	}
}

func TestNormalizePublicKey(t *testing.T) {
	_, pub := derivePair(t, "normalize seed")

	raw, err := crypto.NormalizePublicKey(pub.Slice())
	if err != nil {
		t.Fatalf("NormalizePublicKey raw: %v", err)
	}
	fromHex, err := crypto.NormalizePublicKey([]byte(hex.EncodeToString(pub.Slice())))
	if err != nil {
		t.Fatalf("NormalizePublicKey hex: %v", err)
	}
	if !bytes.Equal(raw, fromHex) {
		t.Fatal("raw and hex forms disagree")
	}
	if _, err := crypto.NormalizePublicKey([]byte("short")); err == nil {
		t.Fatal("want error for bad key size")
	}
}
