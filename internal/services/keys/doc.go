// Package keys is the identity facade: it loads the peer's key pair from
// the store or generates a fresh one meeting the configured difficulty,
// persists it, and exposes signing, verification and ECIES
// encryption/decryption bound to that pair.
package keys
