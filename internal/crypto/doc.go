// Package crypto exposes the secp256k1 primitives peerkey consumes.
//
// Contents
//
//   - Seed-to-private-key derivation and public key derivation
//     (PrivateFromSeed, PublicFromPrivate)
//   - Recoverable ECDSA over Keccak-256 digests (Sign, Verify)
//   - ECIES hybrid encryption (Encrypt, Decrypt)
//   - Transparent raw/hex public key acceptance (NormalizePublicKey)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// The elliptic-curve arithmetic itself is delegated to go-ethereum's
// crypto packages; nothing here implements point math. Key material moves
// through the fixed-size types in internal/domain.
package crypto
