// Package difficulty implements the proof-of-work gate on public keys: a
// key satisfies difficulty d when SHA-256 of the key, read as a big-endian
// integer, has at least d leading zero bits.
package difficulty
