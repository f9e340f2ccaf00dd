// Package store persists the identity private key: keys-directory
// resolution, load-and-check against the difficulty gate, and
// backup-before-overwrite saves. The on-disk format is the raw 32 private
// key bytes, no framing.
package store
