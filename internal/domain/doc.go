// Package domain defines the value types and interfaces shared across
// peerkey: fixed-size key material, the hex key id, and the contracts
// between the key service and its backing store.
package domain
