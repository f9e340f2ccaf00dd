// Package memzero wipes private key material once it is no longer
// needed: rejected key file contents and generation candidates that fail
// the difficulty gate.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way. Best
// effort only; the compiler gives no wiping guarantee.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
