package domain

import "io"

// KeyStore persists the identity private key on disk.
type KeyStore interface {
	// Path returns the absolute path of the key file for name.
	Path(name string) string

	// Lock takes an exclusive lock on the keys directory. The returned
	// closer releases it.
	Lock() (io.Closer, error)

	// Load reads the key file for name and checks it against difficulty.
	// A missing, malformed or insufficiently difficult key reports
	// ok == false without an error.
	Load(name string, difficulty int) (pair KeyPair, ok bool, err error)

	// Save writes priv to the key file for name, renaming any existing
	// file to a timestamped backup first.
	Save(priv PrivateKey, name string) error
}

// KeyService exposes the operations bound to the peer's identity key pair.
type KeyService interface {
	KeyID() KeyID
	PublicKey() PublicKey
	PrivateKeyPath() string

	// IsDifficult reports whether the own public key satisfies difficulty.
	IsDifficult(difficulty int) bool
	// Difficulty estimates the difficulty of keyID, or returns the own
	// configured difficulty when keyID is empty.
	Difficulty(keyID KeyID) (float64, error)

	Sign(data []byte) ([]byte, error)
	// Verify reports whether sig is a valid signature over data. pub may
	// be raw or hex public key bytes; nil means the own key. Verify never
	// fails: malformed inputs are logged and reported as false.
	Verify(sig, data, pub []byte) bool
	// Encrypt encrypts data with ECIES for pub (raw or hex; nil means the
	// own key).
	Encrypt(data, pub []byte) ([]byte, error)
	Decrypt(data []byte) ([]byte, error)
}
