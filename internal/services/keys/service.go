package keys

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"peerkey/internal/crypto"
	"peerkey/internal/difficulty"
	"peerkey/internal/domain"
)

var log = logrus.New()

// DefaultKeyName is the key file name used when the caller does not pick
// one.
const DefaultKeyName = "peer_private_key"

// Config selects where the identity lives and how hard its public key
// must be.
type Config struct {
	KeyName    string // key file name, default DefaultKeyName
	Difficulty int    // required leading zero bits, 0..255, default 0
}

// Service is the identity facade: it owns the loaded or generated key
// pair and exposes the operations bound to it. Immutable after New.
type Service struct {
	store      domain.KeyStore
	difficulty int

	pair  domain.KeyPair
	keyID domain.KeyID
	path  string
}

// New loads the identity key pair from the store or generates a
// conforming one and saves it. The whole load-or-generate-and-save
// sequence runs under the store's directory lock, so two processes
// sharing a datadir cannot clobber each other's keys.
//
// Generation blocks until a key satisfying cfg.Difficulty is found; the
// expected cost doubles with every difficulty step. ctx is the only way
// to bound that wait.
func New(ctx context.Context, s domain.KeyStore, cfg Config) (*Service, error) {
	if cfg.KeyName == "" {
		cfg.KeyName = DefaultKeyName
	}
	if cfg.Difficulty < 0 || cfg.Difficulty > 255 {
		return nil, fmt.Errorf("difficulty out of range: %d", cfg.Difficulty)
	}

	lock, err := s.Lock()
	if err != nil {
		return nil, fmt.Errorf("lock keys dir: %w", err)
	}
	defer lock.Close()

	pair, ok, err := s.Load(cfg.KeyName, cfg.Difficulty)
	if err != nil {
		return nil, err
	}
	if !ok {
		pair, err = generate(ctx, cfg.Difficulty)
		if err != nil {
			return nil, err
		}
		if err := s.Save(pair.Priv, cfg.KeyName); err != nil {
			return nil, err
		}
	}

	return &Service{
		store:      s,
		difficulty: cfg.Difficulty,
		pair:       pair,
		keyID:      pair.Pub.ID(),
		path:       s.Path(cfg.KeyName),
	}, nil
}

// KeyID returns the hex identity string for the own public key.
func (s *Service) KeyID() domain.KeyID { return s.keyID }

// PublicKey returns the own public key.
func (s *Service) PublicKey() domain.PublicKey { return s.pair.Pub }

// PrivateKeyPath returns where the private key lives on disk.
func (s *Service) PrivateKeyPath() string { return s.path }

// IsDifficult reports whether the own public key satisfies d.
func (s *Service) IsDifficult(d int) bool {
	return difficulty.Check(s.pair.Pub.Slice(), d)
}

// Difficulty estimates the difficulty of keyID. An empty keyID returns
// the own configured difficulty without touching the hash, which is much
// cheaper than the estimate.
func (s *Service) Difficulty(keyID domain.KeyID) (float64, error) {
	if keyID == "" {
		return float64(s.difficulty), nil
	}
	return difficulty.Estimate(keyID)
}

// Sign signs data with the own private key.
func (s *Service) Sign(data []byte) ([]byte, error) {
	return crypto.Sign(s.pair.Priv, data)
}

// Verify reports whether sig is valid over data for pub (raw or hex; nil
// means the own key). Verify never propagates primitive failures: a
// malformed key or signature is logged and reported as false.
func (s *Service) Verify(sig, data, pub []byte) bool {
	if pub == nil {
		pub = s.pair.Pub.Slice()
	}
	ok, err := crypto.Verify(pub, sig, data)
	if err != nil {
		log.Errorf("cannot verify signature: %v", err)
		return false
	}
	return ok
}

// Encrypt encrypts data with ECIES for pub (raw or hex; nil means the
// own key).
func (s *Service) Encrypt(data, pub []byte) ([]byte, error) {
	if pub == nil {
		pub = s.pair.Pub.Slice()
	}
	return crypto.Encrypt(pub, data)
}

// Decrypt decrypts ECIES data with the own private key.
func (s *Service) Decrypt(data []byte) ([]byte, error) {
	return crypto.Decrypt(s.pair.Priv, data)
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
