package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	fslock "github.com/ipfs/go-fs-lock"
	"github.com/sirupsen/logrus"

	"peerkey/internal/crypto"
	"peerkey/internal/difficulty"
	"peerkey/internal/domain"
	"peerkey/internal/util/memzero"
)

var log = logrus.New()

const (
	// keysSubdir is appended to the datadir; every key and backup file
	// lives under it.
	keysSubdir = "keys"
	// lockFileName guards the load-or-generate-and-save sequence against
	// concurrent processes sharing a datadir.
	lockFileName = "keys.lock"
)

// KeyStore persists the identity private key under <datadir>/keys.
type KeyStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeyStore resolves and creates the keys directory for datadir. An
// empty datadir falls back to the platform data home. Creation failure
// is fatal to construction.
func NewKeyStore(datadir string) (*KeyStore, error) {
	if datadir == "" {
		datadir = filepath.Join(xdg.DataHome, "peerkey", "default")
	}
	dir := filepath.Join(datadir, keysSubdir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create keys dir: %w", err)
	}
	return &KeyStore{dir: dir}, nil
}

// Dir returns the resolved keys directory.
func (s *KeyStore) Dir() string { return s.dir }

// Path returns the key file path for name.
func (s *KeyStore) Path(name string) string { return filepath.Join(s.dir, name) }

// Lock takes an exclusive flock on the keys directory.
func (s *KeyStore) Lock() (io.Closer, error) {
	return fslock.Lock(s.dir, lockFileName)
}

// Load reads the key file for name and checks it against difficulty.
// A missing file, a file of the wrong size and a key that fails the
// difficulty gate all report ok == false: the caller generates a fresh
// pair instead.
func (s *KeyStore) Load(name string, d int) (domain.KeyPair, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := readFile(s.Path(name))
	if err != nil {
		return domain.KeyPair{}, false, fmt.Errorf("read key file: %w", err)
	}
	if raw == nil {
		return domain.KeyPair{}, false, nil
	}

	priv, err := domain.NewPrivateKey(raw)
	if err != nil {
		log.Errorf("wrong loaded private key size: %d", len(raw))
		memzero.Zero(raw)
		return domain.KeyPair{}, false, nil
	}
	memzero.Zero(raw)

	pub, err := crypto.PublicFromPrivate(priv)
	if err != nil {
		log.Errorf("loaded private key is unusable: %v", err)
		return domain.KeyPair{}, false, nil
	}
	if !difficulty.Check(pub.Slice(), d) {
		log.Warn("loaded key is not difficult enough")
		return domain.KeyPair{}, false, nil
	}
	return domain.KeyPair{Priv: priv, Pub: pub}, true, nil
}

// Save writes priv to the key file for name. An existing file is renamed
// to a timestamped .bak first, never overwritten silently. The rename and
// the write are sequential, not atomic as a pair.
func (s *KeyStore) Save(priv domain.PrivateKey, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(name)
	if err := s.backup(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, priv.Slice(), 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

// backup renames an existing file at path to
// <name dots replaced by underscores>_<YYYY-MM-DD_HH-MM-SS_microseconds>.bak.
func (s *KeyStore) backup(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat key file: %w", err)
	}

	log.Info("backing up existing private key")
	now := time.Now()
	name := fmt.Sprintf("%s_%s_%06d.bak",
		strings.ReplaceAll(filepath.Base(path), ".", "_"),
		now.Format("2006-01-02_15-04-05"),
		now.Nanosecond()/1000)
	if err := os.Rename(path, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("back up key file: %w", err)
	}
	return nil
}

// Compile-time assertion that KeyStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyStore)(nil)
