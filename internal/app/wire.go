package app

import (
	"context"

	"peerkey/internal/domain"
	keysvc "peerkey/internal/services/keys"
	"peerkey/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Store domain.KeyStore
	Keys  domain.KeyService
}

// NewWire constructs the dependency graph from cfg. This is where the
// identity is loaded or generated, so it can block for a long time under
// a high difficulty; ctx bounds that wait.
func NewWire(ctx context.Context, cfg Config) (*Wire, error) {
	ks, err := store.NewKeyStore(cfg.Datadir)
	if err != nil {
		return nil, err
	}

	svc, err := keysvc.New(ctx, ks, keysvc.Config{
		KeyName:    cfg.KeyName,
		Difficulty: cfg.Difficulty,
	})
	if err != nil {
		return nil, err
	}

	return &Wire{
		Store: ks,
		Keys:  svc,
	}, nil
}
