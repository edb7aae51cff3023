package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
)

// ClientStorages groups the client-side repositories backed by the local
// SQLite keystore.
type ClientStorages struct {
	KeyPairs LocalKeyPairRepository
	Sessions LocalSessionRepository

	db *DB
}

// NewClientStorages opens the keystore described by cfg.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open local keystore: %w", err)
	}

	return &ClientStorages{
		KeyPairs: NewLocalKeyPairRepository(db),
		Sessions: NewLocalSessionRepository(db),
		db:       db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
