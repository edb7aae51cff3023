package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
)

// Storages groups every server-side repository and the chunk blob store so
// they can be handed to the service layer as one value.
type Storages struct {
	AccountRepository    AccountRepository
	UserRepository       UserRepository
	ResourceRepository   ResourceRepository
	FileRepository       FileRepository
	ShareRepository      ShareRepository
	ShareIndexRepository ShareIndexRepository
	ChunkStore           ChunkStore

	db *DB
}

// NewStorages connects to Postgres, applies migrations and opens the chunk
// store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, errors.Join(err, db.Close())
	}

	chunks, err := NewBadgerChunkStore(cfg.Files, log)
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return &Storages{
		AccountRepository:    NewAccountRepository(db, log),
		UserRepository:       NewUserRepository(db, log),
		ResourceRepository:   NewResourceRepository(db, log),
		FileRepository:       NewFileRepository(db, log),
		ShareRepository:      NewShareRepository(db, log),
		ShareIndexRepository: NewShareIndexRepository(db, log),
		ChunkStore:           chunks,
		db:                   db,
	}, nil
}

func (s *Storages) Close() error {
	var errs []error
	if s.ChunkStore != nil {
		errs = append(errs, s.ChunkStore.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("close storages: %w", err)
	}
	return nil
}
