// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
)

// ErrNamespaceNotFound is returned when a chunk is written for a resource
// whose blob namespace has not been created.
var ErrNamespaceNotFound = errors.New("blob namespace was not found")

// badgerChunkStore is the badger-backed implementation of [ChunkStore].
//
// Keys:
//
//	ns/<resource>                       namespace marker
//	chunk/<resource>/<file>/<chunk>     encrypted chunk bytes
type badgerChunkStore struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerChunkStore opens the chunk store in cfg.BinaryDataDir, or in
// memory when cfg.InMemory is set.
func NewBadgerChunkStore(cfg config.Files, log *logger.Logger) (ChunkStore, error) {
	opts := badger.DefaultOptions(cfg.BinaryDataDir)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil
	opts.ValueLogFileSize = 100 << 20

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "NewBadgerChunkStore").Msg("error opening chunk store")
		return nil, fmt.Errorf("%w: %w", ErrBlobStore, err)
	}
	log.Info().Str("func", "NewBadgerChunkStore").Bool("in_memory", cfg.InMemory).Msg("chunk store opened")

	return &badgerChunkStore{db: db, logger: log}, nil
}

func namespaceKey(resource models.ResourceHandle) []byte {
	return []byte("ns/" + resource.String())
}

func filePrefix(resource models.ResourceHandle, fileID models.FileID) []byte {
	return fmt.Appendf(nil, "chunk/%s/%d/", resource, fileID)
}

func chunkKey(resource models.ResourceHandle, fileID models.FileID, chunkID uint64) []byte {
	return fmt.Appendf(filePrefix(resource, fileID), "%d", chunkID)
}

func (s *badgerChunkStore) CreateNamespace(ctx context.Context, resource models.ResourceHandle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(namespaceKey(resource), []byte{1})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerChunkStore.CreateNamespace").Msg("error creating namespace")
		return fmt.Errorf("%w: %w", ErrBlobStore, err)
	}

	return nil
}

// PutChunk stores data, overwriting any previous value under the same key.
func (s *badgerChunkStore) PutChunk(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, chunkID uint64, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(namespaceKey(resource)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNamespaceNotFound
			}
			return err
		}
		return txn.Set(chunkKey(resource, fileID, chunkID), data)
	})
	if errors.Is(err, ErrNamespaceNotFound) {
		return err
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerChunkStore.PutChunk").Msg("error writing chunk")
		return fmt.Errorf("%w: %w", ErrBlobStore, err)
	}

	return nil
}

func (s *badgerChunkStore) GetChunk(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, chunkID uint64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chunkKey(resource, fileID, chunkID))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrChunkNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerChunkStore.GetChunk").Msg("error reading chunk")
		return nil, fmt.Errorf("%w: %w", ErrBlobStore, err)
	}

	return data, nil
}

// DeleteFile removes every chunk of the file. Deleting a file without chunks
// is not an error.
func (s *badgerChunkStore) DeleteFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	prefix := filePrefix(resource, fileID)

	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBlobStore, err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for _, key := range keys {
		if err = wb.Delete(key); err != nil {
			return fmt.Errorf("%w: %w", ErrBlobStore, err)
		}
	}
	if err = wb.Flush(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*badgerChunkStore.DeleteFile").Msg("error deleting chunks")
		return fmt.Errorf("%w: %w", ErrBlobStore, err)
	}

	return nil
}

func (s *badgerChunkStore) Close() error {
	return s.db.Close()
}
