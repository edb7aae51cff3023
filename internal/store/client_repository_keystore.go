// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
)

var (
	// ErrKeyPairNotFound is returned when this device holds no keypair for
	// the principal.
	ErrKeyPairNotFound = errors.New("keypair was not found")

	// ErrLocalSessionNotFound is returned when nobody logged in on this
	// device yet.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

const (
	insertKeyPair = `
		INSERT INTO keypairs (principal, public_key, sealed_private_key, salt)
		VALUES (?, ?, ?, ?);`

	selectKeyPair = `
		SELECT principal, public_key, sealed_private_key, salt, created_at
		FROM keypairs
		WHERE principal = ?;`

	insertSession = `
		INSERT INTO sessions (login, principal, token)
		VALUES (?, ?, ?);`

	selectLastSession = `
		SELECT login, principal, token, created_at
		FROM sessions
		ORDER BY id DESC
		LIMIT 1;`

	deleteSessions = `DELETE FROM sessions;`
)

// localKeyPairRepository is the SQLite-backed [LocalKeyPairRepository].
// Keypairs are never rotated, so a second save for a principal fails.
type localKeyPairRepository struct {
	*DB
}

func NewLocalKeyPairRepository(db *DB) LocalKeyPairRepository {
	return &localKeyPairRepository{db}
}

func (r *localKeyPairRepository) SaveKeyPair(ctx context.Context, kp models.StoredKeyPair) error {
	if _, err := r.ExecContext(ctx, insertKeyPair, kp.Principal.String(), kp.PublicKey, kp.SealedPrivateKey, kp.Salt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localKeyPairRepository.SaveKeyPair").Msg("error saving keypair")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localKeyPairRepository) GetKeyPair(ctx context.Context, principal models.Principal) (models.StoredKeyPair, error) {
	var kp models.StoredKeyPair
	err := r.QueryRowContext(ctx, selectKeyPair, principal.String()).
		Scan(&kp.Principal, &kp.PublicKey, &kp.SealedPrivateKey, &kp.Salt, &kp.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredKeyPair{}, ErrKeyPairNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localKeyPairRepository.GetKeyPair").Msg("error reading keypair")
		return models.StoredKeyPair{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return kp, nil
}

// localSessionRepository is the SQLite-backed [LocalSessionRepository].
type localSessionRepository struct {
	*DB
}

func NewLocalSessionRepository(db *DB) LocalSessionRepository {
	return &localSessionRepository{db}
}

func (r *localSessionRepository) SaveSession(ctx context.Context, s models.LocalSession) error {
	if _, err := r.ExecContext(ctx, insertSession, s.Login, s.Principal.String(), s.Token); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localSessionRepository) LastSession(ctx context.Context) (models.LocalSession, error) {
	var s models.LocalSession
	err := r.QueryRowContext(ctx, selectLastSession).Scan(&s.Login, &s.Principal, &s.Token, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

func (r *localSessionRepository) DeleteSessions(ctx context.Context) error {
	if _, err := r.ExecContext(ctx, deleteSessions); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
