package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
)

// shareIndexRepository is the PostgreSQL-backed implementation of
// [ShareIndexRepository] over the "share_index" table.
type shareIndexRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewShareIndexRepository(db *DB, logger *logger.Logger) ShareIndexRepository {
	logger.Debug().Msg("creating share index repository")
	return &shareIndexRepository{
		db:     db,
		logger: logger,
	}
}

func (r *shareIndexRepository) IndexShares(ctx context.Context, entries []models.ShareIndexEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.db.inTx(ctx, "*shareIndexRepository.IndexShares", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertShareIndex)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		defer stmt.Close()

		for _, e := range entries {
			if _, err = stmt.ExecContext(ctx, e.Resource.String(), e.Owner.String(), uint64(e.FileID), e.FileName, e.Recipient.String()); err != nil {
				logger.FromContext(ctx).Err(err).Str("func", "*shareIndexRepository.IndexShares").Msg("error indexing share")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

func (r *shareIndexRepository) RemoveShares(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) error {
	if len(recipients) == 0 {
		return nil
	}

	query, args, err := buildDeleteShareIndexQuery(resource, fileID, recipients)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shareIndexRepository.RemoveShares").Msg("error removing index entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *shareIndexRepository) RemoveFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) error {
	if _, err := r.db.ExecContext(ctx, removeFileFromShareIndex, resource.String(), uint64(fileID)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shareIndexRepository.RemoveFile").Msg("error removing index entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *shareIndexRepository) ListByRecipient(ctx context.Context, recipient models.Principal) ([]models.ShareIndexEntry, error) {
	rows, err := r.db.QueryContext(ctx, listShareIndexByRecipient, recipient.String())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shareIndexRepository.ListByRecipient").Msg("error listing index")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ShareIndexEntry, 0)
	for rows.Next() {
		var (
			e      models.ShareIndexEntry
			fileID uint64
		)
		if err = rows.Scan(&e.Resource, &e.Owner, &fileID, &e.FileName, &e.Recipient); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.FileID = models.FileID(fileID)
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
