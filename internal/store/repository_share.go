package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
)

// shareRepository is the PostgreSQL-backed implementation of
// [ShareRepository] over the "file_shares" table.
type shareRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		db:     db,
		logger: logger,
	}
}

// AddShares grants every recipient access in one transaction. Granting to an
// existing recipient replaces its wrapped key.
func (r *shareRepository) AddShares(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, grants []models.ShareGrant) error {
	err := r.db.inTx(ctx, "*shareRepository.AddShares", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertShare)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		defer stmt.Close()

		for _, g := range grants {
			if _, err = stmt.ExecContext(ctx, resource.String(), uint64(fileID), g.Recipient.String(), []byte(g.WrappedKey)); err != nil {
				switch postgresError(err) {
				case pgerrcode.ForeignKeyViolation:
					if constraintName(err) == "file_shares_recipient_fkey" {
						return ErrUserNotFound
					}
					return ErrFileNotFound
				default:
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
			}
		}

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*shareRepository.AddShares").
			Uint64("file_id", uint64(fileID)).
			Int("grants", len(grants)).
			Msg("error adding shares")
		return err
	}

	return nil
}

// RemoveShares deletes the ACL entries and wrapped keys of recipients in one
// transaction. Recipients without an entry are ignored.
func (r *shareRepository) RemoveShares(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) error {
	if len(recipients) == 0 {
		return nil
	}

	query, args, err := buildDeleteSharesQuery(resource, fileID, recipients)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.inTx(ctx, "*shareRepository.RemoveShares", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*shareRepository.RemoveShares").Msg("error removing shares")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (r *shareRepository) GetWrappedKey(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, recipient models.Principal) (models.WrappedKey, error) {
	var key []byte
	err := r.db.QueryRowContext(ctx, getWrappedKey, resource.String(), uint64(fileID), recipient.String()).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShareNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shareRepository.GetWrappedKey").Msg("error reading wrapped key")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return key, nil
}

func (r *shareRepository) ListRecipients(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) ([]models.Principal, error) {
	rows, err := r.db.QueryContext(ctx, listRecipients, resource.String(), uint64(fileID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shareRepository.ListRecipients").Msg("error listing recipients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipients := make([]models.Principal, 0)
	for rows.Next() {
		var p models.Principal
		if err = rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipients = append(recipients, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipients, nil
}

// ListRecipientsOf groups the recipients of several files of one resource.
// Files without recipients are absent from the map.
func (r *shareRepository) ListRecipientsOf(ctx context.Context, resource models.ResourceHandle, fileIDs []models.FileID) (map[models.FileID][]models.Principal, error) {
	out := make(map[models.FileID][]models.Principal)
	if len(fileIDs) == 0 {
		return out, nil
	}

	query, args, err := buildListRecipientsQuery(resource, fileIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shareRepository.ListRecipientsOf").Msg("error listing recipients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			fileID    uint64
			recipient models.Principal
		)
		if err = rows.Scan(&fileID, &recipient); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out[models.FileID(fileID)] = append(out[models.FileID(fileID)], recipient)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}
