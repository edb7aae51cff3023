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

// resourceRepository is the PostgreSQL-backed implementation of
// [ResourceRepository]. A row moves requested → ok | failed; only the
// provisioning worker resolves or fails it and only the owner restarts it.
type resourceRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewResourceRepository(db *DB, logger *logger.Logger) ResourceRepository {
	logger.Debug().Msg("creating resource repository")
	return &resourceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *resourceRepository) CreateResource(ctx context.Context, owner models.Principal) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createResource, owner.String()); err != nil {
		log.Err(err).Str("func", "*resourceRepository.CreateResource").Str("owner", owner.String()).Msg("error requesting resource")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrResourceExists
		case pgerrcode.ForeignKeyViolation:
			return ErrUserNotFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *resourceRepository) GetResource(ctx context.Context, owner models.Principal) (models.Resource, error) {
	return r.getResource(ctx, "*resourceRepository.GetResource", getResourceByOwner, owner.String())
}

func (r *resourceRepository) GetResourceByHandle(ctx context.Context, handle models.ResourceHandle) (models.Resource, error) {
	return r.getResource(ctx, "*resourceRepository.GetResourceByHandle", getResourceByHandle, handle.String())
}

func (r *resourceRepository) getResource(ctx context.Context, funcName, query string, arg string) (models.Resource, error) {
	log := logger.FromContext(ctx)

	resource, err := scanResource(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, ErrResourceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error getting resource")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return resource, nil
}

// ListRequested returns up to limit resources waiting for creation, oldest
// first.
func (r *resourceRepository) ListRequested(ctx context.Context, limit int) ([]models.Resource, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRequestedResources, limit)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListRequested").Msg("error listing requested resources")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		resource, scanErr := scanResource(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		resources = append(resources, resource)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return resources, nil
}

func (r *resourceRepository) CountResolved(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countResolvedResources).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*resourceRepository.CountResolved").Msg("error counting resources")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

func (r *resourceRepository) MarkResolved(ctx context.Context, owner models.Principal, handle models.ResourceHandle) error {
	return r.update(ctx, "*resourceRepository.MarkResolved", markResourceResolved, owner.String(), handle.String())
}

func (r *resourceRepository) MarkFailed(ctx context.Context, owner models.Principal, reason string) error {
	return r.update(ctx, "*resourceRepository.MarkFailed", markResourceFailed, owner.String(), reason)
}

// RestartCreation moves a failed resource back to requested. It reports false
// when the resource was not in the failed state.
func (r *resourceRepository) RestartCreation(ctx context.Context, owner models.Principal) (bool, error) {
	err := r.update(ctx, "*resourceRepository.RestartCreation", restartResourceCreation, owner.String())
	if errors.Is(err, ErrResourceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *resourceRepository) GetPublicKey(ctx context.Context, handle models.ResourceHandle) ([]byte, error) {
	log := logger.FromContext(ctx)

	var key []byte
	err := r.db.QueryRowContext(ctx, getResourcePublicKey, handle.String()).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.GetPublicKey").Msg("error reading public key")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return key, nil
}

func (r *resourceRepository) SetPublicKey(ctx context.Context, handle models.ResourceHandle, publicKey []byte) error {
	return r.update(ctx, "*resourceRepository.SetPublicKey", setResourcePublicKey, handle.String(), publicKey)
}

// update runs a single-row UPDATE and maps "no row matched" to
// [ErrResourceNotFound].
func (r *resourceRepository) update(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating resource")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().Str("func", funcName).Msg("no resource row matched")
		return ErrResourceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (models.Resource, error) {
	var (
		resource models.Resource
		handle   sql.NullString
	)
	if err := row.Scan(&resource.Owner, &handle, &resource.State, &resource.Reason, &resource.Attempts, &resource.CreatedAt, &resource.UpdatedAt); err != nil {
		return models.Resource{}, err
	}
	resource.Handle = models.ResourceHandle(handle.String)

	return resource, nil
}
