package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
)

// fileRepository is the PostgreSQL-backed implementation of [FileRepository].
// File ids come from the per-resource counter in "resources" and the
// "file_chunks" table indexes which chunk ids are stored.
type fileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFile stores a new file together with chunk 0. A file that fits in a
// single chunk is uploaded right away.
func (r *fileRepository) CreateFile(ctx context.Context, resource models.ResourceHandle, upload models.FileUpload, put func(models.FileID) error) (models.FileID, error) {
	log := logger.FromContext(ctx)

	var fileID models.FileID
	err := r.db.inTx(ctx, "*fileRepository.CreateFile", func(tx *sql.Tx) error {
		var existing int
		if err := tx.QueryRowContext(ctx, countUploadedByName, resource.String(), upload.FileName).Scan(&existing); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if existing > 0 {
			return ErrFileAlreadyExists
		}

		id, err := allocateFileID(ctx, tx, resource)
		if err != nil {
			return err
		}

		status, uploadedAt := statusAfterFirstChunk(upload.NumChunks)
		if _, err = tx.ExecContext(ctx, insertFile, resource.String(), uint64(id), upload.FileName, upload.ContentType,
			string(status), upload.NumChunks, []byte(upload.OwnerKey), uploadedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err = tx.ExecContext(ctx, insertChunk, resource.String(), uint64(id), uint64(0), len(upload.Content)); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = put(id); err != nil {
			return fmt.Errorf("%w: %w", ErrBlobStore, err)
		}

		fileID = id
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.CreateFile").Str("file_name", upload.FileName).Msg("error creating file")
		return 0, err
	}

	return fileID, nil
}

// RequestFile reserves a file id for an upload by someone else. The file
// stays pending until the alias is claimed.
func (r *fileRepository) RequestFile(ctx context.Context, resource models.ResourceHandle, fileName, alias string) (models.FileID, error) {
	var fileID models.FileID
	err := r.db.inTx(ctx, "*fileRepository.RequestFile", func(tx *sql.Tx) error {
		id, err := allocateFileID(ctx, tx, resource)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, insertRequestedFile, resource.String(), uint64(id), fileName, alias); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		fileID = id
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileRepository.RequestFile").Msg("error requesting file")
		return 0, err
	}

	return fileID, nil
}

func (r *fileRepository) GetFileByAlias(ctx context.Context, alias string) (models.ResourceHandle, models.FileRecord, error) {
	var resource models.ResourceHandle
	row := r.db.QueryRowContext(ctx, getFileByAlias, alias)

	file, err := scanFile(row, &resource)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.FileRecord{}, ErrFileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileRepository.GetFileByAlias").Msg("error reading file by alias")
		return "", models.FileRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return resource, file, nil
}

// ClaimFile turns a pending file into an upload by claimer carrying chunk 0.
// The alias is consumed.
func (r *fileRepository) ClaimFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, claimer models.Principal, upload models.FileUpload, put func() error) (models.FileStatus, error) {
	var status models.FileStatus
	err := r.db.inTx(ctx, "*fileRepository.ClaimFile", func(tx *sql.Tx) error {
		current, _, err := lockFileRow(ctx, tx, resource, fileID)
		if errors.Is(err, ErrFileNotFound) {
			return ErrNotRequested
		}
		if err != nil {
			return err
		}
		if current != models.FileStatusPending {
			return ErrAlreadyUploaded
		}

		next, uploadedAt := statusAfterFirstChunk(upload.NumChunks)
		if _, err = tx.ExecContext(ctx, claimFile, resource.String(), uint64(fileID), upload.ContentType, string(next),
			upload.NumChunks, []byte(upload.OwnerKey), claimer.String(), uploadedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err = tx.ExecContext(ctx, insertChunk, resource.String(), uint64(fileID), uint64(0), len(upload.Content)); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = put(); err != nil {
			return fmt.Errorf("%w: %w", ErrBlobStore, err)
		}

		status = next
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileRepository.ClaimFile").Uint64("file_id", uint64(fileID)).Msg("error claiming file")
		return "", err
	}

	return status, nil
}

func (r *fileRepository) GetFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) (models.FileRecord, error) {
	file, err := scanFile(r.db.QueryRowContext(ctx, getFile, resource.String(), uint64(fileID)), nil)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FileRecord{}, ErrFileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileRepository.GetFile").Msg("error reading file")
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return file, nil
}

// ListFiles returns every record of the resource, pending ones included.
// SharedWith is left empty.
func (r *fileRepository) ListFiles(ctx context.Context, resource models.ResourceHandle) ([]models.FileRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFiles, resource.String())
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListFiles").Msg("error listing files")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.FileRecord, 0)
	for rows.Next() {
		file, scanErr := scanFile(rows, nil)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*fileRepository.ListFiles").Msg("error scanning file row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		files = append(files, file)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return files, nil
}

// AddChunk indexes chunk chunkID and writes its bytes through put. The file
// becomes uploaded when its last missing chunk arrives.
//
// Checks, in order: the file exists, it is not uploaded yet, it has been
// claimed, the chunk id is in range and the chunk is not stored yet.
func (r *fileRepository) AddChunk(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, chunkID uint64, size int, put func() error) (models.FileStatus, error) {
	var status models.FileStatus
	err := r.db.inTx(ctx, "*fileRepository.AddChunk", func(tx *sql.Tx) error {
		current, numChunks, err := lockFileRow(ctx, tx, resource, fileID)
		if err != nil {
			return err
		}

		switch {
		case current == models.FileStatusUploaded:
			return ErrAlreadyUploaded
		case current == models.FileStatusPending:
			return ErrNotClaimed
		case chunkID >= numChunks:
			return ErrChunkOutOfBounds
		}

		res, err := tx.ExecContext(ctx, insertChunk, resource.String(), uint64(fileID), chunkID, size)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrChunkAlreadyUploaded
		}

		if err = put(); err != nil {
			return fmt.Errorf("%w: %w", ErrBlobStore, err)
		}

		var next string
		if err = tx.QueryRowContext(ctx, advanceUploadedChunks, resource.String(), uint64(fileID)).Scan(&next); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		status = models.FileStatus(next)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "*fileRepository.AddChunk").
			Uint64("file_id", uint64(fileID)).
			Uint64("chunk_id", chunkID).
			Msg("chunk rejected")
		return "", err
	}

	return status, nil
}

// DeleteFile removes the record. Chunk index rows and ACL entries go with it
// through ON DELETE CASCADE.
func (r *fileRepository) DeleteFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) error {
	res, err := r.db.ExecContext(ctx, deleteFile, resource.String(), uint64(fileID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileRepository.DeleteFile").Msg("error deleting file")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrFileNotFound
	}

	return nil
}

func allocateFileID(ctx context.Context, tx *sql.Tx, resource models.ResourceHandle) (models.FileID, error) {
	var id uint64
	err := tx.QueryRowContext(ctx, nextFileID, resource.String()).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrResourceNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.FileID(id), nil
}

func lockFileRow(ctx context.Context, tx *sql.Tx, resource models.ResourceHandle, fileID models.FileID) (models.FileStatus, uint64, error) {
	var (
		status    string
		numChunks uint64
	)
	err := tx.QueryRowContext(ctx, lockFile, resource.String(), uint64(fileID)).Scan(&status, &numChunks)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, ErrFileNotFound
	}
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.FileStatus(status), numChunks, nil
}

func statusAfterFirstChunk(numChunks uint64) (models.FileStatus, *time.Time) {
	if numChunks <= 1 {
		now := time.Now().UTC()
		return models.FileStatusUploaded, &now
	}
	return models.FileStatusPartiallyUploaded, nil
}

// scanFile reads the fileColumns projection. When resource is non-nil the
// row starts with the resource column.
func scanFile(row rowScanner, resource *models.ResourceHandle) (models.FileRecord, error) {
	var (
		file        models.FileRecord
		fileID      uint64
		status      string
		ownerKey    []byte
		alias       sql.NullString
		uploader    sql.NullString
		requestedAt sql.NullTime
		uploadedAt  sql.NullTime
	)

	dest := []any{&fileID, &file.FileName, &file.ContentType, &status, &file.NumChunks, &file.UploadedChunks,
		&ownerKey, &alias, &uploader, &requestedAt, &uploadedAt}
	if resource != nil {
		dest = append([]any{resource}, dest...)
	}

	if err := row.Scan(dest...); err != nil {
		return models.FileRecord{}, err
	}

	file.FileID = models.FileID(fileID)
	file.Status = models.FileStatus(status)
	file.OwnerKey = ownerKey
	file.Alias = alias.String
	file.Uploader = models.Principal(uploader.String)
	file.SharedWith = []models.PublicUser{}
	if requestedAt.Valid {
		file.RequestedAt = &requestedAt.Time
	}
	if uploadedAt.Valid {
		file.UploadedAt = &uploadedAt.Time
	}

	return file, nil
}
