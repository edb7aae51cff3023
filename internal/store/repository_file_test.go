package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
)

var fileCols = []string{"file_id", "file_name", "content_type", "status", "num_chunks", "uploaded_chunks",
	"owner_key", "alias", "uploader", "requested_at", "uploaded_at"}

func newTestFileRepo(t *testing.T) (*fileRepository, sqlmock.Sqlmock) {
	db, mock, _ := newMockDB(t)
	return &fileRepository{db: db, logger: logger.Nop()}, mock
}

func testUpload(numChunks uint64) models.FileUpload {
	return models.FileUpload{
		FileName:    "report.pdf",
		ContentType: "application/pdf",
		Content:     []byte("chunk-zero"),
		NumChunks:   numChunks,
		OwnerKey:    models.WrappedKey{1, 2, 3},
	}
}

// ── CreateFile ────────────────────────────────────────────────────────────────

func TestCreateFile_MultiChunk(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("status <> 'pending'").
		WithArgs(testResource.String(), "report.pdf").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SET next_file_id").
		WithArgs(testResource.String()).
		WillReturnRows(sqlmock.NewRows([]string{"next_file_id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO files").
		WithArgs(testResource.String(), 7, "report.pdf", "application/pdf", "partially_uploaded", 3, []byte{1, 2, 3}, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO file_chunks").
		WithArgs(testResource.String(), 7, 0, len("chunk-zero")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var putID models.FileID
	id, err := repo.CreateFile(context.Background(), testResource, testUpload(3), func(id models.FileID) error {
		putID = id
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.FileID(7), id)
	assert.Equal(t, models.FileID(7), putID)
}

func TestCreateFile_SingleChunkIsUploaded(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("status <> 'pending'").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SET next_file_id").WillReturnRows(sqlmock.NewRows([]string{"next_file_id"}).AddRow(1))
	mock.ExpectExec("INSERT INTO files").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "uploaded", 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO file_chunks").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := repo.CreateFile(context.Background(), testResource, testUpload(1), func(models.FileID) error { return nil })
	require.NoError(t, err)
}

func TestCreateFile_AlreadyExists(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("status <> 'pending'").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	called := false
	_, err := repo.CreateFile(context.Background(), testResource, testUpload(2), func(models.FileID) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)
	assert.False(t, called, "chunk must not be written for a rejected file")
}

func TestCreateFile_BlobFailureRollsBack(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("status <> 'pending'").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SET next_file_id").WillReturnRows(sqlmock.NewRows([]string{"next_file_id"}).AddRow(2))
	mock.ExpectExec("INSERT INTO files").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO file_chunks").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	_, err := repo.CreateFile(context.Background(), testResource, testUpload(2), func(models.FileID) error {
		return errors.New("disk full")
	})
	assert.ErrorIs(t, err, ErrBlobStore)
}

func TestCreateFile_UnknownResource(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("status <> 'pending'").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SET next_file_id").WillReturnRows(sqlmock.NewRows([]string{"next_file_id"}))
	mock.ExpectRollback()

	_, err := repo.CreateFile(context.Background(), testResource, testUpload(2), func(models.FileID) error { return nil })
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

// ── RequestFile / ClaimFile ───────────────────────────────────────────────────

func TestRequestFile(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SET next_file_id").WillReturnRows(sqlmock.NewRows([]string{"next_file_id"}).AddRow(4))
	mock.ExpectExec("INSERT INTO files").
		WithArgs(testResource.String(), 4, "scan.png", "alias-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.RequestFile(context.Background(), testResource, "scan.png", "alias-1")
	require.NoError(t, err)
	assert.Equal(t, models.FileID(4), id)
}

func TestClaimFile_Success(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(testResource.String(), 4).
		WillReturnRows(sqlmock.NewRows([]string{"status", "num_chunks"}).AddRow("pending", 0))
	mock.ExpectExec("alias = NULL").
		WithArgs(testResource.String(), 4, "application/pdf", "partially_uploaded", 2, []byte{1, 2, 3}, "claimer", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO file_chunks").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	status, err := repo.ClaimFile(context.Background(), testResource, 4, "claimer", testUpload(2), func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, models.FileStatusPartiallyUploaded, status)
}

func TestClaimFile_Rejections(t *testing.T) {
	tests := []struct {
		name string
		rows *sqlmock.Rows
		want error
	}{
		{"unknown file", sqlmock.NewRows([]string{"status", "num_chunks"}), ErrNotRequested},
		{"already claimed", sqlmock.NewRows([]string{"status", "num_chunks"}).AddRow("partially_uploaded", 2), ErrAlreadyUploaded},
		{"already uploaded", sqlmock.NewRows([]string{"status", "num_chunks"}).AddRow("uploaded", 1), ErrAlreadyUploaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestFileRepo(t)
			mock.ExpectBegin()
			mock.ExpectQuery("FOR UPDATE").WillReturnRows(tt.rows)
			mock.ExpectRollback()

			_, err := repo.ClaimFile(context.Background(), testResource, 4, "claimer", testUpload(2), func() error {
				t.Fatal("put must not be called")
				return nil
			})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── AddChunk ──────────────────────────────────────────────────────────────────

func TestAddChunk_LastChunkCompletesFile(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(testResource.String(), 7).
		WillReturnRows(sqlmock.NewRows([]string{"status", "num_chunks"}).AddRow("partially_uploaded", 3))
	mock.ExpectExec("INSERT INTO file_chunks").
		WithArgs(testResource.String(), 7, 2, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SET uploaded_chunks").
		WithArgs(testResource.String(), 7).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("uploaded"))
	mock.ExpectCommit()

	status, err := repo.AddChunk(context.Background(), testResource, 7, 2, 10, func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, models.FileStatusUploaded, status)
}

func TestAddChunk_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		chunkID uint64
		want    error
	}{
		{"file not found", sqlmock.NewRows([]string{"status", "num_chunks"}), 1, ErrFileNotFound},
		{"already uploaded", sqlmock.NewRows([]string{"status", "num_chunks"}).AddRow("uploaded", 3), 1, ErrAlreadyUploaded},
		{"not claimed", sqlmock.NewRows([]string{"status", "num_chunks"}).AddRow("pending", 0), 1, ErrNotClaimed},
		{"out of bounds", sqlmock.NewRows([]string{"status", "num_chunks"}).AddRow("partially_uploaded", 3), 3, ErrChunkOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestFileRepo(t)
			mock.ExpectBegin()
			mock.ExpectQuery("FOR UPDATE").WillReturnRows(tt.rows)
			mock.ExpectRollback()

			_, err := repo.AddChunk(context.Background(), testResource, 7, tt.chunkID, 10, func() error {
				t.Fatal("put must not be called")
				return nil
			})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAddChunk_Duplicate(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"status", "num_chunks"}).AddRow("partially_uploaded", 3))
	mock.ExpectExec("INSERT INTO file_chunks").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.AddChunk(context.Background(), testResource, 7, 1, 10, func() error { return nil })
	assert.ErrorIs(t, err, ErrChunkAlreadyUploaded)
}

// ── reads / delete ────────────────────────────────────────────────────────────

func TestGetFileByAlias(t *testing.T) {
	repo, mock := newTestFileRepo(t)
	requested := time.Now()

	mock.ExpectQuery("WHERE alias").
		WithArgs("alias-1").
		WillReturnRows(sqlmock.NewRows(append([]string{"resource"}, fileCols...)).
			AddRow(testResource.String(), 4, "scan.png", "", "pending", 0, 0, nil, "alias-1", nil, requested, nil))

	resource, file, err := repo.GetFileByAlias(context.Background(), "alias-1")
	require.NoError(t, err)
	assert.Equal(t, testResource, resource)
	assert.Equal(t, models.FileStatusPending, file.Status)
	assert.Equal(t, "alias-1", file.Alias)
	require.NotNil(t, file.RequestedAt)
	assert.Nil(t, file.UploadedAt)
}

func TestGetFileByAlias_NotFound(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery("WHERE alias").WillReturnRows(sqlmock.NewRows(append([]string{"resource"}, fileCols...)))

	_, _, err := repo.GetFileByAlias(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestListFiles(t *testing.T) {
	repo, mock := newTestFileRepo(t)
	now := time.Now()

	mock.ExpectQuery("ORDER BY file_id").
		WithArgs(testResource.String()).
		WillReturnRows(sqlmock.NewRows(fileCols).
			AddRow(1, "a.txt", "text/plain", "uploaded", 1, 1, []byte{1}, nil, nil, nil, now).
			AddRow(2, "b.bin", "", "pending", 0, 0, nil, "alias-2", nil, now, nil))

	files, err := repo.ListFiles(context.Background(), testResource)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.True(t, files[0].Downloadable())
	assert.Equal(t, models.WrappedKey{1}, files[0].OwnerKey)
	assert.NotNil(t, files[0].SharedWith)
	assert.Equal(t, "alias-2", files[1].Alias)
}

func TestDeleteFile(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectExec("DELETE FROM files").WithArgs(testResource.String(), 1).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteFile(context.Background(), testResource, 1))

	mock.ExpectExec("DELETE FROM files").WithArgs(testResource.String(), 1).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteFile(context.Background(), testResource, 1), ErrFileNotFound)
}
