// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-file-vault/internal/adapter"
	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/crypto"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
	"golang.org/x/sync/errgroup"
)

type clientTransferService struct {
	storage  adapter.StorageAdapter
	envelope crypto.EnvelopeCrypto
	keys     ClientKeyService
	logger   *logger.Logger

	chunkSize   int
	maxFileSize int
	concurrency int
}

func NewClientTransferService(storage adapter.StorageAdapter, envelope crypto.EnvelopeCrypto, keys ClientKeyService, cfg config.ClientTransfer, logger *logger.Logger) ClientTransferService {
	s := &clientTransferService{
		storage:     storage,
		envelope:    envelope,
		keys:        keys,
		logger:      logger,
		chunkSize:   cfg.ChunkSize,
		maxFileSize: cfg.MaxFileSize,
		concurrency: cfg.UploadConcurrency,
	}
	if s.chunkSize <= 0 {
		s.chunkSize = config.DefaultChunkSize
	}
	if s.maxFileSize <= 0 {
		s.maxFileSize = config.DefaultMaxFileSize
	}
	if s.concurrency <= 0 || s.concurrency > config.MaxUploadConcurrency {
		s.concurrency = config.MaxUploadConcurrency
	}

	return s
}

// Upload encrypts the content, sends chunk 0 with the create (or claim) call
// and the remaining chunks through a bounded worker pool.
//
// abort is checked before each chunk is dispatched and again right before it
// is sent, so once abort is observed no further chunk leaves the client.
// Cancelling ctx stops dispatch the same way. Calls already sent are not
// cancelled and run to completion.
func (s *clientTransferService) Upload(ctx context.Context, req models.UploadRequest, abort *models.AbortToken) (models.UploadResult, error) {
	result := models.UploadResult{Phase: models.UploadLocal}

	recipientKey := req.RecipientPublicKey
	if len(recipientKey) == 0 {
		if req.Alias != "" {
			return failed(result), fmt.Errorf("%w: resource owner has no public key", ErrNoSuchRecipient)
		}
		own, err := s.keys.OwnPublicKey(ctx)
		if err != nil {
			return failed(result), err
		}
		recipientKey = own
	}

	fileKey, err := s.envelope.GenerateFileKey()
	if err != nil {
		return failed(result), fmt.Errorf("error generating file key: %w", err)
	}
	ciphertext, err := s.envelope.EncryptContent(fileKey, req.Content)
	if err != nil {
		return failed(result), fmt.Errorf("error encrypting content: %w", err)
	}
	if len(ciphertext) > s.maxFileSize {
		return failed(result), fmt.Errorf("%w: %d bytes encrypted, limit is %d", ErrFileTooLarge, len(ciphertext), s.maxFileSize)
	}
	wrapped, err := s.envelope.WrapKey(fileKey, recipientKey)
	if err != nil {
		return failed(result), fmt.Errorf("error wrapping file key: %w", err)
	}

	chunks := splitChunks(ciphertext, s.chunkSize)
	result.NumChunks = uint64(len(chunks))

	stopped := func() bool { return abort.Aborted() || ctx.Err() != nil }
	sendCtx := context.WithoutCancel(ctx)

	if stopped() {
		result.Phase = models.UploadAborted
		return result, nil
	}

	result.Phase = models.UploadSubmitting
	fileID, err := s.submit(sendCtx, req, models.FileUpload{
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Content:     chunks[0],
		NumChunks:   result.NumChunks,
		OwnerKey:    wrapped,
	})
	if err != nil {
		return failed(result), err
	}
	result.FileID = fileID
	result.Delivered = 1

	log := s.logger.With().
		Str("resource", req.Resource.String()).
		Uint64("file_id", uint64(fileID)).
		Uint64("num_chunks", result.NumChunks).
		Logger()

	result.Phase = models.UploadContinuingChunks
	var delivered atomic.Uint64
	delivered.Store(1)

	g, gctx := errgroup.WithContext(sendCtx)
	g.SetLimit(s.concurrency)

	for i := 1; i < len(chunks); i++ {
		if stopped() || gctx.Err() != nil {
			break
		}

		chunkID, contents := uint64(i), chunks[i]
		g.Go(func() error {
			if stopped() {
				return nil
			}
			if err := s.sendChunk(gctx, req.Resource, fileID, chunkID, contents); err != nil {
				return fmt.Errorf("chunk %d: %w", chunkID, err)
			}
			delivered.Add(1)
			return nil
		})
	}

	err = g.Wait()
	result.Delivered = delivered.Load()

	// A transport that still honours the caller's cancellation reports it as
	// a chunk error; that is an abort, not a failure.
	if err != nil && stopped() && errors.Is(err, context.Canceled) {
		err = nil
	}

	switch {
	case err != nil:
		log.Err(err).Uint64("delivered", result.Delivered).Msg("upload failed")
		return failed(result), err
	case result.Delivered == result.NumChunks:
		result.Phase = models.UploadUploaded
		log.Info().Msg("upload finished")
		return result, nil
	case stopped():
		result.Phase = models.UploadAborted
		log.Info().Uint64("delivered", result.Delivered).Msg("upload aborted")
		return result, nil
	default:
		return failed(result), fmt.Errorf("upload incomplete: %d of %d chunks delivered", result.Delivered, result.NumChunks)
	}
}

func (s *clientTransferService) submit(ctx context.Context, req models.UploadRequest, upload models.FileUpload) (models.FileID, error) {
	var (
		resp models.CreateFileResponse
		err  error
	)
	if req.Alias != "" {
		resp, err = s.storage.ClaimRequest(ctx, req.Resource, req.Alias, upload)
	} else {
		resp, err = s.storage.CreateFile(ctx, req.Resource, upload)
	}
	if err != nil {
		return 0, mapAdapterError(err)
	}

	switch resp.Kind {
	case models.CreateFileOK:
		return resp.FileID, nil
	case models.CreateFileAlreadyExists:
		return 0, fmt.Errorf("%w: %s", ErrFileAlreadyExists, req.FileName)
	case models.CreateFileNotRequested:
		return 0, ErrNotRequested
	case models.CreateFileAlreadyUploaded:
		return 0, ErrAlreadyUploaded
	default:
		return 0, unknownResponse("create file", resp.Kind)
	}
}

func (s *clientTransferService) sendChunk(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, chunkID uint64, contents []byte) error {
	resp, err := s.storage.UploadChunk(ctx, resource, fileID, chunkID, contents)
	if err != nil {
		return mapAdapterError(err)
	}

	switch resp.Kind {
	case models.UploadChunkOK:
		return nil
	case models.UploadChunkChunkAlreadyUploaded:
		// Delivery is idempotent: the chunk is already there.
		return nil
	case models.UploadChunkFileNotFound:
		return ErrFileNotFound
	case models.UploadChunkAlreadyUploaded:
		return ErrAlreadyUploaded
	case models.UploadChunkOutOfBounds:
		return ErrChunkOutOfBounds
	case models.UploadChunkNotClaimed:
		return ErrNotClaimed
	default:
		return unknownResponse("upload chunk", resp.Kind)
	}
}

// Download fetches chunks in order, then unwraps the file key and decrypts.
func (s *clientTransferService) Download(ctx context.Context, ref models.FileRef, progress func(models.Progress)) (models.DownloadedFile, error) {
	report := func(p models.Progress) {
		if progress != nil {
			progress(p)
		}
	}
	report(models.Progress{Phase: models.ProgressInitializing})

	if err := s.checkStatus(ctx, &ref); err != nil {
		return models.DownloadedFile{}, err
	}

	first, err := s.fetchChunk(ctx, ref, 0)
	if err != nil {
		return models.DownloadedFile{}, err
	}
	total := first.NumChunks
	if total == 0 {
		total = 1
	}
	if err := s.checkChunkCount(total, len(first.Contents)); err != nil {
		return models.DownloadedFile{}, err
	}
	report(models.Progress{Phase: models.ProgressDownloading, TotalChunks: total, CurrentChunk: 1})

	var buf bytes.Buffer
	buf.Grow(min(len(first.Contents)*int(total), s.maxFileSize))
	buf.Write(first.Contents)

	for chunkID := uint64(1); chunkID < total; chunkID++ {
		chunk, err := s.fetchChunk(ctx, ref, chunkID)
		if err != nil {
			return models.DownloadedFile{}, err
		}
		if buf.Len()+len(chunk.Contents) > s.maxFileSize {
			return models.DownloadedFile{}, fmt.Errorf("%w: chunk %d passes the %d byte limit", ErrFileTooLarge, chunkID, s.maxFileSize)
		}
		buf.Write(chunk.Contents)
		report(models.Progress{Phase: models.ProgressDownloading, TotalChunks: total, CurrentChunk: chunkID + 1})
	}

	report(models.Progress{Phase: models.ProgressDecrypting, TotalChunks: total, CurrentChunk: total})

	kp, err := s.keys.OwnKeyPair(ctx)
	if err != nil {
		return models.DownloadedFile{}, err
	}
	fileKey, err := s.envelope.UnwrapKey(first.OwnerKey, kp.Public, kp.Private)
	if err != nil {
		return models.DownloadedFile{}, fmt.Errorf("%w: %w", ErrKeyUnavailable, err)
	}
	plaintext, err := s.envelope.DecryptContent(fileKey, buf.Bytes())
	if err != nil {
		return models.DownloadedFile{}, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	name := first.FileName
	if name == "" {
		name = ref.FileName
	}

	return models.DownloadedFile{FileName: name, ContentType: first.ContentType, Contents: plaintext}, nil
}

// checkChunkCount rejects a chunk count the file size limit cannot hold. Every
// chunk but the last is as large as the first one.
func (s *clientTransferService) checkChunkCount(total uint64, firstLen int) error {
	if total == 1 {
		return nil
	}
	if firstLen == 0 || firstLen > s.maxFileSize || total-1 > uint64(s.maxFileSize/firstLen) {
		return fmt.Errorf("%w: %d chunks of %d bytes exceed the %d byte limit", ErrFileTooLarge, total, firstLen, s.maxFileSize)
	}
	return nil
}

// checkStatus rejects files that are not fully uploaded before any chunk is
// fetched. Only owned files carry a status; shares exist for uploaded files
// only and are checked by the chunk answers.
func (s *clientTransferService) checkStatus(ctx context.Context, ref *models.FileRef) error {
	if !ref.Owned {
		return nil
	}

	if ref.Status == "" {
		records, err := s.storage.ListRequests(ctx, ref.Resource)
		if err != nil {
			return mapAdapterError(err)
		}
		record, ok := findRecord(records, ref.FileID)
		if !ok {
			return ErrFileNotFound
		}
		ref.Status = record.Status
	}

	switch ref.Status {
	case models.FileStatusUploaded:
		return nil
	case models.FileStatusPending:
		return ErrFilePending
	default:
		return ErrFileNotUploaded
	}
}

func (s *clientTransferService) fetchChunk(ctx context.Context, ref models.FileRef, chunkID uint64) (models.DownloadChunkResponse, error) {
	resp, err := s.storage.DownloadChunk(ctx, ref.Resource, ref.FileID, chunkID)
	if err != nil {
		err = mapAdapterError(err)
		if !ref.Owned && (errors.Is(err, ErrPermissionDenied) || errors.Is(err, adapter.ErrNotFound)) {
			return resp, fmt.Errorf("%w: %w", ErrShareInconsistent, err)
		}
		if errors.Is(err, adapter.ErrNotFound) {
			return resp, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return resp, err
	}

	switch resp.Kind {
	case models.DownloadFound:
		return resp, nil
	case models.DownloadNotFound:
		if !ref.Owned {
			return resp, fmt.Errorf("%w: file %d is listed as shared but not found", ErrShareInconsistent, ref.FileID)
		}
		return resp, ErrFileNotFound
	case models.DownloadPermissionError:
		if !ref.Owned {
			return resp, fmt.Errorf("%w: file %d is listed as shared but access was denied", ErrShareInconsistent, ref.FileID)
		}
		return resp, ErrPermissionDenied
	case models.DownloadNotUploadedYet:
		return resp, ErrFileNotUploaded
	default:
		return resp, unknownResponse("download chunk", resp.Kind)
	}
}

func failed(result models.UploadResult) models.UploadResult {
	result.Phase = models.UploadFailed
	return result
}

// splitChunks cuts data into chunkSize pieces. Empty data still yields one
// empty chunk so every file has chunk 0.
func splitChunks(data []byte, chunkSize int) [][]byte {
	if len(data) == 0 {
		return [][]byte{{}}
	}

	chunks := make([][]byte, 0, (len(data)+chunkSize-1)/chunkSize)
	for start := 0; start < len(data); start += chunkSize {
		end := min(start+chunkSize, len(data))
		chunks = append(chunks, data[start:end])
	}
	return chunks
}

func findRecord(records []models.FileRecord, fileID models.FileID) (models.FileRecord, bool) {
	for _, r := range records {
		if r.FileID == fileID {
			return r, true
		}
	}
	return models.FileRecord{}, false
}
