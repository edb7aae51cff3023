// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/store"
	"github.com/MKhiriev/go-file-vault/internal/utils"
	"github.com/MKhiriev/go-file-vault/internal/validators"
	"github.com/MKhiriev/go-file-vault/models"
)

// storageService serves every provisioned storage resource. A resource is
// addressed by its handle; its owner is taken from the directory's
// resource table.
type storageService struct {
	resources store.ResourceRepository
	files     store.FileRepository
	shares    store.ShareRepository
	users     store.UserRepository
	chunks    store.ChunkStore
	index     ShareIndexer
	validator validators.Validator

	maxChunkSize int
	aliases      *utils.UUIDGenerator
	logger       *logger.Logger
}

func NewStorageService(storages *store.Storages, index ShareIndexer, limits config.Limits, logger *logger.Logger) StorageService {
	return &storageService{
		resources:    storages.ResourceRepository,
		files:        storages.FileRepository,
		shares:       storages.ShareRepository,
		users:        storages.UserRepository,
		chunks:       storages.ChunkStore,
		index:        index,
		validator:    validators.NewStorageValidator(),
		maxChunkSize: limits.MaxChunkSize,
		aliases:      utils.NewUUIDGenerator(),
		logger:       logger,
	}
}

// resource returns a provisioned resource or ErrResourceUnavailable.
func (s *storageService) resource(ctx context.Context, handle models.ResourceHandle) (models.Resource, error) {
	resource, err := s.resources.GetResourceByHandle(ctx, handle)
	if errors.Is(err, store.ErrResourceNotFound) {
		return models.Resource{}, ErrResourceUnavailable
	}
	if err != nil {
		return models.Resource{}, fmt.Errorf("error reading resource: %w", err)
	}
	if resource.State != models.ResourceStateOK {
		return models.Resource{}, ErrResourceUnavailable
	}
	return resource, nil
}

func (s *storageService) owned(ctx context.Context, caller models.Principal, handle models.ResourceHandle) (models.Resource, error) {
	resource, err := s.resource(ctx, handle)
	if err != nil {
		return models.Resource{}, err
	}
	if caller.IsAnonymous() || resource.Owner != caller {
		return models.Resource{}, ErrNotResourceOwner
	}
	return resource, nil
}

func (s *storageService) checkChunk(contents []byte) error {
	if len(contents) == 0 {
		return ErrEmptyChunk
	}
	if s.maxChunkSize > 0 && len(contents) > s.maxChunkSize {
		return ErrChunkTooLarge
	}
	return nil
}

// validate runs the storage validator and reports failures as
// ErrInvalidDataProvided.
func (s *storageService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := s.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (s *storageService) CreateFile(ctx context.Context, caller models.Principal, resource models.ResourceHandle, upload models.FileUpload) (models.CreateFileResponse, error) {
	if _, err := s.owned(ctx, caller, resource); err != nil {
		return models.CreateFileResponse{}, err
	}
	if err := s.validate(ctx, upload); err != nil {
		return models.CreateFileResponse{}, err
	}
	if err := s.checkChunk(upload.Content); err != nil {
		return models.CreateFileResponse{}, err
	}

	fileID, err := s.files.CreateFile(ctx, resource, upload, func(id models.FileID) error {
		return s.chunks.PutChunk(ctx, resource, id, 0, upload.Content)
	})
	if errors.Is(err, store.ErrFileAlreadyExists) {
		return models.CreateFileResponse{Kind: models.CreateFileAlreadyExists}, nil
	}
	if err != nil {
		return models.CreateFileResponse{}, fmt.Errorf("error creating file: %w", err)
	}

	return models.CreateFileResponse{Kind: models.CreateFileOK, FileID: fileID}, nil
}

// RequestFile reserves fileName for an upload by whoever receives the alias.
func (s *storageService) RequestFile(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileName string) (models.RequestFileResponse, error) {
	if _, err := s.owned(ctx, caller, resource); err != nil {
		return models.RequestFileResponse{}, err
	}
	if fileName == "" {
		return models.RequestFileResponse{}, ErrInvalidDataProvided
	}

	alias := s.aliases.Generate()
	fileID, err := s.files.RequestFile(ctx, resource, fileName, alias)
	if err != nil {
		return models.RequestFileResponse{}, fmt.Errorf("error requesting file: %w", err)
	}

	return models.RequestFileResponse{Alias: alias, FileID: fileID}, nil
}

// pendingByAlias returns the pending record behind alias on resource.
func (s *storageService) pendingByAlias(ctx context.Context, resource models.ResourceHandle, alias string) (models.FileRecord, bool, error) {
	owner, file, err := s.files.GetFileByAlias(ctx, alias)
	if errors.Is(err, store.ErrFileNotFound) {
		return models.FileRecord{}, false, nil
	}
	if err != nil {
		return models.FileRecord{}, false, fmt.Errorf("error reading alias: %w", err)
	}
	if owner != resource || file.Status != models.FileStatusPending {
		return models.FileRecord{}, false, nil
	}
	return file, true, nil
}

func (s *storageService) GetAliasInfo(ctx context.Context, caller models.Principal, resource models.ResourceHandle, alias string) (models.AliasInfoResponse, error) {
	res, err := s.resource(ctx, resource)
	if errors.Is(err, ErrResourceUnavailable) {
		return models.AliasInfoResponse{Kind: models.AliasInfoNotFound}, nil
	}
	if err != nil {
		return models.AliasInfoResponse{}, err
	}

	file, ok, err := s.pendingByAlias(ctx, resource, alias)
	if err != nil {
		return models.AliasInfoResponse{}, err
	}
	if !ok {
		return models.AliasInfoResponse{Kind: models.AliasInfoNotFound}, nil
	}

	publicKey, err := s.resources.GetPublicKey(ctx, resource)
	if err != nil {
		return models.AliasInfoResponse{}, fmt.Errorf("error reading public key: %w", err)
	}

	return models.AliasInfoResponse{Kind: models.AliasInfoOK, Info: &models.AliasInfo{
		FileID:         file.FileID,
		FileName:       file.FileName,
		Owner:          res.Owner,
		OwnerPublicKey: publicKey,
	}}, nil
}

// ClaimRequest turns a requested upload into an upload by caller carrying
// chunk 0. The file name reserved by the request wins over upload.FileName.
func (s *storageService) ClaimRequest(ctx context.Context, caller models.Principal, resource models.ResourceHandle, alias string, upload models.FileUpload) (models.CreateFileResponse, error) {
	if caller.IsAnonymous() {
		return models.CreateFileResponse{}, ErrNotResourceOwner
	}
	if _, err := s.resource(ctx, resource); err != nil {
		return models.CreateFileResponse{}, err
	}

	file, ok, err := s.pendingByAlias(ctx, resource, alias)
	if err != nil {
		return models.CreateFileResponse{}, err
	}
	if !ok {
		return models.CreateFileResponse{Kind: models.CreateFileNotRequested}, nil
	}

	upload.FileName = file.FileName
	if err = s.validate(ctx, upload); err != nil {
		return models.CreateFileResponse{}, err
	}
	if err = s.checkChunk(upload.Content); err != nil {
		return models.CreateFileResponse{}, err
	}

	_, err = s.files.ClaimFile(ctx, resource, file.FileID, caller, upload, func() error {
		return s.chunks.PutChunk(ctx, resource, file.FileID, 0, upload.Content)
	})
	switch {
	case errors.Is(err, store.ErrNotRequested):
		return models.CreateFileResponse{Kind: models.CreateFileNotRequested}, nil
	case errors.Is(err, store.ErrAlreadyUploaded):
		return models.CreateFileResponse{Kind: models.CreateFileAlreadyUploaded}, nil
	case err != nil:
		return models.CreateFileResponse{}, fmt.Errorf("error claiming file: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("resource", resource.String()).
		Uint64("file_id", uint64(file.FileID)).
		Str("uploader", caller.String()).
		Msg("requested upload claimed")
	return models.CreateFileResponse{Kind: models.CreateFileOK, FileID: file.FileID}, nil
}

// UploadChunk stores one chunk of a file. The owner and the principal that
// claimed a requested upload may write.
func (s *storageService) UploadChunk(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID, chunkID uint64, contents []byte) (models.UploadChunkResponse, error) {
	res, err := s.resource(ctx, resource)
	if err != nil {
		return models.UploadChunkResponse{}, err
	}
	if err = s.checkChunk(contents); err != nil {
		return models.UploadChunkResponse{}, err
	}

	file, err := s.files.GetFile(ctx, resource, fileID)
	if errors.Is(err, store.ErrFileNotFound) {
		return models.UploadChunkResponse{Kind: models.UploadChunkFileNotFound}, nil
	}
	if err != nil {
		return models.UploadChunkResponse{}, fmt.Errorf("error reading file: %w", err)
	}
	if caller.IsAnonymous() || (caller != res.Owner && caller != file.Uploader) {
		return models.UploadChunkResponse{}, ErrNotResourceOwner
	}

	_, err = s.files.AddChunk(ctx, resource, fileID, chunkID, len(contents), func() error {
		return s.chunks.PutChunk(ctx, resource, fileID, chunkID, contents)
	})
	switch {
	case err == nil:
		return models.UploadChunkResponse{Kind: models.UploadChunkOK}, nil
	case errors.Is(err, store.ErrFileNotFound):
		return models.UploadChunkResponse{Kind: models.UploadChunkFileNotFound}, nil
	case errors.Is(err, store.ErrAlreadyUploaded):
		return models.UploadChunkResponse{Kind: models.UploadChunkAlreadyUploaded}, nil
	case errors.Is(err, store.ErrChunkAlreadyUploaded):
		return models.UploadChunkResponse{Kind: models.UploadChunkChunkAlreadyUploaded}, nil
	case errors.Is(err, store.ErrChunkOutOfBounds):
		return models.UploadChunkResponse{Kind: models.UploadChunkOutOfBounds}, nil
	case errors.Is(err, store.ErrNotClaimed):
		return models.UploadChunkResponse{Kind: models.UploadChunkNotClaimed}, nil
	default:
		return models.UploadChunkResponse{}, fmt.Errorf("error adding chunk: %w", err)
	}
}

// DownloadChunk returns one chunk together with the file key wrapped to
// the caller. Only fully uploaded files are served.
func (s *storageService) DownloadChunk(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID, chunkID uint64) (models.DownloadChunkResponse, error) {
	res, err := s.resource(ctx, resource)
	if errors.Is(err, ErrResourceUnavailable) {
		return models.DownloadChunkResponse{Kind: models.DownloadNotFound}, nil
	}
	if err != nil {
		return models.DownloadChunkResponse{}, err
	}

	file, err := s.files.GetFile(ctx, resource, fileID)
	if errors.Is(err, store.ErrFileNotFound) {
		return models.DownloadChunkResponse{Kind: models.DownloadNotFound}, nil
	}
	if err != nil {
		return models.DownloadChunkResponse{}, fmt.Errorf("error reading file: %w", err)
	}

	key := file.OwnerKey
	if caller.IsAnonymous() {
		return models.DownloadChunkResponse{Kind: models.DownloadPermissionError}, nil
	}
	if caller != res.Owner {
		key, err = s.shares.GetWrappedKey(ctx, resource, fileID, caller)
		if errors.Is(err, store.ErrShareNotFound) {
			return models.DownloadChunkResponse{Kind: models.DownloadPermissionError}, nil
		}
		if err != nil {
			return models.DownloadChunkResponse{}, fmt.Errorf("error reading share: %w", err)
		}
	}

	if !file.Downloadable() {
		return models.DownloadChunkResponse{Kind: models.DownloadNotUploadedYet}, nil
	}
	if chunkID >= file.NumChunks {
		return models.DownloadChunkResponse{Kind: models.DownloadNotFound}, nil
	}

	contents, err := s.chunks.GetChunk(ctx, resource, fileID, chunkID)
	if err != nil {
		return models.DownloadChunkResponse{}, fmt.Errorf("error reading chunk: %w", err)
	}

	return models.DownloadChunkResponse{
		Kind:        models.DownloadFound,
		Contents:    contents,
		ContentType: file.ContentType,
		FileName:    file.FileName,
		OwnerKey:    key,
		NumChunks:   file.NumChunks,
	}, nil
}

// ListFiles returns every record of the resource with its recipients.
func (s *storageService) ListFiles(ctx context.Context, caller models.Principal, resource models.ResourceHandle) ([]models.FileRecord, error) {
	if _, err := s.owned(ctx, caller, resource); err != nil {
		return nil, err
	}

	files, err := s.files.ListFiles(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}
	if len(files) == 0 {
		return []models.FileRecord{}, nil
	}

	ids := make([]models.FileID, len(files))
	for i, f := range files {
		ids[i] = f.FileID
	}
	recipients, err := s.shares.ListRecipientsOf(ctx, resource, ids)
	if err != nil {
		return nil, fmt.Errorf("error listing recipients: %w", err)
	}

	users, err := s.publicUsers(ctx, recipients)
	if err != nil {
		return nil, err
	}

	for i := range files {
		files[i].SharedWith = []models.PublicUser{}
		for _, p := range recipients[files[i].FileID] {
			if u, ok := users[p]; ok {
				files[i].SharedWith = append(files[i].SharedWith, u)
			}
		}
	}

	return files, nil
}

func (s *storageService) publicUsers(ctx context.Context, recipients map[models.FileID][]models.Principal) (map[models.Principal]models.PublicUser, error) {
	var principals []models.Principal
	seen := make(map[models.Principal]bool)
	for _, ps := range recipients {
		for _, p := range ps {
			if !seen[p] {
				seen[p] = true
				principals = append(principals, p)
			}
		}
	}

	users := make(map[models.Principal]models.PublicUser, len(principals))
	if len(principals) == 0 {
		return users, nil
	}

	found, err := s.users.FindUsers(ctx, principals)
	if err != nil {
		return nil, fmt.Errorf("error reading recipients: %w", err)
	}
	for _, u := range found {
		users[u.Principal] = u
	}
	return users, nil
}

// DeleteFile drops the file's index entries first and keeps the file when
// that fails, so no recipient is left holding an entry to a missing file.
func (s *storageService) DeleteFile(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID) (models.DeleteFileResponse, error) {
	log := logger.FromContext(ctx)

	if _, err := s.owned(ctx, caller, resource); err != nil {
		return models.DeleteFileResponse{}, err
	}

	if _, err := s.files.GetFile(ctx, resource, fileID); err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return models.DeleteFileResponse{Kind: models.DeleteFileNotFound}, nil
		}
		return models.DeleteFileResponse{}, fmt.Errorf("error reading file: %w", err)
	}

	if err := s.index.RevokeAll(ctx, resource, fileID); err != nil {
		log.Err(err).Str("resource", resource.String()).Uint64("file_id", uint64(fileID)).Msg("error revoking shares before delete")
		return models.DeleteFileResponse{Kind: models.DeleteFileFailedToRevokeShare, Reason: err.Error()}, nil
	}

	err := s.files.DeleteFile(ctx, resource, fileID)
	if errors.Is(err, store.ErrFileNotFound) {
		return models.DeleteFileResponse{Kind: models.DeleteFileNotFound}, nil
	}
	if err != nil {
		return models.DeleteFileResponse{}, fmt.Errorf("error deleting file: %w", err)
	}

	if err = s.chunks.DeleteFile(ctx, resource, fileID); err != nil {
		// orphaned chunks are unreachable without an index row
		log.Err(err).Str("resource", resource.String()).Uint64("file_id", uint64(fileID)).Msg("error deleting chunks")
	}

	return models.DeleteFileResponse{Kind: models.DeleteFileOK}, nil
}

// Share grants recipients access to an uploaded file. The directory index
// is written before the ACL; a failed ACL write takes the index entries
// back out.
func (s *storageService) Share(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID, grants []models.ShareGrant) (models.ShareResponse, error) {
	res, err := s.owned(ctx, caller, resource)
	if errors.Is(err, ErrNotResourceOwner) {
		return models.ShareResponse{Kind: models.ShareUnauthorized}, nil
	}
	if err != nil {
		return models.ShareResponse{}, err
	}
	if err = s.validate(ctx, grants); err != nil {
		return models.ShareResponse{}, err
	}

	file, err := s.files.GetFile(ctx, resource, fileID)
	if errors.Is(err, store.ErrFileNotFound) {
		return models.ShareResponse{Kind: models.ShareFileNotFound}, nil
	}
	if err != nil {
		return models.ShareResponse{}, fmt.Errorf("error reading file: %w", err)
	}
	if !file.Downloadable() {
		return models.ShareResponse{Kind: models.SharePending}, nil
	}

	entries := make([]models.ShareIndexEntry, 0, len(grants))
	recipients := make([]models.Principal, 0, len(grants))
	for _, g := range grants {
		if _, err = s.users.GetUser(ctx, g.Recipient); err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return models.ShareResponse{Kind: models.ShareNoSuchRecipient, Recipient: g.Recipient}, nil
			}
			return models.ShareResponse{}, fmt.Errorf("error reading recipient: %w", err)
		}
		entries = append(entries, models.ShareIndexEntry{
			Resource:  resource,
			Owner:     res.Owner,
			FileID:    fileID,
			FileName:  file.FileName,
			Recipient: g.Recipient,
		})
		recipients = append(recipients, g.Recipient)
	}

	if err = s.index.IndexShare(ctx, entries); err != nil {
		return models.ShareResponse{}, err
	}

	if err = s.shares.AddShares(ctx, resource, fileID, grants); err != nil {
		if rollbackErr := s.index.RevokeShare(ctx, resource, fileID, recipients); rollbackErr != nil {
			logger.FromContext(ctx).Err(rollbackErr).Str("resource", resource.String()).Msg("error rolling back share index")
		}
		if errors.Is(err, store.ErrUserNotFound) {
			return models.ShareResponse{Kind: models.ShareNoSuchRecipient}, nil
		}
		return models.ShareResponse{}, fmt.Errorf("error adding shares: %w", err)
	}

	return models.ShareResponse{Kind: models.ShareOK}, nil
}

// Revoke removes recipients from a file, index first.
func (s *storageService) Revoke(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) (models.RevokeResponse, error) {
	_, err := s.owned(ctx, caller, resource)
	if errors.Is(err, ErrNotResourceOwner) {
		return models.RevokeResponse{Kind: models.RevokeUnauthorized}, nil
	}
	if err != nil {
		return models.RevokeResponse{}, err
	}
	if err = s.validate(ctx, recipients); err != nil {
		return models.RevokeResponse{}, err
	}

	for _, r := range recipients {
		if _, err = s.users.GetUser(ctx, r); err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return models.RevokeResponse{Kind: models.RevokeNoSuchRecipient, Recipient: r}, nil
			}
			return models.RevokeResponse{}, fmt.Errorf("error reading recipient: %w", err)
		}
	}

	if err = s.index.RevokeShare(ctx, resource, fileID, recipients); err != nil {
		return models.RevokeResponse{}, err
	}
	if err = s.shares.RemoveShares(ctx, resource, fileID, recipients); err != nil {
		return models.RevokeResponse{}, fmt.Errorf("error removing shares: %w", err)
	}

	return models.RevokeResponse{Kind: models.RevokeOK}, nil
}

// AllowedUsers lists the recipients of a file. A missing file is reported
// as a wrapped store.ErrFileNotFound.
func (s *storageService) AllowedUsers(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID) ([]models.PublicUser, error) {
	if _, err := s.owned(ctx, caller, resource); err != nil {
		return nil, err
	}

	if _, err := s.files.GetFile(ctx, resource, fileID); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	recipients, err := s.shares.ListRecipients(ctx, resource, fileID)
	if err != nil {
		return nil, fmt.Errorf("error listing recipients: %w", err)
	}

	users, err := s.publicUsers(ctx, map[models.FileID][]models.Principal{fileID: recipients})
	if err != nil {
		return nil, err
	}

	allowed := make([]models.PublicUser, 0, len(recipients))
	for _, p := range recipients {
		if u, ok := users[p]; ok {
			allowed = append(allowed, u)
		}
	}
	return allowed, nil
}

// GetPublicKey is readable by any authenticated caller; uploaders need it
// to wrap file keys to the owner.
func (s *storageService) GetPublicKey(ctx context.Context, caller models.Principal, resource models.ResourceHandle) ([]byte, error) {
	if caller.IsAnonymous() {
		return nil, ErrNotResourceOwner
	}
	if _, err := s.resource(ctx, resource); err != nil {
		return nil, err
	}

	key, err := s.resources.GetPublicKey(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("error reading public key: %w", err)
	}
	return key, nil
}

func (s *storageService) SetPublicKey(ctx context.Context, caller models.Principal, resource models.ResourceHandle, publicKey []byte) error {
	if _, err := s.owned(ctx, caller, resource); err != nil {
		return err
	}
	if len(publicKey) == 0 {
		return ErrInvalidDataProvided
	}

	if err := s.resources.SetPublicKey(ctx, resource, publicKey); err != nil {
		return fmt.Errorf("error storing public key: %w", err)
	}
	return nil
}
