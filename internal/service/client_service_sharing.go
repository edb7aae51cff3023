package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-file-vault/internal/adapter"
	"github.com/MKhiriev/go-file-vault/internal/crypto"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
)

type clientSharingService struct {
	storage   adapter.StorageAdapter
	directory adapter.DirectoryAdapter
	envelope  crypto.EnvelopeCrypto
	keys      ClientKeyService
	session   *SessionHub
	logger    *logger.Logger
}

func NewClientSharingService(storage adapter.StorageAdapter, directory adapter.DirectoryAdapter, envelope crypto.EnvelopeCrypto, keys ClientKeyService, session *SessionHub, logger *logger.Logger) ClientSharingService {
	return &clientSharingService{
		storage:   storage,
		directory: directory,
		envelope:  envelope,
		keys:      keys,
		session:   session,
		logger:    logger,
	}
}

// Share rewraps the file key of an uploaded file to every recipient's public
// key. The content is never touched.
func (s *clientSharingService) Share(ctx context.Context, fileID models.FileID, recipients []models.Principal) error {
	resource, err := s.session.Resource()
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		return nil
	}

	record, err := s.ownedRecord(ctx, resource, fileID)
	if err != nil {
		return err
	}
	switch record.Status {
	case models.FileStatusUploaded:
	case models.FileStatusPending:
		return ErrFilePending
	default:
		return ErrFileNotUploaded
	}

	kp, err := s.keys.OwnKeyPair(ctx)
	if err != nil {
		return err
	}
	fileKey, err := s.envelope.UnwrapKey(record.OwnerKey, kp.Public, kp.Private)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyUnavailable, err)
	}

	grants := make([]models.ShareGrant, 0, len(recipients))
	for _, recipient := range recipients {
		user, err := s.directory.GetUser(ctx, recipient)
		if errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNoSuchRecipient, recipient)
		}
		if err != nil {
			return mapAdapterError(err)
		}
		if len(user.PublicKey) == 0 {
			return fmt.Errorf("%w: %s has no public key yet", ErrNoSuchRecipient, user.Username)
		}

		wrapped, err := s.envelope.WrapKey(fileKey, user.PublicKey)
		if err != nil {
			return fmt.Errorf("error wrapping file key for %s: %w", recipient, err)
		}
		grants = append(grants, models.ShareGrant{Recipient: recipient, WrappedKey: wrapped})
	}

	resp, err := s.storage.Share(ctx, resource, fileID, grants)
	if err != nil {
		return mapAdapterError(err)
	}

	switch resp.Kind {
	case models.ShareOK:
		s.logger.Info().Uint64("file_id", uint64(fileID)).Int("recipients", len(grants)).Msg("file shared")
		return nil
	case models.ShareUnauthorized:
		return ErrUnauthorized
	case models.ShareNoSuchRecipient:
		return fmt.Errorf("%w: %s", ErrNoSuchRecipient, resp.Recipient)
	case models.ShareFileNotFound:
		return ErrFileNotFound
	case models.SharePending:
		return ErrFilePending
	default:
		return unknownResponse("share", resp.Kind)
	}
}

// Revoke removes recipients from the file's access list.
func (s *clientSharingService) Revoke(ctx context.Context, fileID models.FileID, recipients []models.Principal) error {
	resource, err := s.session.Resource()
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		return nil
	}

	resp, err := s.storage.Revoke(ctx, resource, fileID, recipients)
	if err != nil {
		return mapAdapterError(err)
	}

	switch resp.Kind {
	case models.RevokeOK:
		s.logger.Info().Uint64("file_id", uint64(fileID)).Int("recipients", len(recipients)).Msg("shares revoked")
		return nil
	case models.RevokeUnauthorized:
		return ErrUnauthorized
	case models.RevokeNoSuchRecipient:
		return fmt.Errorf("%w: %s", ErrNoSuchRecipient, resp.Recipient)
	default:
		return unknownResponse("revoke", resp.Kind)
	}
}

func (s *clientSharingService) ListOwned(ctx context.Context) ([]models.FileRecord, error) {
	resource, err := s.session.Resource()
	if err != nil {
		return nil, err
	}

	records, err := s.storage.ListRequests(ctx, resource)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return records, nil
}

func (s *clientSharingService) ListSharedIn(ctx context.Context) ([]models.SharedResource, error) {
	resp, err := s.directory.ListSharedIn(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	switch resp.Kind {
	case models.SharedFilesOK:
		return resp.Resources, nil
	case models.SharedFilesNoSuchUser:
		return nil, ErrUserNotRegistered
	case models.SharedFilesAnonymousUser:
		return nil, ErrAnonymousCaller
	default:
		return nil, unknownResponse("list shared", resp.Kind)
	}
}

// ResolveFile looks the file up among the caller's own files first and then
// among the files shared with the caller.
func (s *clientSharingService) ResolveFile(ctx context.Context, resource string, fileID models.FileID) (models.FileRef, error) {
	own, ownErr := s.session.Resource()
	if ownErr == nil && (resource == "" || resource == own.String()) {
		records, err := s.ListOwned(ctx)
		if err != nil {
			return models.FileRef{}, err
		}
		if record, ok := findRecord(records, fileID); ok {
			return models.FileRef{
				Resource: own,
				FileID:   fileID,
				FileName: record.FileName,
				Owned:    true,
				Status:   record.Status,
			}, nil
		}
		if resource != "" {
			return models.FileRef{}, ErrFileNotFound
		}
	}
	if resource == "" {
		if ownErr != nil {
			return models.FileRef{}, ownErr
		}
		return models.FileRef{}, ErrFileNotFound
	}

	handle, err := models.ParseResourceHandle(resource)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	shared, err := s.ListSharedIn(ctx)
	if err != nil {
		return models.FileRef{}, err
	}
	for _, sr := range shared {
		if sr.Resource != handle {
			continue
		}
		for _, f := range sr.Files {
			if f.FileID == fileID {
				return models.FileRef{Resource: handle, FileID: fileID, FileName: f.FileName}, nil
			}
		}
	}

	return models.FileRef{}, ErrFileNotFound
}

func (s *clientSharingService) AllowedUsers(ctx context.Context, fileID models.FileID) ([]models.PublicUser, error) {
	resource, err := s.session.Resource()
	if err != nil {
		return nil, err
	}

	users, err := s.storage.AllowedUsers(ctx, resource, fileID)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return users, nil
}

func (s *clientSharingService) Delete(ctx context.Context, fileID models.FileID) error {
	resource, err := s.session.Resource()
	if err != nil {
		return err
	}

	resp, err := s.storage.DeleteFile(ctx, resource, fileID)
	if err != nil {
		return mapAdapterError(err)
	}

	switch resp.Kind {
	case models.DeleteFileOK:
		s.logger.Info().Uint64("file_id", uint64(fileID)).Msg("file deleted")
		return nil
	case models.DeleteFileNotFound:
		return ErrFileNotFound
	case models.DeleteFileFailedToRevokeShare:
		return fmt.Errorf("%w: %s", ErrShareRevocationFailed, resp.Reason)
	default:
		return unknownResponse("delete file", resp.Kind)
	}
}

func (s *clientSharingService) FindUsers(ctx context.Context, query models.UsersQuery) (models.UsersPage, error) {
	resp, err := s.directory.ListUsers(ctx, query)
	if err != nil {
		return models.UsersPage{}, mapAdapterError(err)
	}

	switch resp.Kind {
	case models.GetUsersOK:
		if resp.Page == nil {
			return models.UsersPage{}, nil
		}
		return *resp.Page, nil
	case models.GetUsersPermissionError:
		return models.UsersPage{}, ErrAnonymousCaller
	case models.GetUsersInvalidQuery:
		return models.UsersPage{}, ErrInvalidQuery
	default:
		return models.UsersPage{}, unknownResponse("list users", resp.Kind)
	}
}

func (s *clientSharingService) ownedRecord(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) (models.FileRecord, error) {
	records, err := s.storage.ListRequests(ctx, resource)
	if err != nil {
		return models.FileRecord{}, mapAdapterError(err)
	}
	record, ok := findRecord(records, fileID)
	if !ok {
		return models.FileRecord{}, ErrFileNotFound
	}
	return record, nil
}
