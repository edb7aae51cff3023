package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-file-vault/internal/adapter"
	"github.com/MKhiriev/go-file-vault/models"
)

type clientRequestService struct {
	storage  adapter.StorageAdapter
	transfer ClientTransferService
	session  *SessionHub
}

func NewClientRequestService(storage adapter.StorageAdapter, transfer ClientTransferService, session *SessionHub) ClientRequestService {
	return &clientRequestService{storage: storage, transfer: transfer, session: session}
}

// RequestUpload reserves fileName on the caller's resource and returns the
// reference to hand to the uploader.
func (s *clientRequestService) RequestUpload(ctx context.Context, fileName string) (models.UploadRequestRef, error) {
	resource, err := s.session.Resource()
	if err != nil {
		return models.UploadRequestRef{}, err
	}

	resp, err := s.storage.RequestFile(ctx, resource, fileName)
	if err != nil {
		return models.UploadRequestRef{}, mapAdapterError(err)
	}

	return models.UploadRequestRef{Resource: resource, Alias: resp.Alias, FileID: resp.FileID}, nil
}

func (s *clientRequestService) Inspect(ctx context.Context, ref models.UploadRequestRef) (models.AliasInfo, error) {
	resp, err := s.storage.GetAliasInfo(ctx, ref.Resource, ref.Alias)
	if err != nil {
		return models.AliasInfo{}, mapAdapterError(err)
	}

	switch resp.Kind {
	case models.AliasInfoOK:
		if resp.Info == nil {
			return models.AliasInfo{}, unknownResponse("alias info", resp.Kind)
		}
		return *resp.Info, nil
	case models.AliasInfoNotFound:
		return models.AliasInfo{}, fmt.Errorf("%w: %s", ErrAliasNotFound, ref)
	default:
		return models.AliasInfo{}, unknownResponse("alias info", resp.Kind)
	}
}

// Claim uploads content for a requested file. The file key is wrapped to the
// resource owner, so the uploader cannot read the file afterwards.
func (s *clientRequestService) Claim(ctx context.Context, ref models.UploadRequestRef, contentType string, content []byte, abort *models.AbortToken) (models.UploadResult, error) {
	info, err := s.Inspect(ctx, ref)
	if err != nil {
		return models.UploadResult{Phase: models.UploadFailed}, err
	}
	if len(info.OwnerPublicKey) == 0 {
		return models.UploadResult{Phase: models.UploadFailed}, fmt.Errorf("%w: resource owner has no public key", ErrNoSuchRecipient)
	}

	return s.transfer.Upload(ctx, models.UploadRequest{
		Resource:           ref.Resource,
		FileName:           info.FileName,
		ContentType:        contentType,
		Content:            content,
		RecipientPublicKey: info.OwnerPublicKey,
		Alias:              ref.Alias,
	}, abort)
}
