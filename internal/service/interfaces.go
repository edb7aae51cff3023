package service

import (
	"context"

	"github.com/MKhiriev/go-file-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityService issues principals and their tokens.
type IdentityService interface {
	SignUp(ctx context.Context, account models.Account) (models.Account, error)
	Login(ctx context.Context, account models.Account) (models.Account, error)
	CreateToken(ctx context.Context, principal models.Principal) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ShareIndexer keeps the directory's recipient-keyed share index. Storage
// resources call it before they commit ACL changes.
type ShareIndexer interface {
	IndexShare(ctx context.Context, entries []models.ShareIndexEntry) error
	RevokeShare(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) error
	RevokeAll(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) error
}

// DirectoryService maps principals to usernames and storage resources.
type DirectoryService interface {
	ShareIndexer

	ResolveOwnResource(ctx context.Context, caller models.Principal) (models.ResolveResourceResponse, error)
	RetryResourceCreation(ctx context.Context, caller models.Principal) (models.RetryCreationResponse, error)
	ListSharedIn(ctx context.Context, caller models.Principal) (models.SharedFilesResponse, error)
	Register(ctx context.Context, caller models.Principal, username string) (models.RegisterResponse, error)
	WhoAmI(ctx context.Context, caller models.Principal) (models.WhoAmIResponse, error)
	GetUser(ctx context.Context, principal models.Principal) (models.PublicUser, error)
	ListUsers(ctx context.Context, caller models.Principal, query models.UsersQuery) (models.GetUsersResponse, error)
}

// StorageService serves the storage resources. Domain outcomes are reported
// through the response unions; errors are reserved for access and
// infrastructure failures.
type StorageService interface {
	CreateFile(ctx context.Context, caller models.Principal, resource models.ResourceHandle, upload models.FileUpload) (models.CreateFileResponse, error)
	RequestFile(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileName string) (models.RequestFileResponse, error)
	GetAliasInfo(ctx context.Context, caller models.Principal, resource models.ResourceHandle, alias string) (models.AliasInfoResponse, error)
	ClaimRequest(ctx context.Context, caller models.Principal, resource models.ResourceHandle, alias string, upload models.FileUpload) (models.CreateFileResponse, error)
	UploadChunk(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID, chunkID uint64, contents []byte) (models.UploadChunkResponse, error)
	DownloadChunk(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID, chunkID uint64) (models.DownloadChunkResponse, error)
	ListFiles(ctx context.Context, caller models.Principal, resource models.ResourceHandle) ([]models.FileRecord, error)
	DeleteFile(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID) (models.DeleteFileResponse, error)
	Share(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID, grants []models.ShareGrant) (models.ShareResponse, error)
	Revoke(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) (models.RevokeResponse, error)
	AllowedUsers(ctx context.Context, caller models.Principal, resource models.ResourceHandle, fileID models.FileID) ([]models.PublicUser, error)
	GetPublicKey(ctx context.Context, caller models.Principal, resource models.ResourceHandle) ([]byte, error)
	SetPublicKey(ctx context.Context, caller models.Principal, resource models.ResourceHandle, publicKey []byte) error
}

// ProvisioningService advances requested storage resources.
type ProvisioningService interface {
	// ProvisionPending handles one batch and reports how many resources it
	// touched.
	ProvisionPending(ctx context.Context) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
