package store

import (
	"context"

	"github.com/MKhiriev/go-file-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists identity-service accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByLogin(ctx context.Context, login string) (models.Account, error)
}

// UserRepository persists directory users. usernameKey is the normalized
// form of the username used for uniqueness and search.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User, usernameKey string) (models.User, error)
	GetUser(ctx context.Context, principal models.Principal) (models.User, error)
	FindUsers(ctx context.Context, principals []models.Principal) ([]models.PublicUser, error)
	ListUsers(ctx context.Context, usernameKey string, offset, limit int) (models.UsersPage, error)
}

// ResourceRepository tracks the creation state of storage resources and the
// public key each resource advertises for its owner.
type ResourceRepository interface {
	CreateResource(ctx context.Context, owner models.Principal) error
	GetResource(ctx context.Context, owner models.Principal) (models.Resource, error)
	GetResourceByHandle(ctx context.Context, handle models.ResourceHandle) (models.Resource, error)
	ListRequested(ctx context.Context, limit int) ([]models.Resource, error)
	CountResolved(ctx context.Context) (int, error)
	MarkResolved(ctx context.Context, owner models.Principal, handle models.ResourceHandle) error
	MarkFailed(ctx context.Context, owner models.Principal, reason string) error
	RestartCreation(ctx context.Context, owner models.Principal) (bool, error)
	GetPublicKey(ctx context.Context, handle models.ResourceHandle) ([]byte, error)
	SetPublicKey(ctx context.Context, handle models.ResourceHandle, publicKey []byte) error
}

// FileRepository persists file records and the index of stored chunks.
//
// The put callbacks write chunk bytes to the blob store. They run inside the
// database transaction after every check has passed, so a rejected chunk is
// never written and a failed write leaves no index row behind.
type FileRepository interface {
	CreateFile(ctx context.Context, resource models.ResourceHandle, upload models.FileUpload, put func(models.FileID) error) (models.FileID, error)
	RequestFile(ctx context.Context, resource models.ResourceHandle, fileName, alias string) (models.FileID, error)
	GetFileByAlias(ctx context.Context, alias string) (models.ResourceHandle, models.FileRecord, error)
	ClaimFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, claimer models.Principal, upload models.FileUpload, put func() error) (models.FileStatus, error)
	GetFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) (models.FileRecord, error)
	ListFiles(ctx context.Context, resource models.ResourceHandle) ([]models.FileRecord, error)
	AddChunk(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, chunkID uint64, size int, put func() error) (models.FileStatus, error)
	DeleteFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) error
}

// ShareRepository is a resource's access control list: one WrappedKey per
// (file, recipient).
type ShareRepository interface {
	AddShares(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, grants []models.ShareGrant) error
	RemoveShares(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) error
	GetWrappedKey(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, recipient models.Principal) (models.WrappedKey, error)
	ListRecipients(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) ([]models.Principal, error)
	ListRecipientsOf(ctx context.Context, resource models.ResourceHandle, fileIDs []models.FileID) (map[models.FileID][]models.Principal, error)
}

// ShareIndexRepository is the directory's recipient-keyed view of shares.
type ShareIndexRepository interface {
	IndexShares(ctx context.Context, entries []models.ShareIndexEntry) error
	RemoveShares(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) error
	RemoveFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) error
	ListByRecipient(ctx context.Context, recipient models.Principal) ([]models.ShareIndexEntry, error)
}

// ChunkStore keeps encrypted chunk bytes, namespaced per resource.
type ChunkStore interface {
	CreateNamespace(ctx context.Context, resource models.ResourceHandle) error
	PutChunk(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, chunkID uint64, data []byte) error
	GetChunk(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, chunkID uint64) ([]byte, error)
	DeleteFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) error
	Close() error
}
