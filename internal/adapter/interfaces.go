// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the vault server: the identity service, the directory service and the
// per-user storage resources.
//
// Every remote operation answers with a closed response union from models
// (a Kind plus the fields of that variant). Transport failures and non-2xx
// statuses are mapped by mapHTTPError to the sentinel values in errors.go so
// that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-file-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityAdapter obtains and holds the bearer token of the session.
type IdentityAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or an empty string.
	Token() string

	// SignUp creates an account and stores the issued token.
	SignUp(ctx context.Context, account models.Account) (models.Principal, error)

	// Login authenticates an existing account and stores the issued token.
	Login(ctx context.Context, account models.Account) (models.Principal, error)
}

// DirectoryAdapter talks to the directory service, which maps principals to
// storage resources and indexes cross-resource shares.
type DirectoryAdapter interface {
	ResolveOwnResource(ctx context.Context) (models.ResolveResourceResponse, error)
	RetryResourceCreation(ctx context.Context) (models.RetryCreationResponse, error)
	ListSharedIn(ctx context.Context) (models.SharedFilesResponse, error)
	Register(ctx context.Context, username string) (models.RegisterResponse, error)
	WhoAmI(ctx context.Context) (models.WhoAmIResponse, error)

	// GetUser returns [ErrNotFound] (wrapped) for an unknown principal.
	GetUser(ctx context.Context, principal models.Principal) (models.PublicUser, error)

	ListUsers(ctx context.Context, query models.UsersQuery) (models.GetUsersResponse, error)
}

// StorageAdapter talks to a storage resource. The same shape serves the
// caller's own resource and foreign ones; resource selects which.
type StorageAdapter interface {
	// CreateFile creates a file on the caller's own resource. upload carries
	// chunk 0.
	CreateFile(ctx context.Context, resource models.ResourceHandle, upload models.FileUpload) (models.CreateFileResponse, error)

	// RequestFile reserves a file name for an upload by someone else and
	// returns the alias they claim it with.
	RequestFile(ctx context.Context, resource models.ResourceHandle, fileName string) (models.RequestFileResponse, error)

	GetAliasInfo(ctx context.Context, resource models.ResourceHandle, alias string) (models.AliasInfoResponse, error)

	// ClaimRequest completes a requested upload. upload carries chunk 0 and
	// the file key wrapped to the resource owner.
	ClaimRequest(ctx context.Context, resource models.ResourceHandle, alias string, upload models.FileUpload) (models.CreateFileResponse, error)

	UploadChunk(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, chunkID uint64, contents []byte) (models.UploadChunkResponse, error)
	DownloadChunk(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, chunkID uint64) (models.DownloadChunkResponse, error)

	// ListRequests returns every file record of the resource, pending
	// requests included.
	ListRequests(ctx context.Context, resource models.ResourceHandle) ([]models.FileRecord, error)

	DeleteFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) (models.DeleteFileResponse, error)
	Share(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, grants []models.ShareGrant) (models.ShareResponse, error)
	Revoke(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) (models.RevokeResponse, error)
	AllowedUsers(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) ([]models.PublicUser, error)

	// GetPublicKey returns an empty key when none has been set.
	GetPublicKey(ctx context.Context, resource models.ResourceHandle) ([]byte, error)
	SetPublicKey(ctx context.Context, resource models.ResourceHandle, publicKey []byte) error
}

// ServerAdapter is the whole remote surface used by the client.
type ServerAdapter interface {
	IdentityAdapter
	DirectoryAdapter
	StorageAdapter
}
