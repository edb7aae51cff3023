package models

type CreateFileKind string

const (
	CreateFileOK              CreateFileKind = "ok"
	CreateFileAlreadyExists   CreateFileKind = "already_exists"
	CreateFileNotRequested    CreateFileKind = "not_requested"
	CreateFileAlreadyUploaded CreateFileKind = "already_uploaded"
)

// CreateFileResponse answers both a fresh create and the claim of a
// requested upload.
type CreateFileResponse struct {
	Kind   CreateFileKind `json:"kind"`
	FileID FileID         `json:"file_id,omitempty"`
}

type UploadChunkKind string

const (
	UploadChunkOK                   UploadChunkKind = "ok"
	UploadChunkFileNotFound         UploadChunkKind = "file_not_found"
	UploadChunkAlreadyUploaded      UploadChunkKind = "already_uploaded"
	UploadChunkChunkAlreadyUploaded UploadChunkKind = "chunk_already_uploaded"
	UploadChunkOutOfBounds          UploadChunkKind = "chunk_out_of_bounds"
	UploadChunkNotClaimed           UploadChunkKind = "not_claimed"
)

type UploadChunkResponse struct {
	Kind UploadChunkKind `json:"kind"`
}

type DownloadChunkKind string

const (
	DownloadFound           DownloadChunkKind = "found_file"
	DownloadNotFound        DownloadChunkKind = "not_found"
	DownloadPermissionError DownloadChunkKind = "permission_error"
	DownloadNotUploadedYet  DownloadChunkKind = "not_uploaded_yet"
)

// DownloadChunkResponse carries one chunk. OwnerKey is the file key wrapped
// to the caller, whether the caller is the owner or a share recipient.
type DownloadChunkResponse struct {
	Kind        DownloadChunkKind `json:"kind"`
	Contents    []byte            `json:"contents,omitempty"`
	ContentType string            `json:"content_type,omitempty"`
	FileName    string            `json:"file_name,omitempty"`
	OwnerKey    WrappedKey        `json:"owner_key,omitempty"`
	NumChunks   uint64            `json:"num_chunks,omitempty"`
}

type DeleteFileKind string

const (
	DeleteFileOK                  DeleteFileKind = "ok"
	DeleteFileNotFound            DeleteFileKind = "not_found"
	DeleteFileFailedToRevokeShare DeleteFileKind = "failed_to_revoke_share"
)

type DeleteFileResponse struct {
	Kind   DeleteFileKind `json:"kind"`
	Reason string         `json:"reason,omitempty"`
}

type ShareKind string

const (
	ShareOK              ShareKind = "ok"
	ShareUnauthorized    ShareKind = "unauthorized"
	ShareNoSuchRecipient ShareKind = "no_such_recipient"
	ShareFileNotFound    ShareKind = "file_not_found"
	SharePending         ShareKind = "pending"
)

type ShareResponse struct {
	Kind      ShareKind `json:"kind"`
	Recipient Principal `json:"recipient,omitempty"`
}

type RevokeKind string

const (
	RevokeOK              RevokeKind = "ok"
	RevokeUnauthorized    RevokeKind = "unauthorized"
	RevokeNoSuchRecipient RevokeKind = "no_such_recipient"
)

type RevokeResponse struct {
	Kind      RevokeKind `json:"kind"`
	Recipient Principal  `json:"recipient,omitempty"`
}

type AliasInfoKind string

const (
	AliasInfoOK       AliasInfoKind = "ok"
	AliasInfoNotFound AliasInfoKind = "not_found"
)

type AliasInfoResponse struct {
	Kind AliasInfoKind `json:"kind"`
	Info *AliasInfo    `json:"info,omitempty"`
}

// RequestFileResponse carries the alias generated for a requested upload.
type RequestFileResponse struct {
	Alias  string `json:"alias"`
	FileID FileID `json:"file_id"`
}
