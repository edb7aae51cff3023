// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FileID identifies a file within a single storage resource.
type FileID uint64

// WrappedKey is a file key sealed to one recipient's public key.
type WrappedKey []byte

// FileStatus is the upload status of a file record.
type FileStatus string

const (
	// FileStatusPending is a requested upload whose alias has not been claimed.
	FileStatusPending FileStatus = "pending"
	// FileStatusPartiallyUploaded means chunk 0 is stored and chunks are missing.
	FileStatusPartiallyUploaded FileStatus = "partially_uploaded"
	// FileStatusUploaded means every chunk is stored.
	FileStatusUploaded FileStatus = "uploaded"
)

// FileRecord is the metadata of a file stored on a resource.
//
// NumChunks and UploadedChunks are zero while the file is pending.
// OwnerKey is the file key wrapped to the resource owner's public key.
// Uploader is set once a requested upload has been claimed.
type FileRecord struct {
	FileID         FileID       `json:"file_id"`
	FileName       string       `json:"file_name"`
	ContentType    string       `json:"content_type,omitempty"`
	Status         FileStatus   `json:"status"`
	NumChunks      uint64       `json:"num_chunks,omitempty"`
	UploadedChunks uint64       `json:"uploaded_chunks,omitempty"`
	OwnerKey       WrappedKey   `json:"owner_key,omitempty"`
	Alias          string       `json:"alias,omitempty"`
	Uploader       Principal    `json:"uploader,omitempty"`
	SharedWith     []PublicUser `json:"shared_with"`
	RequestedAt    *time.Time   `json:"requested_at,omitempty"`
	UploadedAt     *time.Time   `json:"uploaded_at,omitempty"`
}

func (f FileRecord) TableName() string {
	return "files"
}

// Downloadable reports whether every chunk of the file is stored.
func (f FileRecord) Downloadable() bool {
	return f.Status == FileStatusUploaded
}

// FileUpload is the body of a create or claim call. Content carries chunk 0.
type FileUpload struct {
	FileName    string     `json:"file_name"`
	ContentType string     `json:"content_type"`
	Content     []byte     `json:"content"`
	NumChunks   uint64     `json:"num_chunks"`
	OwnerKey    WrappedKey `json:"owner_key"`
}

// ChunkUpload is the body of an upload-chunk call.
type ChunkUpload struct {
	Contents []byte `json:"contents"`
}

// FileRequest asks the resource owner's storage to reserve a file name for
// an upload by someone else.
type FileRequest struct {
	FileName string `json:"file_name"`
}

// AliasInfo describes a requested upload to the party that will claim it.
type AliasInfo struct {
	FileID         FileID    `json:"file_id"`
	FileName       string    `json:"file_name"`
	Owner          Principal `json:"owner"`
	OwnerPublicKey []byte    `json:"owner_public_key"`
}

// ShareGrant is one recipient of a share call with the file key wrapped
// to that recipient.
type ShareGrant struct {
	Recipient  Principal  `json:"recipient"`
	WrappedKey WrappedKey `json:"wrapped_key"`
}

type ShareRequest struct {
	Grants []ShareGrant `json:"grants"`
}

type RevokeRequest struct {
	Recipients []Principal `json:"recipients"`
}

// PublicKeyBody carries a resource's public key on the wire.
type PublicKeyBody struct {
	PublicKey []byte `json:"public_key"`
}
