// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-file-vault/models"
)

// Storage resource routes. {resource} is the handle issued by the directory.
const (
	filesPath     = "/api/resources/{resource}/files"
	filePath      = "/api/resources/{resource}/files/{file}"
	chunkPath     = "/api/resources/{resource}/files/{file}/chunks/{chunk}"
	sharesPath    = "/api/resources/{resource}/files/{file}/shares"
	revokePath    = "/api/resources/{resource}/files/{file}/shares/revoke"
	requestsPath  = "/api/resources/{resource}/requests"
	aliasPath     = "/api/resources/{resource}/aliases/{alias}"
	publicKeyPath = "/api/resources/{resource}/public-key"
)

// CreateFile implements [StorageAdapter] via POST .../files.
func (h *httpServerAdapter) CreateFile(ctx context.Context, resource models.ResourceHandle, upload models.FileUpload) (models.CreateFileResponse, error) {
	var result models.CreateFileResponse

	resp, err := h.resourceRequest(ctx, resource).
		SetHeader("Content-Type", "application/json").
		SetBody(upload).
		SetResult(&result).
		Post(filesPath)
	if err != nil {
		return result, requestError("create file", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// RequestFile implements [StorageAdapter] via POST .../requests.
func (h *httpServerAdapter) RequestFile(ctx context.Context, resource models.ResourceHandle, fileName string) (models.RequestFileResponse, error) {
	var result models.RequestFileResponse

	resp, err := h.resourceRequest(ctx, resource).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FileRequest{FileName: fileName}).
		SetResult(&result).
		Post(requestsPath)
	if err != nil {
		return result, requestError("request file", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// GetAliasInfo implements [StorageAdapter] via GET .../aliases/{alias}.
func (h *httpServerAdapter) GetAliasInfo(ctx context.Context, resource models.ResourceHandle, alias string) (models.AliasInfoResponse, error) {
	var result models.AliasInfoResponse

	resp, err := h.resourceRequest(ctx, resource).
		SetPathParam("alias", alias).
		SetResult(&result).
		Get(aliasPath)
	if err != nil {
		return result, requestError("alias info", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// ClaimRequest implements [StorageAdapter] via POST .../aliases/{alias}.
func (h *httpServerAdapter) ClaimRequest(ctx context.Context, resource models.ResourceHandle, alias string, upload models.FileUpload) (models.CreateFileResponse, error) {
	var result models.CreateFileResponse

	resp, err := h.resourceRequest(ctx, resource).
		SetPathParam("alias", alias).
		SetHeader("Content-Type", "application/json").
		SetBody(upload).
		SetResult(&result).
		Post(aliasPath)
	if err != nil {
		return result, requestError("claim request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// UploadChunk implements [StorageAdapter] via
// PUT .../files/{file}/chunks/{chunk}.
func (h *httpServerAdapter) UploadChunk(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, chunkID uint64, contents []byte) (models.UploadChunkResponse, error) {
	var result models.UploadChunkResponse

	resp, err := h.resourceRequest(ctx, resource).
		SetPathParam("file", fileIDParam(fileID)).
		SetPathParam("chunk", strconv.FormatUint(chunkID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChunkUpload{Contents: contents}).
		SetResult(&result).
		Put(chunkPath)
	if err != nil {
		return result, requestError("upload chunk", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// DownloadChunk implements [StorageAdapter] via
// GET .../files/{file}/chunks/{chunk}.
func (h *httpServerAdapter) DownloadChunk(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, chunkID uint64) (models.DownloadChunkResponse, error) {
	var result models.DownloadChunkResponse

	resp, err := h.resourceRequest(ctx, resource).
		SetPathParam("file", fileIDParam(fileID)).
		SetPathParam("chunk", strconv.FormatUint(chunkID, 10)).
		SetResult(&result).
		Get(chunkPath)
	if err != nil {
		return result, requestError("download chunk", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// ListRequests implements [StorageAdapter] via GET .../files.
func (h *httpServerAdapter) ListRequests(ctx context.Context, resource models.ResourceHandle) ([]models.FileRecord, error) {
	var result []models.FileRecord

	resp, err := h.resourceRequest(ctx, resource).
		SetResult(&result).
		Get(filesPath)
	if err != nil {
		return nil, requestError("list files", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteFile implements [StorageAdapter] via DELETE .../files/{file}.
func (h *httpServerAdapter) DeleteFile(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) (models.DeleteFileResponse, error) {
	var result models.DeleteFileResponse

	resp, err := h.resourceRequest(ctx, resource).
		SetPathParam("file", fileIDParam(fileID)).
		SetResult(&result).
		Delete(filePath)
	if err != nil {
		return result, requestError("delete file", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// Share implements [StorageAdapter] via POST .../files/{file}/shares.
func (h *httpServerAdapter) Share(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, grants []models.ShareGrant) (models.ShareResponse, error) {
	var result models.ShareResponse

	resp, err := h.resourceRequest(ctx, resource).
		SetPathParam("file", fileIDParam(fileID)).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ShareRequest{Grants: grants}).
		SetResult(&result).
		Post(sharesPath)
	if err != nil {
		return result, requestError("share", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// Revoke implements [StorageAdapter] via POST .../files/{file}/shares/revoke.
func (h *httpServerAdapter) Revoke(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) (models.RevokeResponse, error) {
	var result models.RevokeResponse

	resp, err := h.resourceRequest(ctx, resource).
		SetPathParam("file", fileIDParam(fileID)).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RevokeRequest{Recipients: recipients}).
		SetResult(&result).
		Post(revokePath)
	if err != nil {
		return result, requestError("revoke", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// AllowedUsers implements [StorageAdapter] via GET .../files/{file}/shares.
func (h *httpServerAdapter) AllowedUsers(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) ([]models.PublicUser, error) {
	var result []models.PublicUser

	resp, err := h.resourceRequest(ctx, resource).
		SetPathParam("file", fileIDParam(fileID)).
		SetResult(&result).
		Get(sharesPath)
	if err != nil {
		return nil, requestError("allowed users", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// GetPublicKey implements [StorageAdapter] via GET .../public-key.
func (h *httpServerAdapter) GetPublicKey(ctx context.Context, resource models.ResourceHandle) ([]byte, error) {
	var result models.PublicKeyBody

	resp, err := h.resourceRequest(ctx, resource).
		SetResult(&result).
		Get(publicKeyPath)
	if err != nil {
		return nil, requestError("get public key", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.PublicKey, nil
}

// SetPublicKey implements [StorageAdapter] via PUT .../public-key.
func (h *httpServerAdapter) SetPublicKey(ctx context.Context, resource models.ResourceHandle, publicKey []byte) error {
	resp, err := h.resourceRequest(ctx, resource).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PublicKeyBody{PublicKey: publicKey}).
		Put(publicKeyPath)
	if err != nil {
		return requestError("set public key", err)
	}

	return mapHTTPError(resp)
}
