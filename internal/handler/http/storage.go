// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/utils"
	"github.com/MKhiriev/go-file-vault/models"
)

// Storage handlers run behind auth and withResource, so every request carries
// a principal and a well-formed resource handle.

func (h *Handler) createFile(w http.ResponseWriter, r *http.Request) {
	var upload models.FileUpload
	if err := decode(w, r, &upload, h.limits.MaxRequestBodyBytes()); err != nil {
		fail(w, r, err, "invalid file upload")
		return
	}

	resp, err := h.services.StorageService.CreateFile(r.Context(), callerFromRequest(r), resourceFromRequest(r), upload)
	if err != nil {
		fail(w, r, err, "error creating file")
		return
	}

	logger.FromRequest(r).Debug().Str("kind", string(resp.Kind)).Uint64("file_id", uint64(resp.FileID)).Msg("file created")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) requestFile(w http.ResponseWriter, r *http.Request) {
	var req models.FileRequest
	if err := decode(w, r, &req, smallBodyLimit); err != nil {
		fail(w, r, err, "invalid file request")
		return
	}

	resp, err := h.services.StorageService.RequestFile(r.Context(), callerFromRequest(r), resourceFromRequest(r), req.FileName)
	if err != nil {
		fail(w, r, err, "error requesting file")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getAliasInfo(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.StorageService.GetAliasInfo(r.Context(), callerFromRequest(r), resourceFromRequest(r), chi.URLParam(r, "alias"))
	if err != nil {
		fail(w, r, err, "error getting alias info")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) claimRequest(w http.ResponseWriter, r *http.Request) {
	var upload models.FileUpload
	if err := decode(w, r, &upload, h.limits.MaxRequestBodyBytes()); err != nil {
		fail(w, r, err, "invalid file upload")
		return
	}

	resp, err := h.services.StorageService.ClaimRequest(r.Context(), callerFromRequest(r), resourceFromRequest(r), chi.URLParam(r, "alias"), upload)
	if err != nil {
		fail(w, r, err, "error claiming request")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) uploadChunk(w http.ResponseWriter, r *http.Request) {
	fileID, chunkID, err := chunkParams(r)
	if err != nil {
		fail(w, r, err, "bad chunk path")
		return
	}

	var chunk models.ChunkUpload
	if err = decode(w, r, &chunk, h.limits.MaxRequestBodyBytes()); err != nil {
		fail(w, r, err, "invalid chunk upload")
		return
	}

	resp, err := h.services.StorageService.UploadChunk(r.Context(), callerFromRequest(r), resourceFromRequest(r), fileID, chunkID, chunk.Contents)
	if err != nil {
		fail(w, r, err, "error uploading chunk")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) downloadChunk(w http.ResponseWriter, r *http.Request) {
	fileID, chunkID, err := chunkParams(r)
	if err != nil {
		fail(w, r, err, "bad chunk path")
		return
	}

	resp, err := h.services.StorageService.DownloadChunk(r.Context(), callerFromRequest(r), resourceFromRequest(r), fileID, chunkID)
	if err != nil {
		fail(w, r, err, "error downloading chunk")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.services.StorageService.ListFiles(r.Context(), callerFromRequest(r), resourceFromRequest(r))
	if err != nil {
		fail(w, r, err, "error listing files")
		return
	}
	utils.WriteJSON(w, files, http.StatusOK)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileParam(r)
	if err != nil {
		fail(w, r, err, "bad file path")
		return
	}

	resp, err := h.services.StorageService.DeleteFile(r.Context(), callerFromRequest(r), resourceFromRequest(r), fileID)
	if err != nil {
		fail(w, r, err, "error deleting file")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) shareFile(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileParam(r)
	if err != nil {
		fail(w, r, err, "bad file path")
		return
	}

	var req models.ShareRequest
	if err = decode(w, r, &req, smallBodyLimit); err != nil {
		fail(w, r, err, "invalid share request")
		return
	}

	resp, err := h.services.StorageService.Share(r.Context(), callerFromRequest(r), resourceFromRequest(r), fileID, req.Grants)
	if err != nil {
		fail(w, r, err, "error sharing file")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) revokeShare(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileParam(r)
	if err != nil {
		fail(w, r, err, "bad file path")
		return
	}

	var req models.RevokeRequest
	if err = decode(w, r, &req, smallBodyLimit); err != nil {
		fail(w, r, err, "invalid revoke request")
		return
	}

	resp, err := h.services.StorageService.Revoke(r.Context(), callerFromRequest(r), resourceFromRequest(r), fileID, req.Recipients)
	if err != nil {
		fail(w, r, err, "error revoking share")
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) allowedUsers(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileParam(r)
	if err != nil {
		fail(w, r, err, "bad file path")
		return
	}

	users, err := h.services.StorageService.AllowedUsers(r.Context(), callerFromRequest(r), resourceFromRequest(r), fileID)
	if err != nil {
		fail(w, r, err, "error listing allowed users")
		return
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getPublicKey(w http.ResponseWriter, r *http.Request) {
	publicKey, err := h.services.StorageService.GetPublicKey(r.Context(), callerFromRequest(r), resourceFromRequest(r))
	if err != nil {
		fail(w, r, err, "error getting public key")
		return
	}
	utils.WriteJSON(w, models.PublicKeyBody{PublicKey: publicKey}, http.StatusOK)
}

func (h *Handler) setPublicKey(w http.ResponseWriter, r *http.Request) {
	var body models.PublicKeyBody
	if err := decode(w, r, &body, smallBodyLimit); err != nil {
		fail(w, r, err, "invalid public key")
		return
	}

	if err := h.services.StorageService.SetPublicKey(r.Context(), callerFromRequest(r), resourceFromRequest(r), body.PublicKey); err != nil {
		fail(w, r, err, "error setting public key")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func fileParam(r *http.Request) (models.FileID, error) {
	raw := chi.URLParam(r, "file")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidFileID, raw)
	}
	return models.FileID(id), nil
}

func chunkParams(r *http.Request) (models.FileID, uint64, error) {
	fileID, err := fileParam(r)
	if err != nil {
		return 0, 0, err
	}

	raw := chi.URLParam(r, "chunk")
	chunkID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q", ErrInvalidChunkID, raw)
	}
	return fileID, chunkID, nil
}
