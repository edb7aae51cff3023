package models

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// UploadRequest is everything the transfer service needs to encrypt and
// upload one file.
//
// RecipientPublicKey is the key the file key is wrapped to: the caller's own
// key for a fresh file, or the resource owner's key when Alias claims a
// requested upload on someone else's resource.
type UploadRequest struct {
	Resource           ResourceHandle
	FileName           string
	ContentType        string
	Content            []byte
	RecipientPublicKey []byte
	Alias              string
}

// UploadPhase is the lifecycle of one upload.
type UploadPhase string

const (
	UploadLocal            UploadPhase = "local"
	UploadSubmitting       UploadPhase = "submitting"
	UploadContinuingChunks UploadPhase = "continuing_chunks"
	UploadUploaded         UploadPhase = "uploaded"
	UploadAborted          UploadPhase = "aborted"
	UploadFailed           UploadPhase = "failed"
)

// Terminal reports whether no further transitions are possible.
func (p UploadPhase) Terminal() bool {
	return p == UploadUploaded || p == UploadAborted || p == UploadFailed
}

// UploadResult is the outcome of an upload. Delivered counts the chunks the
// destination acknowledged, chunk 0 included.
type UploadResult struct {
	Phase     UploadPhase
	FileID    FileID
	NumChunks uint64
	Delivered uint64
}

// FileRef points at a downloadable file. Owned is set when the file lives on
// the caller's own resource; Status is only known for owned files.
type FileRef struct {
	Resource ResourceHandle
	FileID   FileID
	FileName string
	Owned    bool
	Status   FileStatus
}

// DownloadedFile is a decrypted file.
type DownloadedFile struct {
	FileName    string
	ContentType string
	Contents    []byte
}

// ProgressPhase is reported by downloads.
type ProgressPhase string

const (
	ProgressInitializing ProgressPhase = "initializing"
	ProgressDownloading  ProgressPhase = "downloading"
	ProgressDecrypting   ProgressPhase = "decrypting"
)

type Progress struct {
	Phase        ProgressPhase
	TotalChunks  uint64
	CurrentChunk uint64
}

// Fraction is the completed share of the download in [0, 1].
func (p Progress) Fraction() float64 {
	switch {
	case p.Phase == ProgressDecrypting:
		return 1
	case p.TotalChunks == 0:
		return 0
	default:
		return float64(p.CurrentChunk) / float64(p.TotalChunks)
	}
}

// UploadRequestRef is what an owner hands to the person who should upload a
// requested file. It renders as "<resource>/<alias>".
type UploadRequestRef struct {
	Resource ResourceHandle
	Alias    string
	FileID   FileID
}

func (r UploadRequestRef) String() string {
	return r.Resource.String() + "/" + r.Alias
}

// ParseUploadRequestRef parses the "<resource>/<alias>" form.
func ParseUploadRequestRef(s string) (UploadRequestRef, error) {
	resource, alias, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || alias == "" {
		return UploadRequestRef{}, fmt.Errorf("invalid upload request reference %q", s)
	}

	handle, err := ParseResourceHandle(resource)
	if err != nil {
		return UploadRequestRef{}, err
	}
	if _, err = uuid.Parse(alias); err != nil {
		return UploadRequestRef{}, fmt.Errorf("invalid upload alias %q: %w", alias, err)
	}

	return UploadRequestRef{Resource: handle, Alias: alias}, nil
}

// AbortToken cancels an upload between chunks. The zero value is usable and
// a nil token never aborts.
type AbortToken struct {
	aborted atomic.Bool
}

func NewAbortToken() *AbortToken {
	return &AbortToken{}
}

func (t *AbortToken) Abort() {
	if t != nil {
		t.aborted.Store(true)
	}
}

func (t *AbortToken) Aborted() bool {
	return t != nil && t.aborted.Load()
}
