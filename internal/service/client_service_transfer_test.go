package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/MKhiriev/go-file-vault/internal/adapter"
	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/crypto"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/mock"
	"github.com/MKhiriev/go-file-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testResource = models.ResourceHandle("01929b1e-7c3a-7d4e-9f00-6a1b2c3d4e5f")
	testFileID   = models.FileID(7)
)

type transferFixture struct {
	svc      *clientTransferService
	storage  *mock.MockStorageAdapter
	keys     *mock.MockClientKeyService
	envelope crypto.EnvelopeCrypto
	kp       models.KeyPair
}

func newTransferFixture(t *testing.T, ctrl *gomock.Controller, cfg config.ClientTransfer) *transferFixture {
	t.Helper()

	envelope := crypto.NewEnvelopeCrypto()
	kp, err := envelope.GenerateKeyPair()
	require.NoError(t, err)

	storage := mock.NewMockStorageAdapter(ctrl)
	keys := mock.NewMockClientKeyService(ctrl)
	svc := NewClientTransferService(storage, envelope, keys, cfg, logger.Nop()).(*clientTransferService)

	return &transferFixture{svc: svc, storage: storage, keys: keys, envelope: envelope, kp: kp}
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

// remoteFile plays the storage resource for one file.
type remoteFile struct {
	mu     sync.Mutex
	upload models.FileUpload
	chunks map[uint64][]byte
	order  []uint64
}

func newRemoteFile() *remoteFile {
	return &remoteFile{chunks: make(map[uint64][]byte)}
}

func (r *remoteFile) create(_ context.Context, _ models.ResourceHandle, upload models.FileUpload) (models.CreateFileResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.upload = upload
	r.chunks[0] = upload.Content
	return models.CreateFileResponse{Kind: models.CreateFileOK, FileID: testFileID}, nil
}

func (r *remoteFile) put(_ context.Context, _ models.ResourceHandle, _ models.FileID, chunkID uint64, contents []byte) (models.UploadChunkResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.chunks[chunkID]; ok {
		return models.UploadChunkResponse{Kind: models.UploadChunkChunkAlreadyUploaded}, nil
	}
	r.chunks[chunkID] = contents
	r.order = append(r.order, chunkID)
	return models.UploadChunkResponse{Kind: models.UploadChunkOK}, nil
}

func (r *remoteFile) get(_ context.Context, _ models.ResourceHandle, _ models.FileID, chunkID uint64) (models.DownloadChunkResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, ok := r.chunks[chunkID]
	if !ok {
		return models.DownloadChunkResponse{Kind: models.DownloadNotUploadedYet}, nil
	}
	return models.DownloadChunkResponse{
		Kind:        models.DownloadFound,
		Contents:    contents,
		ContentType: r.upload.ContentType,
		FileName:    r.upload.FileName,
		OwnerKey:    r.upload.OwnerKey,
		NumChunks:   r.upload.NumChunks,
	}, nil
}

func (r *remoteFile) sent() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]uint64(nil), r.order...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *remoteFile) arrivals() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]uint64(nil), r.order...)
}

// storeInTurn holds every chunk call until all of turn are in flight, then
// lets them reach remote one at a time in turn order.
func storeInTurn(remote *remoteFile, turn []uint64) func(context.Context, models.ResourceHandle, models.FileID, uint64, []byte) (models.UploadChunkResponse, error) {
	ready := make(map[uint64]chan struct{}, len(turn))
	stored := make(map[uint64]chan struct{}, len(turn))
	for _, id := range turn {
		ready[id] = make(chan struct{})
		stored[id] = make(chan struct{})
	}

	var arrived sync.WaitGroup
	arrived.Add(len(turn))
	go func() {
		arrived.Wait()
		for _, id := range turn {
			close(ready[id])
			<-stored[id]
		}
	}()

	return func(ctx context.Context, r models.ResourceHandle, id models.FileID, chunkID uint64, c []byte) (models.UploadChunkResponse, error) {
		arrived.Done()
		<-ready[chunkID]
		defer close(stored[chunkID])
		return remote.put(ctx, r, id, chunkID, c)
	}
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestClientTransferService_Upload_ThreeChunksRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{
		ChunkSize:         2_000_000,
		MaxFileSize:       100 * 1024 * 1024,
		UploadConcurrency: 5,
	})
	ctx := context.Background()
	content := randomBytes(t, 5_000_000)
	remote := newRemoteFile()

	f.keys.EXPECT().OwnPublicKey(gomock.Any()).Return(f.kp.Public, nil)
	f.storage.EXPECT().CreateFile(gomock.Any(), testResource, gomock.Any()).DoAndReturn(remote.create)
	f.storage.EXPECT().UploadChunk(gomock.Any(), testResource, testFileID, gomock.Any(), gomock.Any()).
		DoAndReturn(remote.put).Times(2)

	result, err := f.svc.Upload(ctx, models.UploadRequest{
		Resource:    testResource,
		FileName:    "video.bin",
		ContentType: "application/octet-stream",
		Content:     content,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, models.UploadUploaded, result.Phase)
	assert.Equal(t, testFileID, result.FileID)
	assert.Equal(t, uint64(3), result.NumChunks)
	assert.Equal(t, uint64(3), result.Delivered)
	assert.Equal(t, uint64(3), remote.upload.NumChunks)
	assert.Len(t, remote.upload.Content, 2_000_000)
	assert.Equal(t, []uint64{1, 2}, remote.sent())

	f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, gomock.Any()).
		DoAndReturn(remote.get).Times(3)
	f.keys.EXPECT().OwnKeyPair(gomock.Any()).Return(f.kp, nil)

	var phases []models.ProgressPhase
	file, err := f.svc.Download(ctx, models.FileRef{
		Resource: testResource,
		FileID:   testFileID,
		Owned:    true,
		Status:   models.FileStatusUploaded,
	}, func(p models.Progress) { phases = append(phases, p.Phase) })
	require.NoError(t, err)

	assert.True(t, bytes.Equal(content, file.Contents))
	assert.Equal(t, "video.bin", file.FileName)
	assert.Equal(t, "application/octet-stream", file.ContentType)
	assert.Equal(t, []models.ProgressPhase{
		models.ProgressInitializing,
		models.ProgressDownloading,
		models.ProgressDownloading,
		models.ProgressDownloading,
		models.ProgressDecrypting,
	}, phases)
}

func TestClientTransferService_Upload_SingleChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{ChunkSize: 1024})
	remote := newRemoteFile()

	f.storage.EXPECT().CreateFile(gomock.Any(), testResource, gomock.Any()).DoAndReturn(remote.create)

	result, err := f.svc.Upload(context.Background(), models.UploadRequest{
		Resource:           testResource,
		FileName:           "note.txt",
		Content:            []byte("hello"),
		RecipientPublicKey: f.kp.Public,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.UploadUploaded, result.Phase)
	assert.Equal(t, uint64(1), result.NumChunks)
	assert.Equal(t, uint64(1), result.Delivered)
}

func TestClientTransferService_Upload_FileTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{ChunkSize: 16, MaxFileSize: 100})

	// No storage expectations: nothing may go over the network.
	result, err := f.svc.Upload(context.Background(), models.UploadRequest{
		Resource:           testResource,
		FileName:           "big.bin",
		Content:            make([]byte, 100),
		RecipientPublicKey: f.kp.Public,
	}, nil)
	require.ErrorIs(t, err, ErrFileTooLarge)
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.Equal(t, models.UploadFailed, result.Phase)
}

func TestClientTransferService_Upload_AbortAfterChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{ChunkSize: 10, UploadConcurrency: 1})
	remote := newRemoteFile()
	abort := models.NewAbortToken()

	f.storage.EXPECT().CreateFile(gomock.Any(), testResource, gomock.Any()).DoAndReturn(remote.create)
	f.storage.EXPECT().UploadChunk(gomock.Any(), testResource, testFileID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r models.ResourceHandle, id models.FileID, chunkID uint64, c []byte) (models.UploadChunkResponse, error) {
			resp, err := remote.put(ctx, r, id, chunkID, c)
			if chunkID == 2 {
				abort.Abort()
			}
			return resp, err
		}).Times(2)

	// 32 bytes of plaintext become 60 bytes of ciphertext: six chunks.
	result, err := f.svc.Upload(context.Background(), models.UploadRequest{
		Resource:           testResource,
		FileName:           "aborted.bin",
		Content:            randomBytes(t, 32),
		RecipientPublicKey: f.kp.Public,
	}, abort)
	require.NoError(t, err)

	assert.Equal(t, models.UploadAborted, result.Phase)
	assert.Equal(t, uint64(6), result.NumChunks)
	assert.Equal(t, uint64(3), result.Delivered)
	assert.Equal(t, []uint64{1, 2}, remote.sent())
}

func TestClientTransferService_Upload_AbortBeforeSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{ChunkSize: 10})
	abort := models.NewAbortToken()
	abort.Abort()

	result, err := f.svc.Upload(context.Background(), models.UploadRequest{
		Resource:           testResource,
		FileName:           "never.bin",
		Content:            []byte("data"),
		RecipientPublicKey: f.kp.Public,
	}, abort)
	require.NoError(t, err)
	assert.Equal(t, models.UploadAborted, result.Phase)
	assert.Zero(t, result.Delivered)
}

func TestClientTransferService_Upload_CancelledContextAborts(t *testing.T) {
	tests := []struct {
		name string
		// chunkErr is what the transport answers once the caller is cancelled.
		chunkErr func(ctx context.Context) error
	}{
		{name: "in-flight chunk completes", chunkErr: func(ctx context.Context) error { return ctx.Err() }},
		{name: "transport reports cancellation", chunkErr: func(context.Context) error { return context.Canceled }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTransferFixture(t, ctrl, config.ClientTransfer{ChunkSize: 10, UploadConcurrency: 1})
			remote := newRemoteFile()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			abort := models.NewAbortToken()
			stop := context.AfterFunc(ctx, abort.Abort)
			defer stop()

			f.storage.EXPECT().CreateFile(gomock.Any(), testResource, gomock.Any()).DoAndReturn(remote.create)
			f.storage.EXPECT().UploadChunk(gomock.Any(), testResource, testFileID, uint64(1), gomock.Any()).
				DoAndReturn(func(c context.Context, r models.ResourceHandle, id models.FileID, chunkID uint64, contents []byte) (models.UploadChunkResponse, error) {
					cancel()
					if err := tt.chunkErr(c); err != nil {
						return models.UploadChunkResponse{}, err
					}
					return remote.put(c, r, id, chunkID, contents)
				})

			result, err := f.svc.Upload(ctx, models.UploadRequest{
				Resource:           testResource,
				FileName:           "interrupted.bin",
				Content:            randomBytes(t, 32),
				RecipientPublicKey: f.kp.Public,
			}, abort)
			require.NoError(t, err)

			assert.Equal(t, models.UploadAborted, result.Phase)
			assert.Equal(t, uint64(6), result.NumChunks)
			assert.Less(t, result.Delivered, result.NumChunks)
		})
	}
}

func TestClientTransferService_Upload_ChunksStoredOutOfOrder(t *testing.T) {
	tests := []struct {
		name       string
		content    int
		chunkSize  int
		wantChunks uint64
		turn       []uint64
	}{
		// 1 byte of plaintext becomes 29 bytes of ciphertext.
		{name: "one byte of content", content: 1, chunkSize: 6, wantChunks: 5, turn: []uint64{3, 1, 4, 2}},
		// 32 bytes of plaintext become 60 bytes of ciphertext.
		{name: "exact multiple of chunk size", content: 32, chunkSize: 10, wantChunks: 6, turn: []uint64{5, 2, 4, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTransferFixture(t, ctrl, config.ClientTransfer{
				ChunkSize:         tt.chunkSize,
				UploadConcurrency: config.MaxUploadConcurrency,
			})
			content := randomBytes(t, tt.content)
			remote := newRemoteFile()
			turn := tt.turn

			f.storage.EXPECT().CreateFile(gomock.Any(), testResource, gomock.Any()).DoAndReturn(remote.create)
			f.storage.EXPECT().UploadChunk(gomock.Any(), testResource, testFileID, gomock.Any(), gomock.Any()).
				DoAndReturn(storeInTurn(remote, turn)).Times(len(turn))

			result, err := f.svc.Upload(context.Background(), models.UploadRequest{
				Resource:           testResource,
				FileName:           "shuffled.bin",
				Content:            content,
				RecipientPublicKey: f.kp.Public,
			}, nil)
			require.NoError(t, err)
			require.Equal(t, models.UploadUploaded, result.Phase)
			require.Equal(t, tt.wantChunks, result.NumChunks)
			assert.Equal(t, turn, remote.arrivals())

			f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, gomock.Any()).
				DoAndReturn(remote.get).Times(int(tt.wantChunks))
			f.keys.EXPECT().OwnKeyPair(gomock.Any()).Return(f.kp, nil)

			file, err := f.svc.Download(context.Background(), models.FileRef{
				Resource: testResource,
				FileID:   testFileID,
				Owned:    true,
				Status:   models.FileStatusUploaded,
			}, nil)
			require.NoError(t, err)
			assert.Equal(t, content, file.Contents)
		})
	}
}

func TestClientTransferService_Upload_SubmitOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		alias   string
		resp    models.CreateFileResponse
		err     error
		wantErr error
	}{
		{name: "already exists", resp: models.CreateFileResponse{Kind: models.CreateFileAlreadyExists}, wantErr: ErrFileAlreadyExists},
		{name: "not requested", alias: "a", resp: models.CreateFileResponse{Kind: models.CreateFileNotRequested}, wantErr: ErrNotRequested},
		{name: "already uploaded", alias: "a", resp: models.CreateFileResponse{Kind: models.CreateFileAlreadyUploaded}, wantErr: ErrAlreadyUploaded},
		{name: "unknown kind", resp: models.CreateFileResponse{Kind: "surprise"}, wantErr: ErrUnknownResponse},
		{name: "transport", err: fmt.Errorf("create file request: %w", adapter.ErrTransport), wantErr: ErrTransient},
		{name: "unauthorized", err: adapter.ErrUnauthorized, wantErr: ErrAnonymousCaller},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTransferFixture(t, ctrl, config.ClientTransfer{ChunkSize: 1024})

			if tt.alias != "" {
				f.storage.EXPECT().ClaimRequest(gomock.Any(), testResource, tt.alias, gomock.Any()).Return(tt.resp, tt.err)
			} else {
				f.storage.EXPECT().CreateFile(gomock.Any(), testResource, gomock.Any()).Return(tt.resp, tt.err)
			}

			result, err := f.svc.Upload(context.Background(), models.UploadRequest{
				Resource:           testResource,
				FileName:           "x",
				Content:            []byte("x"),
				RecipientPublicKey: f.kp.Public,
				Alias:              tt.alias,
			}, nil)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.UploadFailed, result.Phase)
		})
	}
}

func TestClientTransferService_Upload_ChunkRejected(t *testing.T) {
	tests := []struct {
		kind     models.UploadChunkKind
		wantErr  error
		wantKind ErrorKind
	}{
		{models.UploadChunkFileNotFound, ErrFileNotFound, KindNotFound},
		{models.UploadChunkAlreadyUploaded, ErrAlreadyUploaded, KindStateConflict},
		{models.UploadChunkOutOfBounds, ErrChunkOutOfBounds, KindStateConflict},
		{models.UploadChunkNotClaimed, ErrNotClaimed, KindStateConflict},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTransferFixture(t, ctrl, config.ClientTransfer{ChunkSize: 10, UploadConcurrency: 1})
			remote := newRemoteFile()

			f.storage.EXPECT().CreateFile(gomock.Any(), testResource, gomock.Any()).DoAndReturn(remote.create)
			f.storage.EXPECT().UploadChunk(gomock.Any(), testResource, testFileID, uint64(1), gomock.Any()).
				Return(models.UploadChunkResponse{Kind: tt.kind}, nil)
			f.storage.EXPECT().UploadChunk(gomock.Any(), testResource, testFileID, gomock.Any(), gomock.Any()).
				Return(models.UploadChunkResponse{Kind: models.UploadChunkOK}, nil).AnyTimes()

			result, err := f.svc.Upload(context.Background(), models.UploadRequest{
				Resource:           testResource,
				FileName:           "x",
				Content:            randomBytes(t, 32),
				RecipientPublicKey: f.kp.Public,
			}, nil)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKind, KindOf(err))
			assert.Equal(t, models.UploadFailed, result.Phase)
		})
	}
}

func TestClientTransferService_Upload_ChunkAlreadyUploadedIsDelivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{ChunkSize: 10})
	remote := newRemoteFile()

	f.storage.EXPECT().CreateFile(gomock.Any(), testResource, gomock.Any()).DoAndReturn(remote.create)
	f.storage.EXPECT().UploadChunk(gomock.Any(), testResource, testFileID, gomock.Any(), gomock.Any()).
		Return(models.UploadChunkResponse{Kind: models.UploadChunkChunkAlreadyUploaded}, nil).Times(2)

	// 2 bytes of plaintext become 30 bytes of ciphertext: three chunks.
	result, err := f.svc.Upload(context.Background(), models.UploadRequest{
		Resource:           testResource,
		FileName:           "x",
		Content:            []byte("hi"),
		RecipientPublicKey: f.kp.Public,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.UploadUploaded, result.Phase)
	assert.Equal(t, uint64(3), result.Delivered)
}

func TestClientTransferService_Upload_ClaimWrapsToOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{ChunkSize: 1024})

	owner, err := f.envelope.GenerateKeyPair()
	require.NoError(t, err)

	f.storage.EXPECT().ClaimRequest(gomock.Any(), testResource, "alias-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.ResourceHandle, _ string, upload models.FileUpload) (models.CreateFileResponse, error) {
			_, err := f.envelope.UnwrapKey(upload.OwnerKey, owner.Public, owner.Private)
			assert.NoError(t, err, "file key must be wrapped to the resource owner")
			_, err = f.envelope.UnwrapKey(upload.OwnerKey, f.kp.Public, f.kp.Private)
			assert.Error(t, err, "uploader must not be able to unwrap")
			return models.CreateFileResponse{Kind: models.CreateFileOK, FileID: testFileID}, nil
		})

	result, err := f.svc.Upload(context.Background(), models.UploadRequest{
		Resource:           testResource,
		FileName:           "report.pdf",
		Content:            []byte("%PDF"),
		RecipientPublicKey: owner.Public,
		Alias:              "alias-1",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.UploadUploaded, result.Phase)
}

// ── Download ─────────────────────────────────────────────────────────────────

func uploadedRemote(t *testing.T, f *transferFixture, content []byte, chunkSize int, recipient []byte) *remoteFile {
	t.Helper()

	fileKey, err := f.envelope.GenerateFileKey()
	require.NoError(t, err)
	ciphertext, err := f.envelope.EncryptContent(fileKey, content)
	require.NoError(t, err)
	wrapped, err := f.envelope.WrapKey(fileKey, recipient)
	require.NoError(t, err)

	chunks := splitChunks(ciphertext, chunkSize)
	remote := newRemoteFile()
	remote.upload = models.FileUpload{
		FileName:    "shared.txt",
		ContentType: "text/plain",
		NumChunks:   uint64(len(chunks)),
		OwnerKey:    wrapped,
	}
	for i, c := range chunks {
		remote.chunks[uint64(i)] = c
	}
	return remote
}

func TestClientTransferService_Download_SharedFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{})
	content := []byte("a file somebody shared with me")
	remote := uploadedRemote(t, f, content, 8, f.kp.Public)

	f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, gomock.Any()).
		DoAndReturn(remote.get).Times(int(remote.upload.NumChunks))
	f.keys.EXPECT().OwnKeyPair(gomock.Any()).Return(f.kp, nil)

	file, err := f.svc.Download(context.Background(), models.FileRef{Resource: testResource, FileID: testFileID}, nil)
	require.NoError(t, err)
	assert.Equal(t, content, file.Contents)
	assert.Equal(t, "shared.txt", file.FileName)
}

func TestClientTransferService_Download_StatusPrecheck(t *testing.T) {
	tests := []struct {
		status  models.FileStatus
		wantErr error
	}{
		{models.FileStatusPending, ErrFilePending},
		{models.FileStatusPartiallyUploaded, ErrFileNotUploaded},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTransferFixture(t, ctrl, config.ClientTransfer{})

			// DownloadChunk has no expectation: it must not be called.
			_, err := f.svc.Download(context.Background(), models.FileRef{
				Resource: testResource,
				FileID:   testFileID,
				Owned:    true,
				Status:   tt.status,
			}, nil)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientTransferService_Download_StatusFromListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{})

	f.storage.EXPECT().ListRequests(gomock.Any(), testResource).Return([]models.FileRecord{
		{FileID: testFileID, FileName: "x", Status: models.FileStatusPartiallyUploaded},
	}, nil)

	_, err := f.svc.Download(context.Background(), models.FileRef{Resource: testResource, FileID: testFileID, Owned: true}, nil)
	require.ErrorIs(t, err, ErrFileNotUploaded)
}

func TestClientTransferService_Download_ShareInconsistent(t *testing.T) {
	tests := []struct {
		name string
		resp models.DownloadChunkResponse
		err  error
	}{
		{name: "not found", resp: models.DownloadChunkResponse{Kind: models.DownloadNotFound}},
		{name: "permission", resp: models.DownloadChunkResponse{Kind: models.DownloadPermissionError}},
		{name: "forbidden status", err: adapter.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTransferFixture(t, ctrl, config.ClientTransfer{})

			f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, uint64(0)).Return(tt.resp, tt.err)

			_, err := f.svc.Download(context.Background(), models.FileRef{Resource: testResource, FileID: testFileID}, nil)
			require.ErrorIs(t, err, ErrShareInconsistent)
			assert.Equal(t, KindStateConflict, KindOf(err))
		})
	}
}

func TestClientTransferService_Download_OwnedNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{})

	f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, uint64(0)).
		Return(models.DownloadChunkResponse{Kind: models.DownloadNotFound}, nil)

	_, err := f.svc.Download(context.Background(), models.FileRef{
		Resource: testResource,
		FileID:   testFileID,
		Owned:    true,
		Status:   models.FileStatusUploaded,
	}, nil)
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestClientTransferService_Download_OwnedTransportNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{})

	f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, uint64(0)).
		Return(models.DownloadChunkResponse{}, fmt.Errorf("download chunk request: %w", adapter.ErrNotFound))

	_, err := f.svc.Download(context.Background(), models.FileRef{
		Resource: testResource,
		FileID:   testFileID,
		Owned:    true,
		Status:   models.FileStatusUploaded,
	}, nil)
	require.ErrorIs(t, err, ErrFileNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestClientTransferService_Download_ChunkCountOverLimit(t *testing.T) {
	tests := []struct {
		name      string
		first     int
		numChunks uint64
	}{
		{name: "huge count", first: 2_000_000, numChunks: 1 << 40},
		{name: "count overflows int", first: 4096, numChunks: 1<<63 + 1},
		{name: "just over the limit", first: 1000, numChunks: 12},
		{name: "empty first chunk", first: 0, numChunks: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTransferFixture(t, ctrl, config.ClientTransfer{ChunkSize: 1000, MaxFileSize: 10_000})

			// Only chunk 0 may be fetched.
			f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, uint64(0)).
				Return(models.DownloadChunkResponse{
					Kind:      models.DownloadFound,
					Contents:  make([]byte, tt.first),
					NumChunks: tt.numChunks,
				}, nil)

			var err error
			require.NotPanics(t, func() {
				_, err = f.svc.Download(context.Background(), models.FileRef{Resource: testResource, FileID: testFileID}, nil)
			})
			require.ErrorIs(t, err, ErrFileTooLarge)
		})
	}
}

func TestClientTransferService_Download_ChunksPastLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{ChunkSize: 10, MaxFileSize: 25})

	// A small first chunk claims a count the limit allows, then later chunks grow.
	f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, uint64(0)).
		Return(models.DownloadChunkResponse{Kind: models.DownloadFound, Contents: make([]byte, 10), NumChunks: 3}, nil)
	f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, uint64(1)).
		Return(models.DownloadChunkResponse{Kind: models.DownloadFound, Contents: make([]byte, 20), NumChunks: 3}, nil)

	_, err := f.svc.Download(context.Background(), models.FileRef{Resource: testResource, FileID: testFileID}, nil)
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestClientTransferService_Download_WrongDeviceKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{})

	other, err := f.envelope.GenerateKeyPair()
	require.NoError(t, err)
	remote := uploadedRemote(t, f, []byte("secret"), 1024, other.Public)

	f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, uint64(0)).DoAndReturn(remote.get)
	f.keys.EXPECT().OwnKeyPair(gomock.Any()).Return(f.kp, nil)

	_, err = f.svc.Download(context.Background(), models.FileRef{Resource: testResource, FileID: testFileID}, nil)
	require.ErrorIs(t, err, ErrKeyUnavailable)
	assert.Equal(t, KindIntegrity, KindOf(err))
	assert.Equal(t, deviceKeyHint, Hint(err))
}

func TestClientTransferService_Download_CorruptedChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{})
	remote := uploadedRemote(t, f, []byte("some content to corrupt"), 16, f.kp.Public)
	remote.chunks[1][0] ^= 0xFF

	f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, gomock.Any()).
		DoAndReturn(remote.get).Times(int(remote.upload.NumChunks))
	f.keys.EXPECT().OwnKeyPair(gomock.Any()).Return(f.kp, nil)

	_, err := f.svc.Download(context.Background(), models.FileRef{Resource: testResource, FileID: testFileID}, nil)
	require.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Equal(t, KindIntegrity, KindOf(err))
}

func TestClientTransferService_Download_MissingChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t, ctrl, config.ClientTransfer{})
	remote := uploadedRemote(t, f, []byte("some content with a hole"), 16, f.kp.Public)
	delete(remote.chunks, 1)

	f.storage.EXPECT().DownloadChunk(gomock.Any(), testResource, testFileID, gomock.Any()).
		DoAndReturn(remote.get).Times(2)

	_, err := f.svc.Download(context.Background(), models.FileRef{Resource: testResource, FileID: testFileID}, nil)
	require.ErrorIs(t, err, ErrFileNotUploaded)
}

// ── splitChunks ──────────────────────────────────────────────────────────────

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		chunkSize int
		wantSizes []int
	}{
		{name: "empty", size: 0, chunkSize: 4, wantSizes: []int{0}},
		{name: "smaller than chunk", size: 3, chunkSize: 4, wantSizes: []int{3}},
		{name: "exact multiple", size: 8, chunkSize: 4, wantSizes: []int{4, 4}},
		{name: "remainder", size: 9, chunkSize: 4, wantSizes: []int{4, 4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := splitChunks(make([]byte, tt.size), tt.chunkSize)

			sizes := make([]int, len(chunks))
			for i, c := range chunks {
				sizes[i] = len(c)
			}
			assert.Equal(t, tt.wantSizes, sizes)
		})
	}
}
