package tui

import (
	"context"
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/mock"
	"github.com/MKhiriev/go-file-vault/internal/service"
	"github.com/MKhiriev/go-file-vault/models"
)

// ── fixture ──

type browserFixture struct {
	model    browserModel
	sharing  *mock.MockClientSharingService
	transfer *mock.MockClientTransferService
	dir      string
}

func newBrowserFixture(t *testing.T, resolved bool) *browserFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	hub := service.NewSessionHub()
	hub.Update(func(models.SessionState) models.SessionState {
		st := models.SessionState{Status: models.SessionRegistered, Principal: me, User: &models.PublicUser{Principal: me, Username: "alice"}}
		if resolved {
			st.Provisioning = models.ProvisioningResult{Outcome: models.ProvisioningResolved, Resource: myRes}
		}
		return st
	})

	f := &browserFixture{
		sharing:  mock.NewMockClientSharingService(ctrl),
		transfer: mock.NewMockClientTransferService(ctrl),
		dir:      t.TempDir(),
	}
	services := &service.ClientServices{Session: hub, SharingService: f.sharing, TransferService: f.transfer}
	f.model = newBrowserModel(context.Background(), services, models.NewAppBuildInfo("v1", "", ""), f.dir, logger.Nop())
	return f
}

func (f *browserFixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	f.model = next.(browserModel)
	return cmd
}

func (f *browserFixture) press(t *testing.T, k string) tea.Cmd {
	t.Helper()
	switch k {
	case "enter":
		return f.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return f.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	case "down":
		return f.send(t, tea.KeyMsg{Type: tea.KeyDown})
	default:
		return f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

var (
	ownedRecords = []models.FileRecord{
		{FileID: 1, FileName: "notes.txt", Status: models.FileStatusUploaded},
		{FileID: 2, FileName: "requested.bin", Status: models.FileStatusPending},
	}
	sharedIn = []models.SharedResource{{
		Resource: bobRes,
		Owner:    models.PublicUser{Principal: bob, Username: "bob"},
		Files:    []models.FileSummary{{FileID: 9, FileName: "from-bob.pdf", SharedWith: []models.PublicUser{{Principal: me}}}},
	}}
)

func (f *browserFixture) loaded(t *testing.T) {
	t.Helper()
	f.send(t, filesLoadedMsg{rows: append(ownedRows(myRes, ownedRecords), sharedRows(me, sharedIn)...)})
}

// ── loading ──

func TestBrowser_LoadFiles(t *testing.T) {
	f := newBrowserFixture(t, true)
	f.sharing.EXPECT().ListOwned(gomock.Any()).Return(ownedRecords, nil)
	f.sharing.EXPECT().ListSharedIn(gomock.Any()).Return(sharedIn, nil)

	msg := f.model.cmdLoadFiles()().(filesLoadedMsg)

	require.NoError(t, msg.err)
	require.Len(t, msg.rows, 3)
	assert.True(t, msg.rows[0].ref.Owned)
	assert.Equal(t, "from-bob.pdf", msg.rows[2].ref.FileName)

	f.send(t, msg)
	assert.False(t, f.model.list.loading)
	assert.Contains(t, f.model.View(), "notes.txt")
	assert.Contains(t, f.model.View(), "Only You")
}

func TestBrowser_LoadFiles_UnresolvedSkipsOwned(t *testing.T) {
	f := newBrowserFixture(t, false)
	f.sharing.EXPECT().ListSharedIn(gomock.Any()).Return(sharedIn, nil)

	msg := f.model.cmdLoadFiles()().(filesLoadedMsg)

	require.NoError(t, msg.err)
	require.Len(t, msg.rows, 1)
	assert.False(t, msg.rows[0].ref.Owned)
}

func TestBrowser_LoadFiles_Error(t *testing.T) {
	f := newBrowserFixture(t, true)
	f.sharing.EXPECT().ListOwned(gomock.Any()).Return(nil, service.ErrTransient)

	f.send(t, f.model.cmdLoadFiles()())

	assert.ErrorIs(t, f.model.list.lastErr, service.ErrTransient)
	assert.Contains(t, f.model.View(), "try again later")
}

// ── detail and delete ──

func TestBrowser_DetailLoadsAllowedUsers(t *testing.T) {
	f := newBrowserFixture(t, true)
	f.loaded(t)
	users := []models.PublicUser{{Principal: bob, Username: "bob"}}
	f.sharing.EXPECT().AllowedUsers(gomock.Any(), models.FileID(1)).Return(users, nil)

	cmd := f.press(t, "enter")
	require.Equal(t, screenDetail, f.model.screen)
	require.NotNil(t, cmd)
	f.send(t, cmd())

	assert.Equal(t, users, f.model.detail.allowed)
	assert.Contains(t, f.model.View(), "bob ("+bob.String()+")")

	f.press(t, "esc")
	assert.Equal(t, screenList, f.model.screen)
}

func TestBrowser_SharedDetailHasNoDelete(t *testing.T) {
	f := newBrowserFixture(t, true)
	f.loaded(t)
	f.press(t, "down")
	f.press(t, "down")

	cmd := f.press(t, "enter")
	assert.Nil(t, cmd)
	require.Equal(t, screenDetail, f.model.screen)

	f.press(t, "d")
	assert.Equal(t, screenDetail, f.model.screen)
}

func TestBrowser_DeleteFlow(t *testing.T) {
	f := newBrowserFixture(t, true)
	f.loaded(t)
	f.sharing.EXPECT().AllowedUsers(gomock.Any(), models.FileID(1)).Return(nil, nil)
	f.sharing.EXPECT().Delete(gomock.Any(), models.FileID(1)).Return(nil)

	f.send(t, f.press(t, "enter")())
	f.press(t, "d")
	require.Equal(t, screenConfirmDelete, f.model.screen)
	assert.Contains(t, f.model.View(), `Delete "notes.txt"?`)

	cmd := f.press(t, "y")
	require.NotNil(t, cmd)
	f.send(t, cmd())

	assert.Equal(t, screenList, f.model.screen)
	assert.True(t, f.model.list.loading)
	assert.Equal(t, "File deleted", f.model.list.status)
}

func TestBrowser_DeleteFailureShowsOverlay(t *testing.T) {
	f := newBrowserFixture(t, true)
	f.loaded(t)

	f.send(t, deleteDoneMsg{err: service.ErrShareRevocationFailed})

	assert.Equal(t, screenError, f.model.screen)
	f.press(t, "enter")
	assert.Equal(t, screenList, f.model.screen)
}

// ── download ──

func TestBrowser_Download(t *testing.T) {
	f := newBrowserFixture(t, true)
	f.loaded(t)
	ref := f.model.list.rows[0].ref
	f.transfer.EXPECT().Download(gomock.Any(), ref, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.FileRef, progress func(models.Progress)) (models.DownloadedFile, error) {
			progress(models.Progress{Phase: models.ProgressDownloading, TotalChunks: 2, CurrentChunk: 1})
			return models.DownloadedFile{FileName: "notes.txt", Contents: []byte("hello")}, nil
		})

	cmd := f.press(t, "g")
	require.NotNil(t, cmd)
	require.True(t, f.model.downloading)

	ch := f.model.progressCh
	done := f.model.cmdDownload(f.model.list.rows[0], ch)().(downloadDoneMsg)
	require.NoError(t, done.err)

	p, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, uint64(1), p.CurrentChunk)
	_, ok = <-ch
	assert.False(t, ok, "progress channel is closed after the download")

	f.send(t, done)
	assert.False(t, f.model.downloading)
	assert.Contains(t, f.model.list.status, "Saved to")

	got, err := os.ReadFile(done.path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestBrowser_DownloadPendingFile(t *testing.T) {
	f := newBrowserFixture(t, true)
	f.loaded(t)
	f.press(t, "down")

	f.press(t, "g")

	assert.False(t, f.model.downloading)
	assert.Equal(t, "Not uploaded yet", f.model.list.status)
}

func TestBrowser_DownloadFailure(t *testing.T) {
	f := newBrowserFixture(t, true)
	f.loaded(t)

	f.send(t, downloadDoneMsg{err: service.ErrDecryptionFailed})

	assert.Equal(t, screenError, f.model.screen)
	assert.NotEmpty(t, f.model.overlay)
}

// ── misc keys ──

func TestBrowser_CopyReference(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	f := newBrowserFixture(t, true)
	f.loaded(t)
	f.press(t, "down")
	f.press(t, "down")

	cmd := f.press(t, "c")
	require.NotNil(t, cmd)
	f.send(t, cmd())

	assert.Equal(t, bobRes.String()+"/9", copied)
	assert.Equal(t, "Copied "+copied, f.model.list.status)

	f.send(t, clearStatusMsg{})
	assert.Empty(t, f.model.list.status)
}

func TestBrowser_CopyFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	f := newBrowserFixture(t, true)
	f.loaded(t)
	f.send(t, f.press(t, "c")())

	assert.Equal(t, "Copy failed: no clipboard", f.model.list.status)
}

func TestBrowser_AboutAndQuit(t *testing.T) {
	f := newBrowserFixture(t, true)
	f.loaded(t)

	f.press(t, "v")
	assert.Contains(t, f.model.View(), "Version: v1")
	f.press(t, "esc")
	assert.Equal(t, screenList, f.model.screen)

	cmd := f.press(t, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
