package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-file-vault/internal/adapter"
	"github.com/MKhiriev/go-file-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── SessionHub ───────────────────────────────────────────────────────────────

func TestSessionHub_UpdateBumpsVersion(t *testing.T) {
	hub := NewSessionHub()
	assert.Equal(t, models.SessionLoggedOut, hub.Current().Status)
	assert.Zero(t, hub.Current().Version)

	first := hub.Update(func(s models.SessionState) models.SessionState {
		s.Status = models.SessionUnregistered
		return s
	})
	second := hub.Update(func(s models.SessionState) models.SessionState {
		s.Version = 100 // ignored
		return s
	})

	assert.Equal(t, uint64(1), first.Version)
	assert.Equal(t, uint64(2), second.Version)
	assert.Equal(t, second, hub.Current())
}

func TestSessionHub_SubscribersSeeLatest(t *testing.T) {
	hub := NewSessionHub()
	updates, cancel := hub.Subscribe()

	for i := 0; i < 3; i++ {
		hub.Update(func(s models.SessionState) models.SessionState { return s })
	}

	got := <-updates
	assert.Equal(t, uint64(3), got.Version)

	cancel()
	cancel()
	hub.Update(func(s models.SessionState) models.SessionState { return s })
	select {
	case s := <-updates:
		t.Fatalf("unexpected update after cancel: %+v", s)
	default:
	}
}

func TestSessionHub_Resource(t *testing.T) {
	hub := NewSessionHub()

	_, err := hub.Resource()
	require.ErrorIs(t, err, ErrResourceUnresolved)

	hub.Update(func(s models.SessionState) models.SessionState {
		s.Provisioning = models.ProvisioningResult{Outcome: models.ProvisioningPending, Resource: testResource}
		return s
	})
	_, err = hub.Resource()
	require.ErrorIs(t, err, ErrResourceUnresolved)

	hub.Update(func(s models.SessionState) models.SessionState {
		s.Provisioning.Outcome = models.ProvisioningResolved
		return s
	})
	handle, err := hub.Resource()
	require.NoError(t, err)
	assert.Equal(t, testResource, handle)
}

func TestAbortToken(t *testing.T) {
	var nilToken *models.AbortToken
	assert.False(t, nilToken.Aborted())
	nilToken.Abort()

	token := models.NewAbortToken()
	assert.False(t, token.Aborted())
	token.Abort()
	assert.True(t, token.Aborted())
}

// ── Error kinds ──────────────────────────────────────────────────────────────

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindUnknown},
		{"foreign", errors.New("boom"), KindUnknown},
		{"transient", ErrTransient, KindTransient},
		{"wrapped once", fmt.Errorf("upload: %w", ErrChunkOutOfBounds), KindStateConflict},
		{"outermost wins", fmt.Errorf("%w: %w", ErrShareInconsistent, ErrPermissionDenied), KindStateConflict},
		{"nested join", fmt.Errorf("ctx: %w", errors.Join(errors.New("x"), ErrDecryptionFailed)), KindIntegrity},
		{"identity", ErrUserNotRegistered, KindTerminalIdentity},
		{"input", ErrUsernameTaken, KindInvalidInput},
		{"not found", ErrAliasNotFound, KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestHint(t *testing.T) {
	assert.Equal(t, deviceKeyHint, Hint(ErrDecryptionFailed))
	assert.Equal(t, "log in again", Hint(ErrAnonymousCaller))
	assert.Equal(t, "register a username first", Hint(ErrUserNotRegistered))
	assert.Equal(t, "try again later", Hint(fmt.Errorf("%w: x", ErrTransient)))
	assert.Empty(t, Hint(ErrFileNotFound))
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"transport", fmt.Errorf("x request: %w: %w", adapter.ErrTransport, errors.New("refused")), ErrTransient},
		{"500", adapter.ErrInternalServerError, ErrTransient},
		{"502", adapter.ErrBadGateway, ErrTransient},
		{"503", adapter.ErrServiceUnavailable, ErrTransient},
		{"401", adapter.ErrUnauthorized, ErrAnonymousCaller},
		{"403", adapter.ErrForbidden, ErrPermissionDenied},
		{"413", adapter.ErrPayloadTooLarge, ErrFileTooLarge},
		{"unknown", adapter.ErrUnknownResponse, ErrUnknownResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
	assert.Equal(t, adapter.ErrConflict, mapAdapterError(adapter.ErrConflict))
}
