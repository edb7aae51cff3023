package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/mock"
	"github.com/MKhiriev/go-file-vault/internal/store"
	"github.com/MKhiriev/go-file-vault/internal/utils"
	"github.com/MKhiriev/go-file-vault/models"
)

var testAppConfig = config.App{
	PasswordHashKey: "hash-key",
	TokenSignKey:    "sign-key",
	TokenIssuer:     "go-file-vault",
	TokenDuration:   time.Hour,
}

func newTestIdentityService(t *testing.T) (IdentityService, *mock.MockAccountRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	return NewIdentityService(accounts, testAppConfig, logger.Nop()), accounts
}

// ─────────────────────────────────────────────
// SignUp
// ─────────────────────────────────────────────

func TestIdentityService_SignUp(t *testing.T) {
	svc, accounts := newTestIdentityService(t)

	accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Account) (models.Account, error) {
			// only the HMAC of the password is stored
			assert.Equal(t, utils.HashString("secret", testAppConfig.PasswordHashKey), a.Password)
			parsed, err := uuid.Parse(a.Principal.String())
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), parsed.Version())
			return a, nil
		})

	created, err := svc.SignUp(context.Background(), models.Account{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Login)
	assert.False(t, created.Principal.IsAnonymous())
}

func TestIdentityService_SignUp_Errors(t *testing.T) {
	t.Run("empty password", func(t *testing.T) {
		svc, _ := newTestIdentityService(t)
		_, err := svc.SignUp(context.Background(), models.Account{Login: "alice"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("login taken", func(t *testing.T) {
		svc, accounts := newTestIdentityService(t)
		accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrLoginAlreadyExists)

		_, err := svc.SignUp(context.Background(), models.Account{Login: "alice", Password: "secret"})
		assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
	})
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestIdentityService_Login(t *testing.T) {
	stored := models.Account{
		Principal: "0192a0b1-0000-7000-8000-000000000001",
		Login:     "alice",
		Password:  utils.HashString("secret", testAppConfig.PasswordHashKey),
	}

	tests := []struct {
		name     string
		password string
		findErr  error
		wantErr  error
	}{
		{name: "correct password", password: "secret"},
		{name: "wrong password", password: "nope", wantErr: ErrWrongPassword},
		{name: "unknown login", password: "secret", findErr: store.ErrAccountNotFound, wantErr: store.ErrAccountNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accounts := newTestIdentityService(t)
			accounts.EXPECT().FindAccountByLogin(gomock.Any(), "alice").Return(stored, tt.findErr)

			got, err := svc.Login(context.Background(), models.Account{Login: "alice", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.Principal, got.Principal)
		})
	}
}

func TestIdentityService_Login_EmptyCredentials(t *testing.T) {
	svc, _ := newTestIdentityService(t)

	_, err := svc.Login(context.Background(), models.Account{Password: "x"})
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestIdentityService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestIdentityService(t)
	ctx := context.Background()
	principal := models.Principal("0192a0b1-0000-7000-8000-000000000001")

	token, err := svc.CreateToken(ctx, principal)
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, principal, parsed.Principal)
}

func TestIdentityService_CreateToken_Anonymous(t *testing.T) {
	svc, _ := newTestIdentityService(t)

	_, err := svc.CreateToken(context.Background(), models.Anonymous)
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestIdentityService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestIdentityService(t)

	other := NewIdentityService(nil, config.App{TokenSignKey: "other", TokenIssuer: "go-file-vault", TokenDuration: time.Hour}, logger.Nop())
	foreign, err := other.CreateToken(context.Background(), "p-1")
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreign.String()} {
		_, err = svc.ParseToken(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid, raw)
	}
}
