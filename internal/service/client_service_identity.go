package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-file-vault/internal/adapter"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/store"
	"github.com/MKhiriev/go-file-vault/models"
)

type clientIdentityService struct {
	identity adapter.IdentityAdapter
	sessions store.LocalSessionRepository
	keys     ClientKeyService
	hub      *SessionHub
	logger   *logger.Logger
}

func NewClientIdentityService(identity adapter.IdentityAdapter, sessions store.LocalSessionRepository, keys ClientKeyService, hub *SessionHub, logger *logger.Logger) ClientIdentityService {
	return &clientIdentityService{identity: identity, sessions: sessions, keys: keys, hub: hub, logger: logger}
}

func (s *clientIdentityService) SignUp(ctx context.Context, login, password string) (models.Principal, error) {
	if login == "" || password == "" {
		return models.Anonymous, fmt.Errorf("%w: login and password are required", ErrWrongCredentials)
	}

	principal, err := s.identity.SignUp(ctx, models.Account{Login: login, Password: password})
	if errors.Is(err, adapter.ErrConflict) {
		return models.Anonymous, ErrLoginTaken
	}
	if err != nil {
		return models.Anonymous, mapAdapterError(err)
	}

	return principal, s.startSession(ctx, login, principal, password)
}

func (s *clientIdentityService) Login(ctx context.Context, login, password string) (models.Principal, error) {
	principal, err := s.identity.Login(ctx, models.Account{Login: login, Password: password})
	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrBadRequest) {
		return models.Anonymous, ErrWrongCredentials
	}
	if err != nil {
		return models.Anonymous, mapAdapterError(err)
	}

	return principal, s.startSession(ctx, login, principal, password)
}

func (s *clientIdentityService) Restore(ctx context.Context) (models.LocalSession, error) {
	session, err := s.sessions.LastSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.LocalSession{}, ErrAnonymousCaller
	}
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("error loading session: %w", err)
	}

	s.identity.SetToken(session.Token)
	s.keys.UsePrincipal(session.Principal)
	s.publishLoggedIn(session.Principal)

	return session, nil
}

func (s *clientIdentityService) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSessions(ctx); err != nil {
		return fmt.Errorf("error deleting sessions: %w", err)
	}

	s.identity.SetToken("")
	s.keys.Lock()
	s.keys.UsePrincipal(models.Anonymous)
	s.hub.Update(func(models.SessionState) models.SessionState {
		return models.SessionState{Status: models.SessionLoggedOut}
	})

	return nil
}

// startSession unlocks the key pair with the account password and persists
// the token for later runs.
func (s *clientIdentityService) startSession(ctx context.Context, login string, principal models.Principal, password string) error {
	if _, err := s.keys.Unlock(ctx, principal, password); err != nil {
		return fmt.Errorf("error unlocking key pair: %w", err)
	}

	err := s.sessions.SaveSession(ctx, models.LocalSession{
		Login:     login,
		Principal: principal,
		Token:     s.identity.Token(),
	})
	if err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	s.publishLoggedIn(principal)
	s.logger.Info().Str("principal", principal.String()).Msg("logged in")

	return nil
}

func (s *clientIdentityService) publishLoggedIn(principal models.Principal) {
	s.hub.Update(func(models.SessionState) models.SessionState {
		return models.SessionState{Status: models.SessionUnregistered, Principal: principal}
	})
}
