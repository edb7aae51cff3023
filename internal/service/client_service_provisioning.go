// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-file-vault/internal/adapter"
	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
	"github.com/sethvargo/go-retry"
)

// ProvisioningPhase is a state of session resource resolution.
type ProvisioningPhase string

const (
	PhaseUnresolved       ProvisioningPhase = "unresolved"
	PhaseAwaitingCreation ProvisioningPhase = "awaiting_creation"
	PhaseCreationFailed   ProvisioningPhase = "creation_failed"
	PhaseResolved         ProvisioningPhase = "resolved"
	PhaseUnprovisioned    ProvisioningPhase = "unprovisioned"
	PhaseFailed           ProvisioningPhase = "failed"
	PhaseRejected         ProvisioningPhase = "rejected"
)

// ProvisioningState is the value threaded through [Transition].
type ProvisioningState struct {
	Phase             ProvisioningPhase
	Resource          models.ResourceHandle
	Reason            string
	GaveUp            bool
	Attempts          int
	AfterRegistration bool
}

// Terminal reports whether the driver must stop.
func (s ProvisioningState) Terminal() bool {
	switch s.Phase {
	case PhaseResolved, PhaseUnprovisioned, PhaseFailed, PhaseRejected:
		return true
	default:
		return false
	}
}

// Result projects the state onto the session view.
func (s ProvisioningState) Result() models.ProvisioningResult {
	result := models.ProvisioningResult{
		Resource: s.Resource,
		Reason:   s.Reason,
		GaveUp:   s.GaveUp,
		Attempts: s.Attempts,
	}

	switch s.Phase {
	case PhaseResolved:
		result.Outcome = models.ProvisioningResolved
	case PhaseUnprovisioned:
		result.Outcome = models.ProvisioningUnprovisioned
	case PhaseFailed:
		result.Outcome = models.ProvisioningFailed
	case PhaseRejected:
		result.Outcome = models.ProvisioningRejected
	default:
		result.Outcome = models.ProvisioningPending
	}

	return result
}

// ProvisioningEvent is one observation fed to [Transition]. Exactly one field
// is set.
type ProvisioningEvent struct {
	Resolve   *models.ResolveResourceResponse
	Retry     *models.RetryCreationResponse
	Err       error
	Exhausted bool
}

func ResolveEvent(resp models.ResolveResourceResponse) ProvisioningEvent {
	return ProvisioningEvent{Resolve: &resp}
}

func RetryEvent(resp models.RetryCreationResponse) ProvisioningEvent {
	return ProvisioningEvent{Retry: &resp}
}

func CallFailedEvent(err error) ProvisioningEvent {
	return ProvisioningEvent{Err: err}
}

func AttemptsExhaustedEvent() ProvisioningEvent {
	return ProvisioningEvent{Exhausted: true}
}

// Transition is the provisioning state machine. It has no side effects and
// leaves terminal states unchanged.
func Transition(s ProvisioningState, e ProvisioningEvent) ProvisioningState {
	if s.Terminal() {
		return s
	}

	switch {
	case e.Exhausted:
		s.Phase = PhaseFailed
		s.GaveUp = true
		if s.Reason == "" {
			s.Reason = fmt.Sprintf("resource was not created after %d attempts", s.Attempts)
		}
	case e.Err != nil:
		s.Reason = e.Err.Error()
		if Retryable(e.Err) {
			s.Phase = PhaseAwaitingCreation
		} else {
			s.Phase = PhaseFailed
		}
	case e.Resolve != nil:
		s = resolveTransition(s, *e.Resolve)
	case e.Retry != nil:
		s = retryTransition(s, *e.Retry)
	}

	return s
}

func resolveTransition(s ProvisioningState, resp models.ResolveResourceResponse) ProvisioningState {
	switch resp.Kind {
	case models.ResolveOK:
		s.Phase, s.Resource, s.Reason = PhaseResolved, resp.Resource, ""
	case models.ResolveCreationPending:
		s.Phase = PhaseAwaitingCreation
	case models.ResolveCreationFailed:
		s.Phase, s.Reason = PhaseCreationFailed, resp.Reason
	case models.ResolveUninitialized:
		if s.AfterRegistration {
			s.Phase, s.Reason = PhaseCreationFailed, "resource is not initialized"
		} else {
			s.Phase = PhaseUnprovisioned
		}
	case models.ResolveAnonymousCaller:
		s.Phase = PhaseRejected
	default:
		s.Phase, s.Reason = PhaseFailed, unknownResponse("resolve resource", resp.Kind).Error()
	}
	return s
}

func retryTransition(s ProvisioningState, resp models.RetryCreationResponse) ProvisioningState {
	switch resp.Kind {
	case models.RetryCreated:
		s.Phase, s.Resource, s.Reason = PhaseResolved, resp.Resource, ""
	case models.RetryOK, models.RetryCreationPending:
		s.Phase = PhaseAwaitingCreation
	case models.RetryUserNotFound:
		s.Phase = PhaseUnprovisioned
	case models.RetryAnonymousCaller:
		s.Phase = PhaseRejected
	default:
		s.Phase, s.Reason = PhaseFailed, unknownResponse("retry creation", resp.Kind).Error()
	}
	return s
}

// ResultError turns a non-resolved outcome into a client error.
func ResultError(result models.ProvisioningResult) error {
	switch result.Outcome {
	case models.ProvisioningResolved:
		return nil
	case models.ProvisioningRejected:
		return ErrAnonymousCaller
	case models.ProvisioningUnprovisioned:
		return ErrUserNotRegistered
	case models.ProvisioningFailed:
		if result.GaveUp {
			return fmt.Errorf("%w: %w: %s", ErrTransient, ErrResourceUnresolved, result.Reason)
		}
		return fmt.Errorf("%w: %w: %s", ErrResourceCreationFailed, ErrResourceUnresolved, result.Reason)
	default:
		return ErrResourceUnresolved
	}
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type clientProvisioningService struct {
	directory adapter.DirectoryAdapter
	storage   adapter.StorageAdapter
	keys      ClientKeyService
	session   *SessionHub
	logger    *logger.Logger

	delay                        time.Duration
	maxAttempts                  int
	maxAttemptsAfterRegistration int
	sleep                        SleepFunc
}

func NewClientProvisioningService(directory adapter.DirectoryAdapter, storage adapter.StorageAdapter, keys ClientKeyService, session *SessionHub, cfg config.ClientProvisioning, logger *logger.Logger) ClientProvisioningService {
	s := &clientProvisioningService{
		directory:                    directory,
		storage:                      storage,
		keys:                         keys,
		session:                      session,
		logger:                       logger,
		delay:                        cfg.RetryDelay,
		maxAttempts:                  cfg.MaxAttempts,
		maxAttemptsAfterRegistration: cfg.MaxAttemptsAfterRegistration,
		sleep:                        sleepContext,
	}
	if s.delay <= 0 {
		s.delay = config.DefaultRetryDelay
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = config.DefaultMaxAttempts
	}
	if s.maxAttemptsAfterRegistration <= 0 {
		s.maxAttemptsAfterRegistration = config.DefaultMaxAttemptsAfterRegistration
	}

	return s
}

func (s *clientProvisioningService) Resolve(ctx context.Context) (models.ProvisioningResult, error) {
	return s.drive(ctx, s.maxAttempts, false)
}

func (s *clientProvisioningService) Register(ctx context.Context, username string) (models.ProvisioningResult, error) {
	if len(username) > models.MaxUsernameSize {
		return models.ProvisioningResult{}, ErrUsernameTooLong
	}

	resp, err := s.directory.Register(ctx, username)
	if err != nil {
		return models.ProvisioningResult{}, mapAdapterError(err)
	}

	switch resp.Kind {
	case models.RegisterOK:
		s.logger.Info().Str("username", username).Msg("username registered")
		return s.drive(ctx, s.maxAttemptsAfterRegistration, true)
	case models.RegisterUsernameExists:
		return models.ProvisioningResult{}, fmt.Errorf("%w: %s", ErrUsernameTaken, username)
	case models.RegisterAlreadyRegistered:
		return models.ProvisioningResult{}, ErrAlreadyRegistered
	case models.RegisterAnonymousCaller:
		return models.ProvisioningResult{}, ErrAnonymousCaller
	case models.RegisterUsernameTooLong:
		return models.ProvisioningResult{}, ErrUsernameTooLong
	default:
		return models.ProvisioningResult{}, unknownResponse("register", resp.Kind)
	}
}

func (s *clientProvisioningService) WhoAmI(ctx context.Context) (*models.PublicUser, error) {
	resp, err := s.directory.WhoAmI(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	switch resp.Kind {
	case models.WhoAmIKnownUser:
		s.session.Update(func(st models.SessionState) models.SessionState {
			st.Status = models.SessionRegistered
			st.User = resp.User
			return st
		})
		return resp.User, nil
	case models.WhoAmIUnknownUser:
		s.session.Update(func(st models.SessionState) models.SessionState {
			st.Status = models.SessionUnregistered
			st.User = nil
			return st
		})
		return nil, ErrUserNotRegistered
	default:
		return nil, unknownResponse("whoami", resp.Kind)
	}
}

// drive runs the state machine against the directory. A resolve call is an
// attempt; the backoff decides whether another one is allowed after a
// pending answer. A creation failure asks for a retry right away.
func (s *clientProvisioningService) drive(ctx context.Context, maxAttempts int, afterRegistration bool) (models.ProvisioningResult, error) {
	state := ProvisioningState{Phase: PhaseUnresolved, AfterRegistration: afterRegistration}
	backoff := retry.WithMaxRetries(uint64(maxAttempts-1), retry.NewConstant(s.delay))

	for !state.Terminal() {
		var event ProvisioningEvent

		if state.Phase == PhaseCreationFailed {
			resp, err := s.directory.RetryResourceCreation(ctx)
			if err != nil {
				event = CallFailedEvent(mapAdapterError(err))
			} else {
				event = RetryEvent(resp)
			}
		} else {
			state.Attempts++
			resp, err := s.directory.ResolveOwnResource(ctx)
			if err != nil {
				event = CallFailedEvent(mapAdapterError(err))
			} else {
				event = ResolveEvent(resp)
			}
		}

		if errors.Is(event.Err, context.Canceled) || errors.Is(event.Err, context.DeadlineExceeded) {
			return state.Result(), event.Err
		}

		state = Transition(state, event)
		s.publish(state)

		if state.Phase != PhaseAwaitingCreation {
			continue
		}

		delay, stop := backoff.Next()
		if stop {
			state = Transition(state, AttemptsExhaustedEvent())
			s.publish(state)
			break
		}
		if err := s.sleep(ctx, delay); err != nil {
			return state.Result(), err
		}
	}

	if state.Phase == PhaseResolved {
		s.ensurePublicKey(ctx, state.Resource)
	}

	s.logger.Debug().
		Str("phase", string(state.Phase)).
		Int("attempts", state.Attempts).
		Bool("gave_up", state.GaveUp).
		Msg("resource resolution finished")

	return state.Result(), nil
}

func (s *clientProvisioningService) publish(state ProvisioningState) {
	s.session.Update(func(st models.SessionState) models.SessionState {
		st.Provisioning = state.Result()
		switch state.Phase {
		case PhaseResolved:
			st.Status = models.SessionRegistered
		case PhaseUnprovisioned:
			st.Status = models.SessionUnregistered
		case PhaseRejected:
			st = models.SessionState{Status: models.SessionLoggedOut, Provisioning: state.Result()}
		}
		return st
	})
}

// ensurePublicKey registers the device public key on the resource once per
// session so others can wrap file keys to it.
func (s *clientProvisioningService) ensurePublicKey(ctx context.Context, resource models.ResourceHandle) {
	if s.session.Current().KeyRegistered {
		return
	}
	log := s.logger.With().Str("resource", resource.String()).Logger()

	own, err := s.keys.OwnPublicKey(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("no local public key to register")
		return
	}

	remote, err := s.storage.GetPublicKey(ctx, resource)
	if err != nil {
		log.Warn().Err(err).Msg("error reading resource public key")
		return
	}
	if len(remote) == 0 {
		if err = s.storage.SetPublicKey(ctx, resource, own); err != nil {
			log.Warn().Err(err).Msg("error registering public key")
			return
		}
		log.Info().Msg("public key registered")
	}

	s.session.Update(func(st models.SessionState) models.SessionState {
		st.KeyRegistered = true
		return st
	})
}
