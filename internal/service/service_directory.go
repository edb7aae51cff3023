// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/store"
	"github.com/MKhiriev/go-file-vault/models"
)

// minUserQueryLength is the shortest non-empty search string ListUsers
// accepts.
const minUserQueryLength = 3

type directoryService struct {
	users     store.UserRepository
	resources store.ResourceRepository
	index     store.ShareIndexRepository

	maxPageSize int
	logger      *logger.Logger
}

func NewDirectoryService(users store.UserRepository, resources store.ResourceRepository, index store.ShareIndexRepository, limits config.Limits, logger *logger.Logger) DirectoryService {
	return &directoryService{
		users:       users,
		resources:   resources,
		index:       index,
		maxPageSize: limits.MaxUsersPageSize,
		logger:      logger,
	}
}

// NormalizeUsername returns the NFC form of a username as it is stored and
// displayed.
func NormalizeUsername(username string) string {
	return norm.NFC.String(username)
}

// UsernameKey returns the case-folded form used for uniqueness and search,
// so "Ärger" and "ärger" collide.
func UsernameKey(username string) string {
	return cases.Fold().String(NormalizeUsername(username))
}

func (d *directoryService) ResolveOwnResource(ctx context.Context, caller models.Principal) (models.ResolveResourceResponse, error) {
	if caller.IsAnonymous() {
		return models.ResolveResourceResponse{Kind: models.ResolveAnonymousCaller}, nil
	}

	resource, err := d.resources.GetResource(ctx, caller)
	if errors.Is(err, store.ErrResourceNotFound) {
		return models.ResolveResourceResponse{Kind: models.ResolveUninitialized}, nil
	}
	if err != nil {
		return models.ResolveResourceResponse{}, fmt.Errorf("error resolving resource: %w", err)
	}

	switch resource.State {
	case models.ResourceStateOK:
		return models.ResolveResourceResponse{Kind: models.ResolveOK, Resource: resource.Handle}, nil
	case models.ResourceStateFailed:
		return models.ResolveResourceResponse{Kind: models.ResolveCreationFailed, Reason: resource.Reason}, nil
	default:
		return models.ResolveResourceResponse{Kind: models.ResolveCreationPending}, nil
	}
}

// RetryResourceCreation restarts a failed creation, requests a missing one
// and otherwise reports the current state.
func (d *directoryService) RetryResourceCreation(ctx context.Context, caller models.Principal) (models.RetryCreationResponse, error) {
	log := logger.FromContext(ctx)

	if caller.IsAnonymous() {
		return models.RetryCreationResponse{Kind: models.RetryAnonymousCaller}, nil
	}

	resource, err := d.resources.GetResource(ctx, caller)
	switch {
	case errors.Is(err, store.ErrResourceNotFound):
		err = d.resources.CreateResource(ctx, caller)
		if errors.Is(err, store.ErrUserNotFound) {
			return models.RetryCreationResponse{Kind: models.RetryUserNotFound}, nil
		}
		if err != nil && !errors.Is(err, store.ErrResourceExists) {
			return models.RetryCreationResponse{}, fmt.Errorf("error requesting resource: %w", err)
		}
		return models.RetryCreationResponse{Kind: models.RetryOK}, nil
	case err != nil:
		return models.RetryCreationResponse{}, fmt.Errorf("error reading resource: %w", err)
	}

	switch resource.State {
	case models.ResourceStateOK:
		return models.RetryCreationResponse{Kind: models.RetryCreated, Resource: resource.Handle}, nil
	case models.ResourceStateFailed:
		restarted, err := d.resources.RestartCreation(ctx, caller)
		if err != nil {
			return models.RetryCreationResponse{}, fmt.Errorf("error restarting creation: %w", err)
		}
		if !restarted {
			// a concurrent retry got there first
			return models.RetryCreationResponse{Kind: models.RetryCreationPending}, nil
		}
		log.Info().Str("owner", caller.String()).Msg("resource creation restarted")
		return models.RetryCreationResponse{Kind: models.RetryOK}, nil
	default:
		return models.RetryCreationResponse{Kind: models.RetryCreationPending}, nil
	}
}

// ListSharedIn groups the share index entries of caller by owning resource.
func (d *directoryService) ListSharedIn(ctx context.Context, caller models.Principal) (models.SharedFilesResponse, error) {
	if caller.IsAnonymous() {
		return models.SharedFilesResponse{Kind: models.SharedFilesAnonymousUser}, nil
	}

	me, err := d.users.GetUser(ctx, caller)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.SharedFilesResponse{Kind: models.SharedFilesNoSuchUser}, nil
	}
	if err != nil {
		return models.SharedFilesResponse{}, fmt.Errorf("error reading user: %w", err)
	}

	entries, err := d.index.ListByRecipient(ctx, caller)
	if err != nil {
		return models.SharedFilesResponse{}, fmt.Errorf("error listing shares: %w", err)
	}

	var (
		order  []models.ResourceHandle
		groups = make(map[models.ResourceHandle]*models.SharedResource)
		owners []models.Principal
		seen   = make(map[models.Principal]bool)
	)
	for _, e := range entries {
		group, ok := groups[e.Resource]
		if !ok {
			group = &models.SharedResource{Resource: e.Resource, Owner: models.PublicUser{Principal: e.Owner}}
			groups[e.Resource] = group
			order = append(order, e.Resource)
		}
		group.Files = append(group.Files, models.FileSummary{
			FileID:     e.FileID,
			FileName:   e.FileName,
			SharedWith: []models.PublicUser{me.Public()},
		})
		if !seen[e.Owner] {
			seen[e.Owner] = true
			owners = append(owners, e.Owner)
		}
	}

	byPrincipal := make(map[models.Principal]models.PublicUser, len(owners))
	if len(owners) > 0 {
		found, err := d.users.FindUsers(ctx, owners)
		if err != nil {
			return models.SharedFilesResponse{}, fmt.Errorf("error reading owners: %w", err)
		}
		for _, u := range found {
			byPrincipal[u.Principal] = u
		}
	}

	resources := make([]models.SharedResource, 0, len(order))
	for _, handle := range order {
		group := groups[handle]
		if owner, ok := byPrincipal[group.Owner.Principal]; ok {
			group.Owner = owner
		}
		resources = append(resources, *group)
	}

	return models.SharedFilesResponse{Kind: models.SharedFilesOK, Resources: resources}, nil
}

// Register binds a username to caller and requests the caller's storage
// resource.
func (d *directoryService) Register(ctx context.Context, caller models.Principal, username string) (models.RegisterResponse, error) {
	log := logger.FromContext(ctx)

	if caller.IsAnonymous() {
		return models.RegisterResponse{Kind: models.RegisterAnonymousCaller}, nil
	}

	username = NormalizeUsername(username)
	if len(username) > models.MaxUsernameSize {
		return models.RegisterResponse{Kind: models.RegisterUsernameTooLong}, nil
	}
	if username == "" || !utf8.ValidString(username) {
		return models.RegisterResponse{}, ErrInvalidDataProvided
	}

	_, err := d.users.CreateUser(ctx, models.User{Principal: caller, Username: username}, UsernameKey(username))
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return models.RegisterResponse{Kind: models.RegisterUsernameExists}, nil
	case errors.Is(err, store.ErrAlreadyRegistered):
		return models.RegisterResponse{Kind: models.RegisterAlreadyRegistered}, nil
	case errors.Is(err, store.ErrAccountNotFound):
		return models.RegisterResponse{Kind: models.RegisterAnonymousCaller}, nil
	case err != nil:
		return models.RegisterResponse{}, fmt.Errorf("error creating user: %w", err)
	}

	if err = d.resources.CreateResource(ctx, caller); err != nil && !errors.Is(err, store.ErrResourceExists) {
		// the user exists now; RetryResourceCreation requests it later
		log.Err(err).Str("principal", caller.String()).Msg("error requesting resource after registration")
	}

	log.Info().Str("principal", caller.String()).Str("username", username).Msg("user registered")
	return models.RegisterResponse{Kind: models.RegisterOK}, nil
}

func (d *directoryService) WhoAmI(ctx context.Context, caller models.Principal) (models.WhoAmIResponse, error) {
	if caller.IsAnonymous() {
		return models.WhoAmIResponse{Kind: models.WhoAmIUnknownUser}, nil
	}

	user, err := d.users.GetUser(ctx, caller)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.WhoAmIResponse{Kind: models.WhoAmIUnknownUser}, nil
	}
	if err != nil {
		return models.WhoAmIResponse{}, fmt.Errorf("error reading user: %w", err)
	}

	public := user.Public()
	return models.WhoAmIResponse{Kind: models.WhoAmIKnownUser, User: &public}, nil
}

// GetUser returns the public view of principal or a wrapped
// store.ErrUserNotFound.
func (d *directoryService) GetUser(ctx context.Context, principal models.Principal) (models.PublicUser, error) {
	user, err := d.users.GetUser(ctx, principal)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("error reading user: %w", err)
	}
	return user.Public(), nil
}

func (d *directoryService) ListUsers(ctx context.Context, caller models.Principal, query models.UsersQuery) (models.GetUsersResponse, error) {
	if caller.IsAnonymous() {
		return models.GetUsersResponse{Kind: models.GetUsersPermissionError}, nil
	}

	if query.Limit == 0 {
		query.Limit = d.maxPageSize
	}
	if query.Offset < 0 || query.Limit < 0 || query.Limit > d.maxPageSize {
		return models.GetUsersResponse{Kind: models.GetUsersInvalidQuery}, nil
	}
	if query.Query != "" && utf8.RuneCountInString(query.Query) < minUserQueryLength {
		return models.GetUsersResponse{Kind: models.GetUsersInvalidQuery}, nil
	}

	page, err := d.users.ListUsers(ctx, UsernameKey(query.Query), query.Offset, query.Limit)
	if err != nil {
		return models.GetUsersResponse{}, fmt.Errorf("error listing users: %w", err)
	}

	return models.GetUsersResponse{Kind: models.GetUsersOK, Page: &page}, nil
}

func (d *directoryService) IndexShare(ctx context.Context, entries []models.ShareIndexEntry) error {
	if err := d.index.IndexShares(ctx, entries); err != nil {
		return fmt.Errorf("error indexing shares: %w", err)
	}
	return nil
}

func (d *directoryService) RevokeShare(ctx context.Context, resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) error {
	if err := d.index.RemoveShares(ctx, resource, fileID, recipients); err != nil {
		return fmt.Errorf("error removing shares from index: %w", err)
	}
	return nil
}

func (d *directoryService) RevokeAll(ctx context.Context, resource models.ResourceHandle, fileID models.FileID) error {
	if err := d.index.RemoveFile(ctx, resource, fileID); err != nil {
		return fmt.Errorf("error removing file from index: %w", err)
	}
	return nil
}
