package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-file-vault/models"
)

// ResolveOwnResource implements [DirectoryAdapter] via
// GET /api/directory/resource. Anonymous callers get a
// [models.ResolveAnonymousCaller] answer, not an error.
func (h *httpServerAdapter) ResolveOwnResource(ctx context.Context) (models.ResolveResourceResponse, error) {
	var result models.ResolveResourceResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/directory/resource")
	if err != nil {
		return result, requestError("resolve resource", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// RetryResourceCreation implements [DirectoryAdapter] via
// POST /api/directory/resource/retry.
func (h *httpServerAdapter) RetryResourceCreation(ctx context.Context) (models.RetryCreationResponse, error) {
	var result models.RetryCreationResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Post("/api/directory/resource/retry")
	if err != nil {
		return result, requestError("retry resource creation", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// ListSharedIn implements [DirectoryAdapter] via GET /api/directory/shared.
func (h *httpServerAdapter) ListSharedIn(ctx context.Context) (models.SharedFilesResponse, error) {
	var result models.SharedFilesResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/directory/shared")
	if err != nil {
		return result, requestError("list shared", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// Register implements [DirectoryAdapter] via POST /api/directory/users.
func (h *httpServerAdapter) Register(ctx context.Context, username string) (models.RegisterResponse, error) {
	var result models.RegisterResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterRequest{Username: username}).
		SetResult(&result).
		Post("/api/directory/users")
	if err != nil {
		return result, requestError("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// WhoAmI implements [DirectoryAdapter] via GET /api/directory/whoami.
func (h *httpServerAdapter) WhoAmI(ctx context.Context) (models.WhoAmIResponse, error) {
	var result models.WhoAmIResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/directory/whoami")
	if err != nil {
		return result, requestError("whoami", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// GetUser implements [DirectoryAdapter] via
// GET /api/directory/users/{principal}.
func (h *httpServerAdapter) GetUser(ctx context.Context, principal models.Principal) (models.PublicUser, error) {
	var result models.PublicUser

	resp, err := h.authedRequest(ctx).
		SetPathParam("principal", principal.String()).
		SetResult(&result).
		Get("/api/directory/users/{principal}")
	if err != nil {
		return result, requestError("get user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, fmt.Errorf("get user %s: %w", principal, err)
	}

	return result, nil
}

// ListUsers implements [DirectoryAdapter] via
// GET /api/directory/users?offset=&limit=&query=.
func (h *httpServerAdapter) ListUsers(ctx context.Context, query models.UsersQuery) (models.GetUsersResponse, error) {
	var result models.GetUsersResponse

	req := h.authedRequest(ctx).
		SetQueryParam("offset", strconv.Itoa(query.Offset)).
		SetQueryParam("limit", strconv.Itoa(query.Limit)).
		SetResult(&result)
	if query.Query != "" {
		req.SetQueryParam("query", query.Query)
	}

	resp, err := req.Get("/api/directory/users")
	if err != nil {
		return result, requestError("list users", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}
