package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/utils"
	"github.com/MKhiriev/go-file-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. The base URL is taken from adapterCfg.ServerURL; a missing
// scheme defaults to http.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [IdentityAdapter]. Safe for concurrent use with the
// upload workers that read the token.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [IdentityAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignUp implements [IdentityAdapter]. It POSTs the credentials to
// /api/identity/signup, stores the bearer token from the Authorization
// response header and returns the principal it was issued for.
func (h *httpServerAdapter) SignUp(ctx context.Context, account models.Account) (models.Principal, error) {
	return h.authenticate(ctx, "signup", account)
}

// Login implements [IdentityAdapter] against /api/identity/login.
func (h *httpServerAdapter) Login(ctx context.Context, account models.Account) (models.Principal, error) {
	return h.authenticate(ctx, "login", account)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, op string, account models.Account) (models.Principal, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(account).
		Post("/api/identity/" + op)
	if err != nil {
		return models.Anonymous, requestError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Anonymous, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Anonymous, fmt.Errorf("%s parse bearer token: %w", op, err)
	}
	principal, err := utils.ParsePrincipalFromJWT(token)
	if err != nil {
		return models.Anonymous, fmt.Errorf("%s parse principal: %w", op, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "httpServerAdapter."+op).Str("principal", principal.String()).Msg("token stored")
	return principal, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) resourceRequest(ctx context.Context, resource models.ResourceHandle) *resty.Request {
	return h.authedRequest(ctx).SetPathParam("resource", resource.String())
}

func fileIDParam(id models.FileID) string {
	return strconv.FormatUint(uint64(id), 10)
}
