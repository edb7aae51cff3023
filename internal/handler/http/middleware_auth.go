package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/service"
	"github.com/MKhiriev/go-file-vault/internal/utils"
	"github.com/MKhiriev/go-file-vault/models"
)

type resourceCtxKey struct{}

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.IdentityService.ParseToken], and on success stores
// the caller principal in the request context with [utils.WithPrincipal].
//
// Requests without a header or with a bad token are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.FromRequest(r).Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx, ok := h.authenticate(w, r, authHeader)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth is auth for routes that serve anonymous callers too. A request
// without an "Authorization" header passes through as anonymous; a present
// but invalid token is still rejected.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(r.Context(), models.Anonymous)))
			return
		}

		ctx, ok := h.authenticate(w, r, authHeader)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request, authHeader string) (context.Context, bool) {
	log := logger.FromRequest(r)

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
		return nil, false
	}

	ctx := r.Context()
	token, err := h.services.IdentityService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing token")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return nil, false
	}

	l := log.With().Str("principal", token.Principal.String()).Logger()
	ctx = l.WithContext(ctx)

	return utils.WithPrincipal(ctx, token.Principal), true
}

// withResource parses the {resource} path parameter. A malformed handle
// cannot name an existing resource and is answered with 404.
func (h *Handler) withResource(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handle, err := models.ParseResourceHandle(chi.URLParam(r, "resource"))
		if err != nil {
			fail(w, r, err, "bad resource handle")
			return
		}

		ctx := context.WithValue(r.Context(), resourceCtxKey{}, handle)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resourceFromRequest(r *http.Request) models.ResourceHandle {
	handle, _ := r.Context().Value(resourceCtxKey{}).(models.ResourceHandle)
	return handle
}

func callerFromRequest(r *http.Request) models.Principal {
	principal, _ := utils.GetPrincipalFromContext(r.Context())
	return principal
}

// decode reads a JSON body of at most maxBytes into v. Oversized bodies keep
// their [http.MaxBytesError]; anything else is invalid data.
func decode(w http.ResponseWriter, r *http.Request, v any, maxBytes int64) error {
	err := utils.DecodeJSON(w, r, v, maxBytes)
	if err == nil {
		return nil
	}
	if statusFromError(err) == http.StatusRequestEntityTooLarge {
		return err
	}
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}
