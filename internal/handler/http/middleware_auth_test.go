package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/mock"
	"github.com/MKhiriev/go-file-vault/internal/service"
	"github.com/MKhiriev/go-file-vault/internal/utils"
	"github.com/MKhiriev/go-file-vault/models"
)

// ---- Helpers ----

func newAuthTestHandler(t *testing.T) (*Handler, *mock.MockIdentityService) {
	t.Helper()

	identity := mock.NewMockIdentityService(gomock.NewController(t))
	h := &Handler{
		logger:   logger.Nop(),
		services: &service.Services{IdentityService: identity},
	}
	return h, identity
}

// runMiddleware sends a request through mw and reports the principal seen
// by the next handler, if it was reached.
func runMiddleware(mw func(http.Handler) http.Handler, authHeader string) (*httptest.ResponseRecorder, models.Principal, bool) {
	var (
		seen   models.Principal
		called bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = utils.GetPrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)
	return rr, seen, called
}

// ---- auth ----

func TestAuth_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		parseErr   error // nil with parse == true means a valid token
		parse      bool
		wantStatus int
		wantBody   string
	}{
		{name: "empty header", authHeader: "", wantStatus: http.StatusUnauthorized, wantBody: ErrEmptyAuthorizationHeader.Error()},
		{name: "no scheme", authHeader: "TokenWithoutScheme", wantStatus: http.StatusUnauthorized, wantBody: ErrInvalidAuthorizationHeader.Error()},
		{name: "wrong scheme", authHeader: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized, wantBody: ErrInvalidAuthorizationHeader.Error()},
		{name: "extra parts", authHeader: "Bearer token extra", wantStatus: http.StatusUnauthorized, wantBody: ErrInvalidAuthorizationHeader.Error()},
		{name: "invalid token", authHeader: "Bearer bad", parse: true, parseErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer good", parse: true, wantStatus: http.StatusOK},
		{name: "lower-case scheme", authHeader: "bearer good", parse: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, identity := newAuthTestHandler(t)
			if tt.parse {
				token := models.Token{Principal: alice}
				if tt.parseErr != nil {
					token = models.Token{}
				}
				identity.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(token, tt.parseErr)
			}

			rr, principal, called := runMiddleware(h.auth, tt.authHeader)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
			if called {
				assert.Equal(t, alice, principal)
			}
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAuth_AddsPrincipalToRequestLogger(t *testing.T) {
	h, identity := newAuthTestHandler(t)
	identity.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{Principal: alice}, nil)

	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("handled")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	l := zerolog.New(&buf)
	req = req.WithContext(l.WithContext(req.Context()))

	h.auth(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"principal":"`+alice.String()+`"`)
}

// ---- optionalAuth ----

func TestOptionalAuth(t *testing.T) {
	t.Run("no header passes as anonymous", func(t *testing.T) {
		h, _ := newAuthTestHandler(t)

		rr, principal, called := runMiddleware(h.optionalAuth, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, called)
		assert.True(t, principal.IsAnonymous())
	})

	t.Run("valid token sets principal", func(t *testing.T) {
		h, identity := newAuthTestHandler(t)
		identity.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{Principal: bob}, nil)

		_, principal, called := runMiddleware(h.optionalAuth, "Bearer good")

		assert.True(t, called)
		assert.Equal(t, bob, principal)
	})

	t.Run("invalid token is still rejected", func(t *testing.T) {
		h, identity := newAuthTestHandler(t)
		identity.EXPECT().ParseToken(gomock.Any(), "bad").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

		rr, _, called := runMiddleware(h.optionalAuth, "Bearer bad")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, called)
	})
}

// ---- withResource ----

func TestWithResource(t *testing.T) {
	h, _ := newAuthTestHandler(t)

	router := chi.NewRouter()
	router.With(h.withResource).Get("/r/{resource}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(resourceFromRequest(r)))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/r/"+testResource.String(), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testResource.String(), rr.Body.String())

	// Handles are normalized to the canonical UUID form.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/r/0192A0B1-2222-7000-8000-000000000001", nil))
	assert.Equal(t, testResource.String(), rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/r/not-a-handle", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
