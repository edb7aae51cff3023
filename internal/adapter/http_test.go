// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
)

const (
	testResource  = models.ResourceHandle("0192f5d4-6a3e-7c1a-9b2e-4c5d6e7f8a9b")
	testPrincipal = models.Principal("0192f5d4-0000-7c1a-9b2e-4c5d6e7f8a9b")
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func testToken(t *testing.T) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: testPrincipal.String(), ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)
	return token
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── SignUp / Login ──────────────────────────────────────────────────────────

func TestSignUp_StoresTokenAndReturnsPrincipal(t *testing.T) {
	token := testToken(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/identity/signup", r.URL.Path)

		var account models.Account
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&account))
		assert.Equal(t, "alice", account.Login)

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	principal, err := a.SignUp(context.Background(), models.Account{Login: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, testPrincipal, principal)
	assert.Equal(t, token, a.Token())
}

func TestSignUp_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignUp(context.Background(), models.Account{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/identity/login", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Account{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Account{Login: "alice"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse bearer token")
}

func TestLogin_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Login(context.Background(), models.Account{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

// ── Directory ───────────────────────────────────────────────────────────────

func TestResolveOwnResource_SendsTokenAndDecodesUnion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/directory/resource", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))
		writeJSON(t, w, models.ResolveResourceResponse{Kind: models.ResolveCreationFailed, Reason: "capacity exhausted"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" sometoken ")

	got, err := a.ResolveOwnResource(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ResolveCreationFailed, got.Kind)
	assert.Equal(t, "capacity exhausted", got.Reason)
}

func TestResolveOwnResource_AnonymousSendsNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, models.ResolveResourceResponse{Kind: models.ResolveAnonymousCaller})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ResolveOwnResource(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ResolveAnonymousCaller, got.Kind)
}

func TestRetryResourceCreation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/directory/resource/retry", r.URL.Path)
		writeJSON(t, w, models.RetryCreationResponse{Kind: models.RetryCreated, Resource: testResource})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).RetryResourceCreation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.RetryCreationResponse{Kind: models.RetryCreated, Resource: testResource}, got)
}

func TestListSharedIn(t *testing.T) {
	want := models.SharedFilesResponse{
		Kind: models.SharedFilesOK,
		Resources: []models.SharedResource{{
			Resource: testResource,
			Owner:    models.PublicUser{Principal: "owner", Username: "bob"},
			Files:    []models.FileSummary{{FileID: 7, FileName: "report.pdf"}},
		}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/directory/shared", r.URL.Path)
		writeJSON(t, w, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListSharedIn(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Resources, 1)
	assert.Equal(t, models.FileID(7), got.Resources[0].Files[0].FileID)
	assert.Equal(t, "bob", got.Resources[0].Owner.Username)
}

func TestRegister_SendsUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/directory/users", r.URL.Path)

		var body models.RegisterRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body.Username)

		writeJSON(t, w, models.RegisterResponse{Kind: models.RegisterUsernameExists})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Register(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RegisterUsernameExists, got.Kind)
}

func TestWhoAmI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/directory/whoami", r.URL.Path)
		writeJSON(t, w, models.WhoAmIResponse{Kind: models.WhoAmIKnownUser, User: &models.PublicUser{Username: "alice"}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).WhoAmI(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice", got.User.Username)
}

func TestGetUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/directory/users/"+testPrincipal.String(), r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("user not found"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), testPrincipal)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsers_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("offset"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "ali", q.Get("query"))
		writeJSON(t, w, models.GetUsersResponse{Kind: models.GetUsersOK, Page: &models.UsersPage{Total: 1, Users: []models.PublicUser{{Username: "alice"}}}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListUsers(context.Background(), models.UsersQuery{Offset: 20, Limit: 10, Query: "ali"})
	require.NoError(t, err)
	require.NotNil(t, got.Page)
	assert.Equal(t, 1, got.Page.Total)
}

// ── Storage ─────────────────────────────────────────────────────────────────

func TestCreateFile_PostsFirstChunk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/resources/"+testResource.String()+"/files", r.URL.Path)

		var upload models.FileUpload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&upload))
		assert.Equal(t, []byte{1, 2, 3}, upload.Content)
		assert.Equal(t, uint64(3), upload.NumChunks)

		writeJSON(t, w, models.CreateFileResponse{Kind: models.CreateFileOK, FileID: 42})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateFile(context.Background(), testResource, models.FileUpload{
		FileName: "a.txt", Content: []byte{1, 2, 3}, NumChunks: 3, OwnerKey: models.WrappedKey{9},
	})
	require.NoError(t, err)
	assert.Equal(t, models.CreateFileResponse{Kind: models.CreateFileOK, FileID: 42}, got)
}

func TestCreateFile_PayloadTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateFile(context.Background(), testResource, models.FileUpload{})
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestRequestFileAndClaim(t *testing.T) {
	const alias = "0192f5d4-aaaa-7c1a-9b2e-4c5d6e7f8a9b"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/resources/"+testResource.String()+"/requests":
			writeJSON(t, w, models.RequestFileResponse{Alias: alias, FileID: 3})
		case r.Method == http.MethodGet && r.URL.Path == "/api/resources/"+testResource.String()+"/aliases/"+alias:
			writeJSON(t, w, models.AliasInfoResponse{Kind: models.AliasInfoOK, Info: &models.AliasInfo{FileID: 3, FileName: "tax.pdf"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/resources/"+testResource.String()+"/aliases/"+alias:
			writeJSON(t, w, models.CreateFileResponse{Kind: models.CreateFileNotRequested})
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	req, err := a.RequestFile(ctx, testResource, "tax.pdf")
	require.NoError(t, err)
	assert.Equal(t, alias, req.Alias)

	info, err := a.GetAliasInfo(ctx, testResource, alias)
	require.NoError(t, err)
	require.NotNil(t, info.Info)
	assert.Equal(t, "tax.pdf", info.Info.FileName)

	claimed, err := a.ClaimRequest(ctx, testResource, alias, models.FileUpload{})
	require.NoError(t, err)
	assert.Equal(t, models.CreateFileNotRequested, claimed.Kind)
}

func TestUploadChunk_PutsToChunkPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/resources/"+testResource.String()+"/files/42/chunks/2", r.URL.Path)

		var body models.ChunkUpload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []byte("chunk-two"), body.Contents)

		writeJSON(t, w, models.UploadChunkResponse{Kind: models.UploadChunkOutOfBounds})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).UploadChunk(context.Background(), testResource, 42, 2, []byte("chunk-two"))
	require.NoError(t, err)
	assert.Equal(t, models.UploadChunkOutOfBounds, got.Kind)
}

func TestDownloadChunk(t *testing.T) {
	want := models.DownloadChunkResponse{Kind: models.DownloadFound, Contents: []byte("payload"), NumChunks: 3, OwnerKey: models.WrappedKey{1, 2}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/resources/"+testResource.String()+"/files/42/chunks/0", r.URL.Path)
		writeJSON(t, w, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).DownloadChunk(context.Background(), testResource, 42, 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resources/"+testResource.String()+"/files", r.URL.Path)
		writeJSON(t, w, []models.FileRecord{
			{FileID: 1, FileName: "a", Status: models.FileStatusUploaded},
			{FileID: 2, FileName: "b", Status: models.FileStatusPending},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListRequests(context.Background(), testResource)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.FileStatusPending, got[1].Status)
}

func TestListRequests_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("not the resource owner"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListRequests(context.Background(), testResource)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/resources/"+testResource.String()+"/files/5", r.URL.Path)
		writeJSON(t, w, models.DeleteFileResponse{Kind: models.DeleteFileFailedToRevokeShare, Reason: "index unavailable"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).DeleteFile(context.Background(), testResource, 5)
	require.NoError(t, err)
	assert.Equal(t, "index unavailable", got.Reason)
}

func TestShareAndRevoke(t *testing.T) {
	sharesURL := "/api/resources/" + testResource.String() + "/files/5/shares"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == sharesURL:
			var body models.ShareRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Len(t, body.Grants, 1)
			writeJSON(t, w, models.ShareResponse{Kind: models.ShareOK})
		case r.Method == http.MethodPost && r.URL.Path == sharesURL+"/revoke":
			var body models.RevokeRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, []models.Principal{"bob"}, body.Recipients)
			writeJSON(t, w, models.RevokeResponse{Kind: models.RevokeNoSuchRecipient, Recipient: "bob"})
		case r.Method == http.MethodGet && r.URL.Path == sharesURL:
			writeJSON(t, w, []models.PublicUser{{Principal: "bob", Username: "bob"}})
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	shared, err := a.Share(ctx, testResource, 5, []models.ShareGrant{{Recipient: "bob", WrappedKey: models.WrappedKey{1}}})
	require.NoError(t, err)
	assert.Equal(t, models.ShareOK, shared.Kind)

	revoked, err := a.Revoke(ctx, testResource, 5, []models.Principal{"bob"})
	require.NoError(t, err)
	assert.Equal(t, models.RevokeNoSuchRecipient, revoked.Kind)

	users, err := a.AllowedUsers(ctx, testResource, 5)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestPublicKey_GetAndSet(t *testing.T) {
	var stored []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resources/"+testResource.String()+"/public-key", r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			var body models.PublicKeyBody
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			stored = body.PublicKey
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			writeJSON(t, w, models.PublicKeyBody{PublicKey: stored})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	key, err := a.GetPublicKey(ctx, testResource)
	require.NoError(t, err)
	assert.Empty(t, key)

	require.NoError(t, a.SetPublicKey(ctx, testResource, []byte{7, 7, 7}))

	key, err = a.GetPublicKey(ctx, testResource)
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 7, 7}, key)
}

func TestMapHTTPError_ServerErrors(t *testing.T) {
	for status, want := range map[int]error{
		http.StatusInternalServerError: ErrInternalServerError,
		http.StatusBadGateway:          ErrBadGateway,
		http.StatusServiceUnavailable:  ErrServiceUnavailable,
		http.StatusBadRequest:          ErrBadRequest,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := newTestAdapter(t, srv.URL).WhoAmI(context.Background())
		assert.ErrorIs(t, err, want, "status %d", status)
		srv.Close()
	}
}

func TestMapHTTPError_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).WhoAmI(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}
