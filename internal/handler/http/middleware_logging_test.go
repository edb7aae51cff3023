package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-file-vault/internal/logger"
)

// makeLoggedRequest creates a test request whose context logger writes to
// buf, the way withTraceID attaches one.
func makeLoggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
		body          string
		wantLevel     string
		wantContains  []string
	}{
		{
			name:          "GET 200",
			method:        http.MethodGet,
			path:          "/api/directory/whoami",
			handlerStatus: http.StatusOK,
			body:          `{"kind":"unknown_user"}`,
			wantLevel:     `"level":"info"`,
			wantContains:  []string{`"method":"GET"`, `"uri":"/api/directory/whoami"`, `"status":200`, `"size":23`, `"duration":`},
		},
		{
			name:          "PUT 413",
			method:        http.MethodPut,
			path:          "/api/resources/r/files/1/chunks/2",
			handlerStatus: http.StatusRequestEntityTooLarge,
			body:          "too large",
			wantLevel:     `"level":"info"`,
			wantContains:  []string{`"method":"PUT"`, `"status":413`},
		},
		{
			name:          "server errors are logged as errors",
			method:        http.MethodPost,
			path:          "/api/resources/r/files",
			handlerStatus: http.StatusInternalServerError,
			body:          "Internal Server Error",
			wantLevel:     `"level":"error"`,
			wantContains:  []string{`"status":500`},
		},
	}

	h := &Handler{logger: logger.Nop()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.body))
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeLoggedRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())

			out := logBuf.String()
			assert.Contains(t, out, tt.wantLevel)
			for _, want := range tt.wantContains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeLoggedRequest(http.MethodGet, "/test", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
	assert.Contains(t, logBuf.String(), `"size":1024`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/panic", &logBuf))
	}, "recovery belongs to middleware.Recoverer")
}
