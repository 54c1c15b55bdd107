package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/auth"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name           string
		existingID     string
		wantPassedThru bool
	}{
		{
			name:           "generates new ID when none provided",
			existingID:     "",
			wantPassedThru: false,
		},
		{
			name:           "uses existing ID from header",
			existingID:     "existing-request-id",
			wantPassedThru: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var capturedID string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				capturedID = GetRequestID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.existingID != "" {
				req.Header.Set(RequestIDHeader, tt.existingID)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			respID := rec.Header().Get(RequestIDHeader)
			if respID == "" {
				t.Error("expected X-Request-ID in response header")
			}
			if capturedID == "" {
				t.Error("expected request ID in context")
			}
			if tt.wantPassedThru && respID != tt.existingID {
				t.Errorf("expected ID %q, got %q", tt.existingID, respID)
			}
			if !tt.wantPassedThru && !strings.HasPrefix(respID, "req_") {
				t.Errorf("expected generated ID with req_ prefix, got %q", respID)
			}
		})
	}
}

func TestNewRequestID_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := newRequestID()
		if !strings.HasPrefix(id, "req_") || len(id) != len("req_")+8 {
			t.Fatalf("unexpected request ID format: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate request ID: %q", id)
		}
		seen[id] = true
	}
}

func TestCORS(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("sets CORS headers on regular request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("expected Access-Control-Allow-Origin header")
		}
		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
	})

	t.Run("handles OPTIONS preflight request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Error("expected empty preflight body")
		}
	})
}

func TestAdminAuth(t *testing.T) {
	hash, err := auth.HashPassword("secretsecret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	tests := []struct {
		name           string
		passwordHash   string
		authHeader     string
		wantStatus     int
		wantNextCalled bool
	}{
		{
			name:           "no password configured allows all",
			passwordHash:   "",
			authHeader:     "",
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "correct password passes",
			passwordHash:   hash,
			authHeader:     "Bearer secretsecret",
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "wrong password rejects",
			passwordHash:   hash,
			authHeader:     "Bearer wrongwrong",
			wantStatus:     http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:           "missing auth header rejects",
			passwordHash:   hash,
			authHeader:     "",
			wantStatus:     http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:           "malformed auth header rejects",
			passwordHash:   hash,
			authHeader:     "Basic secretsecret",
			wantStatus:     http.StatusUnauthorized,
			wantNextCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			handler := AdminAuth(tt.passwordHash)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/admin/usage", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if nextCalled != tt.wantNextCalled {
				t.Errorf("expected nextCalled=%v, got %v", tt.wantNextCalled, nextCalled)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		cacheHdr  string
		wantLevel string
		wantCache bool
	}{
		{name: "ok logs at info", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "client error logs at warn", status: http.StatusUnauthorized, wantLevel: "level=WARN"},
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
		{name: "cache hit attribute", status: http.StatusOK, cacheHdr: "HIT", wantLevel: "level=INFO", wantCache: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.cacheHdr != "" {
					w.Header().Set("X-Cache", tt.cacheHdr)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte("body"))
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/web-search", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, rec.Code)
			}
			line := buf.String()
			if !strings.Contains(line, tt.wantLevel) {
				t.Errorf("expected %s in log line, got %q", tt.wantLevel, line)
			}
			if !strings.Contains(line, "path=/api/web-search") {
				t.Errorf("expected path attribute in log line, got %q", line)
			}
			if !strings.Contains(line, "bytes=4") {
				t.Errorf("expected bytes attribute in log line, got %q", line)
			}
			if got := strings.Contains(line, "cache=HIT"); got != tt.wantCache {
				t.Errorf("cache attribute present=%v, want %v in %q", got, tt.wantCache, line)
			}
		})
	}
}

func TestResponseWriterFlush(t *testing.T) {
	handler := RequestLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Flush must stay available through the wrapper for stream relay
			if f, ok := w.(http.Flusher); ok {
				f.Flush()
			}
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestGetRequestID_NoContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if id := GetRequestID(req.Context()); id != "" {
		t.Errorf("expected empty ID, got %q", id)
	}
}
