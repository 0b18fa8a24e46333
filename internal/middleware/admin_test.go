package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/astrodaily/astrodaily/internal/auth"
)

func muteLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(sink{}, &slog.HandlerOptions{Level: slog.LevelError + 4}))
}

type sink struct{}

func (sink) Write(p []byte) (int, error) { return len(p), nil }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuth(t *testing.T) {
	t.Parallel()

	key, err := auth.GenerateAdminKey()
	if err != nil {
		t.Fatalf("GenerateAdminKey() error = %v", err)
	}

	guarded := AdminAuth(AdminAuthConfig{Logger: muteLogger(), KeyHash: key.Hash})(okHandler())

	cases := []struct {
		name       string
		authorize  func(*http.Request)
		wantStatus int
	}{
		{
			name:       "valid bearer key",
			authorize:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+key.Plaintext) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid header key",
			authorize:  func(r *http.Request) { r.Header.Set(AdminKeyHeader, key.Plaintext) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing key",
			authorize:  func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed key",
			authorize:  func(r *http.Request) { r.Header.Set(AdminKeyHeader, "not-an-admin-key") },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong key",
			authorize: func(r *http.Request) {
				r.Header.Set(AdminKeyHeader, "adm_"+strings.Repeat("0", auth.KeySecretLen))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/summary", nil)
			tc.authorize(req)
			rec := httptest.NewRecorder()
			guarded.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestAdminAuth_Unconfigured(t *testing.T) {
	t.Parallel()

	guarded := AdminAuth(AdminAuthConfig{Logger: muteLogger()})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/summary", nil)
	req.Header.Set(AdminKeyHeader, "adm_"+strings.Repeat("a", auth.KeySecretLen))
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when no hash configured", rec.Code)
	}
}

func TestRateLimitIP_DisabledPassesThrough(t *testing.T) {
	t.Parallel()

	limited := RateLimitIP(RateLimitConfig{Logger: muteLogger(), Enabled: false})(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analytics/events", nil)
	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with limiter disabled", rec.Code)
	}
}
