package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/astrodaily/astrodaily/internal/auth"
)

const (
	// minAuthDuration is the minimum time to spend on auth to prevent timing attacks.
	minAuthDuration = 200 * time.Millisecond

	// AdminKeyHeader is the fallback header for the admin key.
	AdminKeyHeader = "X-Admin-Key"
)

// AdminAuthConfig holds configuration for the admin auth middleware.
type AdminAuthConfig struct {
	Logger *slog.Logger
	// KeyHash is the argon2id PHC hash of the admin key. An empty hash
	// disables the guarded routes entirely.
	KeyHash string
}

// AdminAuth returns middleware that guards the analytics summary and
// editorial upsert routes with the single configured admin key.
func AdminAuth(cfg AdminAuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			// Ensure consistent timing regardless of outcome
			defer func() {
				elapsed := time.Since(startTime)
				if elapsed < minAuthDuration {
					time.Sleep(minAuthDuration - elapsed)
				}
			}()

			if cfg.KeyHash == "" {
				cfg.Logger.Warn("admin route hit with no admin key configured",
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAdminDisabledError(w)
				return
			}

			key := extractAdminKey(r)
			if key == "" {
				logAdminFailure(cfg.Logger, r, "missing_key")
				writeAdminAuthError(w)
				return
			}

			if !auth.ValidateKeyFormat(key) {
				logAdminFailure(cfg.Logger, r, "invalid_format")
				writeAdminAuthError(w)
				return
			}

			match, err := auth.VerifyKey(key, cfg.KeyHash)
			if err != nil {
				cfg.Logger.Error("admin key verification error",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAdminAuthError(w)
				return
			}
			if !match {
				logAdminFailure(cfg.Logger, r, "invalid_key")
				writeAdminAuthError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func logAdminFailure(logger *slog.Logger, r *http.Request, reason string) {
	logger.Warn("admin authentication failed",
		slog.String("reason", reason),
		slog.String("ip", getClientIP(r)),
		slog.String("endpoint", r.Method+" "+r.URL.Path),
		slog.String("request_id", GetRequestID(r.Context())),
	)
}

// extractAdminKey extracts the admin key from the request.
// Supports both "Authorization: Bearer <key>" and "X-Admin-Key: <key>" headers.
func extractAdminKey(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return r.Header.Get(AdminKeyHeader)
}

// writeAdminAuthError writes a 401 Unauthorized response.
// Uses the same message for all auth failures to prevent enumeration.
func writeAdminAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Invalid or missing admin key","code":"UNAUTHORIZED"}`))
}

// writeAdminDisabledError writes a 503 for unconfigured admin routes.
func writeAdminDisabledError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte(`{"error":"Admin interface is not configured","code":"ADMIN_DISABLED"}`))
}
