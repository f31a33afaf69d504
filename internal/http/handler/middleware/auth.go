package middleware

import (
	"encoding/json"
	"net/http"
	"prepcheck/internal/core"
	"strings"

	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	verifier TokenVerifier
}

func NewAuthMiddleware(logger *zap.SugaredLogger, verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		verifier: verifier,
	}
}

// Authenticate rejects the request with 401 unless it carries a valid
// "Authorization: Bearer <token>" header. On success the caller's identity is
// available to the next handler through core.IdentityFromContext.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := RequestIDFromContext(r.Context())

		header := r.Header.Get("Authorization")
		if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			m.unauthorized(w, "Authorization header with bearer token is required")
			m.logs.Warnw("missing bearer token",
				"path", r.URL.Path,
				"request_id", requestId)
			return
		}

		identity, err := m.verifier.VerifyToken(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			m.unauthorized(w, "invalid or expired token")
			m.logs.Warnw("token verification failed",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestId)
			return
		}

		ctx := core.ContextWithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)

	body := map[string]string{
		"message": "Authentication failed",
		"error":   reason,
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		m.logs.Errorw("failed to encode response", "error", err)
	}
}
