package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"adev-backend/pkg/requestcontext"
)

// HeaderName is the fixed request header carrying the shared admin secret.
const HeaderName = "X-Admin-Password"

// RequireAdminSecret gates a route group behind a single shared secret.
// The secret is the whole security model here: one static credential, no
// sessions, no per-user identity.
func RequireAdminSecret(expectedSecret string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secret := r.Header.Get(HeaderName)
			// Constant-time comparison to avoid leaking the secret byte by byte.
			if subtle.ConstantTimeCompare([]byte(secret), []byte(expectedSecret)) != 1 {
				ctx := r.Context()
				logger.WarnContext(ctx, "admin secret mismatch",
					"request_id", requestcontext.RequestID(ctx),
					"path", r.URL.Path,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"Acesso negado. Senha de admin inválida."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
