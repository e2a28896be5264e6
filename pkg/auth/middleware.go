package auth

import (
	"net/http"
	"strings"

	"github.com/ghuser/aquacatalog/pkg/httpx"
	"github.com/ghuser/aquacatalog/pkg/logger"
)

const bearerPrefix = "Bearer "

// RequireAuth is a chi middleware that enforces authentication via bearer
// tokens. It reads the Authorization header, verifies the token, and injects
// the admin identity into the request context. Returns 401 Unauthorized if
// the token is missing, malformed, or fails verification.
//
// After this middleware, handlers can safely call auth.UsernameFromCtx(r.Context()).
func RequireAuth(svc *Service, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			claims, err := svc.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				log.WarnContext(r.Context(), "token verification failed", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			ctx := WithUsername(r.Context(), claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
