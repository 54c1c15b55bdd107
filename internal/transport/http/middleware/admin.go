package middleware

import (
	"net/http"
	"strings"

	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/auth"
	"github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/types"
)

// AdminAuth protects admin routes with optional password authentication.
// The password is verified against the Argon2id hash computed at startup.
// If no hash is configured, all requests pass (localhost-first design).
func AdminAuth(passwordHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip auth if no password configured
			if passwordHash == "" {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header: "Bearer <password>"
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				types.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			ok, err := auth.VerifyPassword(token, passwordHash)
			if err != nil || !ok {
				types.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
