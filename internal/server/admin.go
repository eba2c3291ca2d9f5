package server

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// adminAuthMiddleware guards the admin routes with a single shared
// password, supplied as "Authorization: Bearer <password>" and verified
// against the configured bcrypt hash. With no hash configured every
// request is rejected, so the admin surface is closed by default.
func adminAuthMiddleware(passwordHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if passwordHash == "" {
				writeError(w, http.StatusUnauthorized, "admin access disabled")
				return
			}

			password, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || password == "" {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
