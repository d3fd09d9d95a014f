package middleware

import (
	"net/http"
	"strings"

	"github.com/showcase3d/service/internal/response"
)

// AdminKeyHeader is the preferred header for the admin credential.
const AdminKeyHeader = "x-api-key"

// RequireAdmin returns middleware that gates mutating endpoints behind a
// statically configured admin token. The credential is read from the
// x-api-key header, falling back to Authorization; both sides of the
// comparison are whitespace-trimmed.
func RequireAdmin(adminToken string) func(http.Handler) http.Handler {
	want := strings.TrimSpace(adminToken)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(AdminKeyHeader))
			if token == "" {
				token = strings.TrimSpace(r.Header.Get("Authorization"))
			}
			if token == "" {
				response.Unauthorized(w, "missing admin token")
				return
			}
			if want == "" || token != want {
				response.Unauthorized(w, "invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
