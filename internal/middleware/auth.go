package middleware

import (
	"net/http"
	"strings"

	"github.com/baharkarakas/farm-backend/internal/auth"
)

// Identity attaches the caller resolved by the upstream gateway. The gateway
// has already authenticated the request and forwards the user id and role in
// trusted headers. Requests without a user id pass through anonymous.
func Identity(userHeader, roleHeader string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := strings.TrimSpace(r.Header.Get(userHeader))
			if uid == "" {
				next.ServeHTTP(w, r)
				return
			}
			u := auth.User{ID: uid, Role: strings.TrimSpace(r.Header.Get(roleHeader))}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), u)))
		})
	}
}
