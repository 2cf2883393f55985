package middleware

import (
	"net/http"

	"github.com/baharkarakas/farm-backend/internal/api/httpx"
)

// Recover turns a panic into a generic error response. The panic value is
// logged but never sent to the client.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := httpx.NewResponse(w)
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				httpx.RenderError(resp, r, &httpx.PanicError{Value: rec})
			}
		}()
		next.ServeHTTP(resp, r)
	})
}
