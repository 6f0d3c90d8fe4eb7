package controller

import (
	"net/http"
	"slices"
	"strings"
)

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, " +
		"Cache-Control, Idempotency-Key, X-Request-Id"
	corsAllowMethods = "POST, OPTIONS, GET, PUT, PATCH, DELETE"
)

// WithCORS returns a middleware that sets CORS headers for allowed origins and
// short-circuits OPTIONS preflight requests with 204 No Content. An origin
// list containing "*" allows every origin.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.ContainsFunc(allowedOrigins, func(o string) bool {
				return strings.EqualFold(strings.TrimSpace(o), origin)
			}):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
			w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id, Retry-After")

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
