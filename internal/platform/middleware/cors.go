package middleware

import (
	"net/http"
	"slices"
	"strings"
)

const (
	corsAllowMethods = "POST, GET, OPTIONS"
	corsAllowHeaders = "Content-Type, Accept, Origin, X-Request-ID, X-Requested-With"
)

// CORS answers preflight requests and sets Access-Control-* headers for the
// given origins. "*" allows any origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAny := slices.Contains(allowedOrigins, "*")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				switch {
				case allowAny:
					w.Header().Set("Access-Control-Allow-Origin", "*")
				case slices.ContainsFunc(allowedOrigins, func(o string) bool { return strings.EqualFold(o, origin) }):
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Add("Vary", "Origin")
				}
				w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
				w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
				w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
