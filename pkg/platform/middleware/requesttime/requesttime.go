// Package requesttime pins a single "now" per HTTP request so every age
// check within the request uses the same instant.
package requesttime

import (
	"net/http"
	"time"

	"github.com/akasenomm/intern-decision-engine-backend/pkg/requestcontext"
)

// Middleware stores the arrival time in the request context.
func Middleware(next http.Handler) http.Handler {
	return MiddlewareWithClock(time.Now)(next)
}

// MiddlewareWithClock is Middleware with an injectable clock.
func MiddlewareWithClock(now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithTime(r.Context(), now())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
