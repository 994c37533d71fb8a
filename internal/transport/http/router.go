// Package httptransport assembles the public HTTP surface.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	decisionhandler "github.com/akasenomm/intern-decision-engine-backend/internal/decision/handler"
	"github.com/akasenomm/intern-decision-engine-backend/internal/platform/middleware"
	dErrors "github.com/akasenomm/intern-decision-engine-backend/pkg/domain-errors"
	"github.com/akasenomm/intern-decision-engine-backend/pkg/platform/httputil"
	"github.com/akasenomm/intern-decision-engine-backend/pkg/platform/middleware/metadata"
	"github.com/akasenomm/intern-decision-engine-backend/pkg/platform/middleware/requesttime"
)

// Dependencies are the handlers and infrastructure the router mounts.
type Dependencies struct {
	Decision           *decisionhandler.Handler
	Logger             *slog.Logger
	Gatherer           prometheus.Gatherer
	CORSAllowedOrigins []string
}

// NewRouter wires all public endpoints behind the shared middleware chain.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(metadata.RequestMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.AccessLog(deps.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(deps.CORSAllowedOrigins))

	deps.Decision.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
	})
	return r
}
