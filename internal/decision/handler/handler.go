package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akasenomm/intern-decision-engine-backend/internal/decision"
	dErrors "github.com/akasenomm/intern-decision-engine-backend/pkg/domain-errors"
	"github.com/akasenomm/intern-decision-engine-backend/pkg/platform/httputil"
	"github.com/akasenomm/intern-decision-engine-backend/pkg/requestcontext"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// Service defines the interface for decision operations.
type Service interface {
	Evaluate(ctx context.Context, req decision.Request) (*decision.Decision, error)
}

// Handler wires decision endpoints to the decision service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a decision handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts decision endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/loan/decision", h.HandleDecision)
}

// HandleDecision handles POST /loan/decision requests.
func (h *Handler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, err := httputil.DecodeAndValidate[DecisionRequest](r)
	if err != nil {
		h.logger.InfoContext(ctx, "invalid decision request",
			"request_id", requestID,
			"error", err,
		)
		h.writeError(w, err)
		return
	}

	result, err := h.service.Evaluate(ctx, req.ToDomain())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logger.DebugContext(ctx, "decision served",
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromDecision(result))
}

// writeError maps rejections to 400/404 with their message and everything
// else to a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := dErrors.ToHTTPStatus(code)
	if code == dErrors.CodeInternal {
		httputil.WriteJSON(w, status, FromMessage(unexpectedErrorMessage))
		return
	}
	httputil.WriteJSON(w, status, FromMessage(err.Error()))
}
