package decision

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/akasenomm/intern-decision-engine-backend/internal/decision/metrics"
	"github.com/akasenomm/intern-decision-engine-backend/internal/decision/ports"
	"github.com/akasenomm/intern-decision-engine-backend/pkg/requestcontext"
)

const tracerName = "github.com/akasenomm/intern-decision-engine-backend/internal/decision"

// Service runs the validator and the engine for one request.
type Service struct {
	validator *Validator
	engine    *Engine
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the Prometheus collectors. A nil value disables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// NewService builds a Service for policy. The policy is validated here so a
// misconfigured process fails at startup.
func NewService(policy Policy, identity ports.IdentityCodeParser, opts ...Option) (*Service, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	validator, err := NewValidator(policy, identity)
	if err != nil {
		return nil, err
	}

	s := &Service{
		validator: validator,
		engine:    NewEngine(policy),
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Evaluate verifies req and, if it passes, returns the best offer.
// Errors are *Error for rejections; anything else is an internal failure.
func (s *Service) Evaluate(ctx context.Context, req Request) (*Decision, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "decision.Evaluate",
		trace.WithAttributes(
			attribute.String("decision.country", req.Country.String()),
			attribute.Int("decision.requested_amount", req.LoanAmount),
			attribute.Int("decision.requested_period", req.LoanPeriod),
		))
	defer span.End()

	result, err := s.evaluate(ctx, req)
	elapsed := time.Since(start)
	s.metrics.ObserveEvaluateLatency(elapsed)

	if err != nil {
		reason := ReasonOf(err)
		if reason == "" {
			span.RecordError(err)
			span.SetStatus(codes.Error, "evaluation failed")
			s.metrics.IncrementOutcome("error", "internal")
			s.logger.ErrorContext(ctx, "decision evaluation failed",
				"request_id", requestcontext.RequestID(ctx),
				"country", req.Country,
				"error", err,
			)
			return nil, err
		}
		span.SetAttributes(attribute.String("decision.reason", string(reason)))
		s.metrics.IncrementOutcome(outcomeStatus(err), string(reason))
		s.logger.InfoContext(ctx, "decision rejected",
			"request_id", requestcontext.RequestID(ctx),
			"country", req.Country,
			"reason", reason,
			"duration_ms", elapsed.Milliseconds(),
		)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("decision.segment", result.Segment.String()),
		attribute.Int("decision.approved_amount", result.LoanAmount),
		attribute.Int("decision.approved_period", result.LoanPeriod),
	)
	s.metrics.IncrementOutcome("approved", result.Segment.String())
	s.metrics.ObserveApprovedAmount(result.LoanAmount)
	if result.PeriodAdjusted {
		s.metrics.IncrementPeriodAdjustment(result.Segment.String())
	}
	s.logger.InfoContext(ctx, "decision evaluated",
		"request_id", requestcontext.RequestID(ctx),
		"country", req.Country,
		"segment", result.Segment.String(),
		"loan_amount", result.LoanAmount,
		"loan_period", result.LoanPeriod,
		"period_adjusted", result.PeriodAdjusted,
		"duration_ms", elapsed.Milliseconds(),
	)
	return &result, nil
}

func (s *Service) evaluate(ctx context.Context, req Request) (Decision, error) {
	if err := s.validator.Verify(ctx, req); err != nil {
		return Decision{}, err
	}
	return s.engine.Decide(req)
}

func outcomeStatus(err error) string {
	if errors.Is(err, ErrNoValidLoan) {
		return "no_valid_loan"
	}
	return "invalid_input"
}
