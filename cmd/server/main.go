package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/akasenomm/intern-decision-engine-backend/internal/decision"
	decisionhandler "github.com/akasenomm/intern-decision-engine-backend/internal/decision/handler"
	decisionmetrics "github.com/akasenomm/intern-decision-engine-backend/internal/decision/metrics"
	"github.com/akasenomm/intern-decision-engine-backend/internal/platform/config"
	"github.com/akasenomm/intern-decision-engine-backend/internal/platform/httpserver"
	"github.com/akasenomm/intern-decision-engine-backend/internal/platform/logger"
	platformmetrics "github.com/akasenomm/intern-decision-engine-backend/internal/platform/metrics"
	httptransport "github.com/akasenomm/intern-decision-engine-backend/internal/transport/http"
	"github.com/akasenomm/intern-decision-engine-backend/pkg/personalcode"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/decision.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "decision-engine: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, syncLog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = syncLog() }()

	policy, err := cfg.Policy.Build()
	if err != nil {
		return fmt.Errorf("build policy: %w", err)
	}

	reg := platformmetrics.NewRegistry(version)

	svc, err := decision.NewService(policy, personalcode.NewEstonian(),
		decision.WithLogger(log),
		decision.WithMetrics(decisionmetrics.New(reg)),
	)
	if err != nil {
		return fmt.Errorf("build decision service: %w", err)
	}

	router := httptransport.NewRouter(httptransport.Dependencies{
		Decision:           decisionhandler.New(svc, log),
		Logger:             log,
		Gatherer:           reg,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})
	srv := httpserver.New(cfg.Server.Addr, router, cfg.Server.ReadHeaderTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.InfoContext(ctx, "starting decision engine",
		"addr", cfg.Server.Addr,
		"version", version,
		"countries", len(policy.Countries()),
		"max_loan_amount", policy.MaxLoanAmount,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Serve(gctx, srv, log)
	})
	g.Go(func() error {
		return httpserver.ShutdownOnDone(gctx, srv, cfg.Server.ShutdownTimeout, log)
	})
	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "server stopped with error", "error", err)
		return err
	}
	log.InfoContext(ctx, "server stopped")
	return nil
}
