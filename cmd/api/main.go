package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"textstats/internal/config"
	hhttp "textstats/internal/handler/http"
	hanalyze "textstats/internal/handler/http/analyze"
	"textstats/internal/handler/http/requestid"
	"textstats/internal/observability/logging"
	"textstats/internal/observability/tracing"
	anaUC "textstats/internal/usecase/analyze"
	"textstats/pkg/security/csp"

	_ "textstats/docs" // swagger docs
)

// @title           Text Stats API
// @version         1.0
// @description     Word and character counting for submitted text.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

const serviceName = "textstats"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)

	shutdownTracing := initTracing(logger, cfg)
	defer shutdownTracing()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger builds the process logger and installs it as the slog default.
func initLogger(cfg *config.Config) *slog.Logger {
	logger := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	return logger
}

// initTracing installs the tracer provider when enabled and returns its shutdown func.
func initTracing(logger *slog.Logger, cfg *config.Config) func() {
	if !cfg.Tracing.Enabled {
		logger.Info("tracing disabled")
		return func() {}
	}

	tp := tracing.InitProvider(tracing.ProviderConfig{
		ServiceName:    serviceName,
		ServiceVersion: cfg.Version,
		SampleRatio:    cfg.Tracing.SampleRatio,
	})
	logger.Info("tracing enabled", slog.Float64("sample_ratio", cfg.Tracing.SampleRatio))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("tracer provider shutdown failed", slog.Any("error", err))
		}
	}
}

// run listens on the configured address and serves until ctx is cancelled.
func run(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	ln, err := net.Listen("tcp", cfg.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.HTTP.Addr, err)
	}

	ready := &hhttp.ReadyHandler{}
	srv := &http.Server{
		Handler:           setupHandler(logger, cfg, ready),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	return serve(ctx, logger, srv, ln, ready, cfg.HTTP.ShutdownTimeout)
}

// serve runs srv on ln and shuts it down gracefully once ctx is done.
// Readiness flips to false before the listener closes so that probes
// stop routing traffic while in-flight requests drain.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, ln net.Listener, ready *hhttp.ReadyHandler, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", ln.Addr().String()))
		ready.MarkReady()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		ready.MarkShuttingDown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// setupHandler registers every route and wraps the mux in the middleware chain.
func setupHandler(logger *slog.Logger, cfg *config.Config, ready *hhttp.ReadyHandler) http.Handler {
	svc := anaUC.NewService()

	mux := http.NewServeMux()
	hanalyze.Register(mux, svc)

	mux.Handle("GET /health", &hhttp.HealthHandler{Analyzer: svc, Version: cfg.Version})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /ready", ready)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	if cfg.Swagger.Enabled {
		mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	}

	return withMiddleware(logger, cfg, mux)
}

// withMiddleware wraps h in the service middleware chain, outermost first.
// Logging sits outside Recover so a recovered panic still gets its access log line.
func withMiddleware(logger *slog.Logger, cfg *config.Config, h http.Handler) http.Handler {
	return hhttp.Chain(h,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		csp.Middleware(
			csp.APIPolicy().ReportOnly(cfg.CSP.ReportOnly),
			csp.Route{Prefix: "/swagger/", Policy: csp.SwaggerUIPolicy().ReportOnly(cfg.CSP.ReportOnly)},
		),
		hhttp.LimitRequestBody(cfg.HTTP.MaxBodyBytes),
		hhttp.Timeout(cfg.HTTP.RequestTimeout),
		hhttp.MetricsMiddleware,
	)
}
