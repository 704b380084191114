package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/onnovanbreemen/skills-getting-started-with-github-copilot/internal/app"
	"github.com/onnovanbreemen/skills-getting-started-with-github-copilot/internal/config"
	"github.com/onnovanbreemen/skills-getting-started-with-github-copilot/internal/logger"
	"github.com/onnovanbreemen/skills-getting-started-with-github-copilot/internal/store/memory"
	transporthttp "github.com/onnovanbreemen/skills-getting-started-with-github-copilot/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	store := memory.NewStore(memory.SeedActivities())
	registrySvc := app.NewRegistryService(store)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/activities", transporthttp.HandleListActivities(registrySvc))
	mux.Handle("/activities/", transporthttp.HandleActivityAction(registrySvc))
	mux.Handle("/", transporthttp.NotFoundHandler())

	handler := transporthttp.RequestID(
		transporthttp.RequestLogger(
			transporthttp.Metrics(
				transporthttp.CORS(cfg.CORSOrigins, mux),
			),
			zl,
		),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	zl.Info("api listening", zap.String("port", cfg.Port))

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("server error", zap.Error(err))
		}
	case <-stopCtx.Done():
		zl.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Error("server shutdown error", zap.Error(err))
	}
	zl.Info("server stopped")
}
