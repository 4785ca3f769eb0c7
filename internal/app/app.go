package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ohana-solucoes/padroniza-backend/internal/cache"
	"github.com/ohana-solucoes/padroniza-backend/internal/config"
	"github.com/ohana-solucoes/padroniza-backend/internal/service/standardize"
	"github.com/ohana-solucoes/padroniza-backend/internal/transport/middleware"
	"github.com/ohana-solucoes/padroniza-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the standardization service, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	svc := standardize.NewService(logger, nil)
	if results := newResultCache(cfg.Engine); results != nil {
		svc = standardize.NewService(logger, results)
	}
	handler := rest.NewHandler(logger, svc, cfg.Engine)
	health := rest.NewHealthHandler(BuildVersion())

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      chain(rest.NewMux(handler, health)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newResultCache builds the LRU result cache, or nil when disabled.
func newResultCache(cfg config.EngineConfig) *cache.Results {
	if cfg.CacheSize <= 0 {
		return nil
	}
	c, err := cache.NewResults(cfg.CacheSize)
	if err != nil {
		return nil
	}
	return c
}
