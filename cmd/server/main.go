// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

// Command server runs the Rasoi HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rasoilabs/rasoi/internal/api"
	"github.com/rasoilabs/rasoi/internal/catalog"
	"github.com/rasoilabs/rasoi/internal/config"
	"github.com/rasoilabs/rasoi/internal/engine"
	"github.com/rasoilabs/rasoi/internal/logging"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	provider, err := buildCatalog(cfg)
	if err != nil {
		return fmt.Errorf("initialize catalog: %w", err)
	}

	eng, err := engine.New(&cfg.Engine, provider, logger)
	if err != nil {
		return fmt.Errorf("initialize engine: %w", err)
	}

	handler := api.NewHandler(eng, provider, logger)
	router := api.NewRouter(handler, api.RouterConfig{
		RateLimitReqs:   cfg.API.RateLimitReqs,
		RateLimitWindow: cfg.API.RateLimitWindow,
		CORSOrigins:     cfg.API.CORSOrigins,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", addr).
			Str("catalog_source", cfg.Catalog.Source).
			Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}

// buildCatalog constructs the configured catalog provider.
func buildCatalog(cfg *config.Config) (engine.CatalogProvider, error) {
	switch cfg.Catalog.Source {
	case "builtin":
		return catalog.NewDefault(), nil
	case "file":
		return catalog.LoadFile(cfg.Catalog.Path)
	case "http":
		return catalog.NewHTTP(cfg.Catalog.HTTP, logging.Logger())
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
