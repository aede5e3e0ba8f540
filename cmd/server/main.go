// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

// Package main is the entry point for the Inka recommendation server.
//
// Inka loads a movie catalog from a CSV dataset, builds an in-memory
// recommendation engine over it, and serves recommendation queries over
// a REST API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered loading from defaults, YAML file, and
//     environment variables (Koanf v2)
//  2. Logging: zerolog structured logging
//  3. Catalog: CSV dataset load and normalization
//  4. Engine: precomputes genre/director sets, the title index, and the
//     TF-IDF text corpus
//  5. HTTP server: Chi router with request ID, CORS, rate limiting, and
//     Prometheus instrumentation
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (CATALOG_PATH, HTTP_PORT, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections and waits up to 10 seconds for in-flight
// requests to complete.
//
// # Example Usage
//
//	export CATALOG_PATH=/data/movies.csv
//	export HTTP_PORT=8600
//	./inka
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/donayy/inka/internal/api"
	"github.com/donayy/inka/internal/config"
	"github.com/donayy/inka/internal/dataset"
	"github.com/donayy/inka/internal/logging"
	"github.com/donayy/inka/internal/metrics"
	"github.com/donayy/inka/internal/recommend"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("catalog_path", cfg.Catalog.Path).
		Int("port", cfg.Server.Port).
		Msg("Starting Inka")

	table, err := dataset.Load(cfg.Catalog.Path, dataset.Options{
		PosterBaseURL: cfg.Catalog.PosterBaseURL,
	})
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}
	metrics.RecordCatalogLoad(len(table.Movies), table.Skipped)
	logging.Info().
		Int("rows", len(table.Movies)).
		Int("skipped", table.Skipped).
		Msg("Catalog loaded")

	engine := recommend.New(table, cfg.Recommend)

	router := api.NewRouter(api.NewHandler(engine), api.RouterConfig{
		CORSOrigins:     cfg.Server.CORSOrigins,
		RateLimitReqs:   cfg.Server.RateLimitReqs,
		RateLimitWindow: cfg.Server.RateLimitWindow,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Application stopped gracefully")
}
