// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donayy/inka/internal/middleware"
)

// RouterConfig carries the HTTP-level knobs the router needs.
type RouterConfig struct {
	// CORSOrigins lists allowed origins; empty allows none.
	CORSOrigins []string

	// RateLimitReqs requests per RateLimitWindow per client IP.
	// Zero disables rate limiting.
	RateLimitReqs   int
	RateLimitWindow time.Duration
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it composes with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// NewRouter wires all HTTP routes using the Chi router.
func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimitReqs > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimitReqs, cfg.RateLimitWindow))
		}
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/health", handler.Health)
		r.Get("/genres", handler.Genres)

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/popular", handler.Popular)
			r.Get("/genre", handler.Genre)
			r.Get("/director", handler.Director)
			r.Get("/cast", handler.Cast)
			r.Get("/keyword", handler.Keyword)
			r.Get("/similar", handler.Similar)
			r.Get("/mood", handler.Mood)
		})
	})

	// Observability
	r.Handle("/metrics", promhttp.Handler())

	return r
}
