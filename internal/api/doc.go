// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

// Package api exposes the recommendation engine over HTTP using the Chi
// router. All endpoints return the standardized APIResponse envelope.
//
// Endpoints:
//
//	GET /api/v1/health                       liveness and catalog stats
//	GET /api/v1/genres                       distinct genres in the catalog
//	GET /api/v1/recommendations/popular      top movies by weighted rating
//	GET /api/v1/recommendations/genre        genre recommendations (fuzzy)
//	GET /api/v1/recommendations/director     director recommendations (fuzzy)
//	GET /api/v1/recommendations/cast         cast member recommendations
//	GET /api/v1/recommendations/keyword      free-text search
//	GET /api/v1/recommendations/similar      content similarity by title
//	GET /api/v1/recommendations/mood         mood recommendations
//	GET /metrics                             Prometheus metrics
package api
