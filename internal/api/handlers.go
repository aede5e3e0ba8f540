// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package api

import (
	"net/http"

	"github.com/donayy/inka/internal/logging"
	"github.com/donayy/inka/internal/recommend"
)

// Handler serves recommendation queries over HTTP.
type Handler struct {
	engine *recommend.Engine
}

// NewHandler creates a Handler backed by the given engine.
func NewHandler(engine *recommend.Engine) *Handler {
	return &Handler{engine: engine}
}

// Health reports service liveness and catalog statistics.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]interface{}{
		"status":       "healthy",
		"catalog_rows": h.engine.Size(),
		"genres":       len(h.engine.Genres()),
	})
}

// Genres lists the distinct normalized genre tokens in the catalog.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	genres := h.engine.Genres()
	rw.SuccessWithMeta(genres, &APIMeta{Count: len(genres)})
}

// Popular returns the top movies across the whole catalog by Bayesian
// weighted rating. Accepts optional percentile and limit overrides.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, ok := parseRankRequest(rw, r)
	if !ok {
		return
	}

	results := clip(h.engine.Popular(req.Percentile), req.Limit)
	rw.SuccessWithMeta(results, &APIMeta{Count: len(results)})
}

// Genre returns genre recommendations. The genre term is fuzzy-matched
// against the catalog's genre set.
func (h *Handler) Genre(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, ok := parseSearchRequest(rw, r, "q")
	if !ok {
		return
	}

	results, err := h.engine.ByGenre(req.Query)
	if err != nil {
		h.writeEngineError(rw, r, err, "no genre matching "+req.Query)
		return
	}
	results = clip(results, req.Limit)
	rw.SuccessWithMeta(results, &APIMeta{Count: len(results)})
}

// Director returns recommendations for a director, resolved by fuzzy
// name matching.
func (h *Handler) Director(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, ok := parseSearchRequest(rw, r, "q")
	if !ok {
		return
	}

	results, err := h.engine.ByDirector(req.Query)
	if err != nil {
		h.writeEngineError(rw, r, err, "no director matching "+req.Query)
		return
	}
	results = clip(results, req.Limit)
	rw.SuccessWithMeta(results, &APIMeta{Count: len(results)})
}

// Cast returns recommendations for movies featuring a cast member.
// Matching is a case-insensitive substring check against billed names.
func (h *Handler) Cast(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, ok := parseSearchRequest(rw, r, "q")
	if !ok {
		return
	}

	results, err := h.engine.ByCast(req.Query)
	if err != nil {
		h.writeEngineError(rw, r, err, "no cast member matching "+req.Query)
		return
	}
	results = clip(results, req.Limit)
	rw.SuccessWithMeta(results, &APIMeta{Count: len(results)})
}

// Keyword returns free-text search results over overviews and keywords.
// An unmatched query is a successful empty result, not an error.
func (h *Handler) Keyword(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, ok := parseSearchRequest(rw, r, "q")
	if !ok {
		return
	}

	results := h.engine.ByKeyword(req.Query, req.Limit)
	rw.SuccessWithMeta(results, &APIMeta{Count: len(results)})
}

// Similar returns content-similar movies for an exact (case-insensitive)
// catalog title.
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, ok := parseSearchRequest(rw, r, "title")
	if !ok {
		return
	}

	results, err := h.engine.Similar(req.Query, req.Limit)
	if err != nil {
		h.writeEngineError(rw, r, err, "no movie titled "+req.Query)
		return
	}
	rw.SuccessWithMeta(results, &APIMeta{Count: len(results)})
}

// Mood returns mood recommendations ranked by popularity.
func (h *Handler) Mood(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, ok := parseSearchRequest(rw, r, "q")
	if !ok {
		return
	}

	results, err := h.engine.ByMood(req.Query, req.Limit)
	if err != nil {
		h.writeEngineError(rw, r, err, "no mood named "+req.Query)
		return
	}
	rw.SuccessWithMeta(results, &APIMeta{Count: len(results)})
}

// writeEngineError maps engine errors onto HTTP responses. Not-found
// sentinels become 404s; anything else is a 500.
func (h *Handler) writeEngineError(rw *ResponseWriter, r *http.Request, err error, message string) {
	if recommend.IsNotFound(err) {
		rw.NotFound(message)
		return
	}
	logging.Ctx(r.Context()).Error().Err(err).Msg("Recommendation query failed")
	rw.InternalError("recommendation query failed")
}

// clip truncates results to limit when limit is positive and smaller
// than the result count.
func clip(results []recommend.Recommendation, limit int) []recommend.Recommendation {
	if limit > 0 && limit < len(results) {
		return results[:limit]
	}
	return results
}
