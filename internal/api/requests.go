// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/donayy/inka/internal/validation"
)

// searchRequest carries the parameters of endpoints that take a search
// term. Limit zero means "use the engine default".
type searchRequest struct {
	Query string `validate:"required"`
	Limit int    `validate:"min=0,max=100"`
}

// rankRequest carries the parameters of /popular, which takes no search
// term but accepts a qualification percentile override.
type rankRequest struct {
	Limit      int     `validate:"min=0,max=100"`
	Percentile float64 `validate:"gte=0,lte=1"`
}

// parseSearchRequest extracts the search term and limit. queryParam names
// the parameter carrying the term ("q" everywhere except /similar, which
// uses "title").
func parseSearchRequest(rw *ResponseWriter, r *http.Request, queryParam string) (*searchRequest, bool) {
	req := &searchRequest{
		Query: strings.TrimSpace(r.URL.Query().Get(queryParam)),
	}

	limit, ok := parseIntParam(rw, r, "limit")
	if !ok {
		return nil, false
	}
	req.Limit = limit

	if verr := validation.ValidateStruct(req); verr != nil {
		rw.ValidationError(verr.Error(), verr.Details())
		return nil, false
	}
	return req, true
}

// parseRankRequest extracts the limit and percentile for /popular.
func parseRankRequest(rw *ResponseWriter, r *http.Request) (*rankRequest, bool) {
	req := &rankRequest{}

	limit, ok := parseIntParam(rw, r, "limit")
	if !ok {
		return nil, false
	}
	req.Limit = limit

	if raw := r.URL.Query().Get("percentile"); raw != "" {
		percentile, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			rw.BadRequest("invalid percentile parameter: " + raw)
			return nil, false
		}
		req.Percentile = percentile
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		rw.ValidationError(verr.Error(), verr.Details())
		return nil, false
	}
	return req, true
}

// parseIntParam parses an optional integer query parameter, writing a 400
// response on malformed input.
func parseIntParam(rw *ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		rw.BadRequest("invalid " + name + " parameter: " + raw)
		return 0, false
	}
	return v, true
}
