// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

import (
	"strings"
	"time"

	"github.com/donayy/inka/internal/dataset"
	"github.com/donayy/inka/internal/metrics"
)

// ByCast ranks the films featuring the queried cast member by weighted
// rating using the subset percentile. Matching is case-insensitive
// substring containment against each billed name; short queries can match
// several actors ("an" matches broadly), which is accepted behavior.
//
// Returns ErrCastNotFound when no row's cast matches.
func (e *Engine) ByCast(name string) ([]Recommendation, error) {
	start := time.Now()

	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		metrics.RecordRecommendation("cast", start, 0, true)
		return nil, ErrCastNotFound
	}

	candidates := []*dataset.Movie{}
	for i := range e.table.Movies {
		if castContains(&e.table.Movies[i], query) {
			candidates = append(candidates, &e.table.Movies[i])
		}
	}
	if len(candidates) == 0 {
		metrics.RecordRecommendation("cast", start, 0, true)
		return nil, ErrCastNotFound
	}

	results := rankByWeightedRating(candidates, e.cfg.SubsetPercentile, e.cfg.TopN)
	metrics.RecordRecommendation("cast", start, len(results), false)
	return results, nil
}

// castContains reports whether any billed name contains the lowercased query.
func castContains(m *dataset.Movie, query string) bool {
	for _, member := range m.Cast {
		if strings.Contains(strings.ToLower(member), query) {
			return true
		}
	}
	return false
}
