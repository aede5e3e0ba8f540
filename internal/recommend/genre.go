// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

import (
	"time"

	"github.com/donayy/inka/internal/dataset"
	"github.com/donayy/inka/internal/metrics"
)

// ByGenre resolves the genre query fuzzily against the known genre tokens
// and ranks the matching subset by weighted rating using the subset
// percentile (default 0.90).
//
// Returns ErrNoGenres or ErrGenreNotFound as resolution sentinels.
func (e *Engine) ByGenre(genre string) ([]Recommendation, error) {
	start := time.Now()

	resolved, err := e.ResolveGenre(genre)
	if err != nil {
		metrics.RecordRecommendation("genre", start, 0, true)
		return nil, err
	}

	candidates := []*dataset.Movie{}
	for i := range e.table.Movies {
		if e.table.Movies[i].HasGenre(resolved) {
			candidates = append(candidates, &e.table.Movies[i])
		}
	}

	results := rankByWeightedRating(candidates, e.cfg.SubsetPercentile, e.cfg.TopN)
	metrics.RecordRecommendation("genre", start, len(results), false)
	return results, nil
}
