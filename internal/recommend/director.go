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

// ByDirector resolves the director name via cutoff-gated close matching
// and ranks that director's films by weighted rating using the subset
// percentile. When several directors clear the cutoff the best match is
// used; ResolveDirector exposes the full ranked candidate list for
// disambiguation display.
//
// Returns ErrDirectorNotFound when no candidate clears the cutoff.
func (e *Engine) ByDirector(director string) ([]Recommendation, error) {
	start := time.Now()

	matched, err := e.ResolveDirector(director)
	if err != nil {
		metrics.RecordRecommendation("director", start, 0, true)
		return nil, err
	}
	resolved := matched[0]

	candidates := []*dataset.Movie{}
	for i := range e.table.Movies {
		if e.table.Movies[i].Director == resolved {
			candidates = append(candidates, &e.table.Movies[i])
		}
	}

	results := rankByWeightedRating(candidates, e.cfg.SubsetPercentile, e.cfg.TopN)
	metrics.RecordRecommendation("director", start, len(results), false)
	return results, nil
}
