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

// Popular ranks the whole catalog by Bayesian weighted rating using the
// catalog percentile (default 0.95). percentile overrides the configured
// value when in (0,1].
func (e *Engine) Popular(percentile float64) []Recommendation {
	start := time.Now()

	if percentile <= 0 || percentile > 1 {
		percentile = e.cfg.CatalogPercentile
	}

	candidates := make([]*dataset.Movie, len(e.table.Movies))
	for i := range e.table.Movies {
		candidates[i] = &e.table.Movies[i]
	}

	results := rankByWeightedRating(candidates, percentile, e.cfg.TopN)
	metrics.RecordRecommendation("popular", start, len(results), false)
	return results
}
