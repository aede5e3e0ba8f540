// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

import (
	"math"
	"sort"

	"github.com/donayy/inka/internal/dataset"
)

// rankByWeightedRating ranks a candidate subset by the IMDB/TMDB-style
// Bayesian weighted rating:
//
//	wr = (v/(v+m))*R + (m/(v+m))*C
//
// where v is the movie's vote count, R its mean rating, C the mean rating
// over the candidate subset, and m the percentile-th quantile of vote
// counts. The blend pulls low-vote movies toward the subset mean so a
// handful of perfect votes cannot outrank well-established titles.
//
// candidates holds pointers into the immutable catalog in source order,
// which the stable sort preserves for equal scores. Returns at most topN
// rows, de-duplicated by title (first, highest-wr occurrence wins).
// An empty subset, an undefined C, or a quantile no row reaches all yield
// an empty result, never an error.
func rankByWeightedRating(candidates []*dataset.Movie, percentile float64, topN int) []Recommendation {
	if len(candidates) == 0 {
		return []Recommendation{}
	}

	// C: mean rating over rows where it is present.
	var ratingSum float64
	var ratingCount int
	voteCounts := make([]float64, 0, len(candidates))
	for _, m := range candidates {
		if m.VoteAverage != nil {
			ratingSum += *m.VoteAverage
			ratingCount++
		}
		if m.VoteCount != nil {
			voteCounts = append(voteCounts, float64(*m.VoteCount))
		}
	}
	if ratingCount == 0 || len(voteCounts) == 0 {
		return []Recommendation{}
	}
	c := ratingSum / float64(ratingCount)

	// m: qualification threshold from the vote-count distribution.
	m := quantile(voteCounts, percentile)

	type scored struct {
		movie *dataset.Movie
		wr    float64
	}
	qualified := make([]scored, 0, len(candidates))
	for _, movie := range candidates {
		if movie.VoteCount == nil || movie.VoteAverage == nil {
			continue
		}
		v := float64(*movie.VoteCount)
		if v < m {
			continue
		}
		r := *movie.VoteAverage
		wr := (v/(v+m))*r + (m/(v+m))*c
		qualified = append(qualified, scored{movie: movie, wr: wr})
	}
	if len(qualified) == 0 {
		return []Recommendation{}
	}

	// Stable sort keeps source order for equal scores, making results
	// deterministic across calls.
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].wr > qualified[j].wr
	})

	results := make([]Recommendation, 0, topN)
	seen := make(map[string]struct{}, topN)
	for _, s := range qualified {
		if _, dup := seen[s.movie.Title]; dup {
			continue
		}
		seen[s.movie.Title] = struct{}{}
		results = append(results, newRecommendation(s.movie, s.wr))
		if len(results) == topN {
			break
		}
	}
	return results
}

// quantile computes the p-th quantile of values using linear interpolation
// between closest ranks, matching the convention of numpy/pandas default
// quantile. values need not be sorted; p is clamped to [0,1].
func quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
