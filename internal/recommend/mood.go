// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

import (
	"sort"
	"strings"
	"time"

	"github.com/donayy/inka/internal/metrics"
)

// ByMood maps the mood to its configured genre set (case-insensitive
// lookup) and ranks the rows carrying any of those genres by popularity
// descending. topN <= 0 uses the configured default.
//
// Returns ErrMoodNotFound for a mood with no mapping.
func (e *Engine) ByMood(mood string, topN int) ([]Recommendation, error) {
	start := time.Now()

	genres, ok := e.moodGenres(mood)
	if !ok {
		metrics.RecordRecommendation("mood", start, 0, true)
		return nil, ErrMoodNotFound
	}

	type scored struct {
		row        int
		popularity float64
	}
	candidates := []scored{}
	for i := range e.table.Movies {
		m := &e.table.Movies[i]
		if !hasAnyGenre(m.Genres, genres) {
			continue
		}
		candidates = append(candidates, scored{row: i, popularity: m.PopularityOrZero()})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].popularity > candidates[j].popularity
	})

	n := e.topN(topN)
	results := make([]Recommendation, 0, n)
	seen := make(map[string]struct{}, n)
	for _, c := range candidates {
		m := &e.table.Movies[c.row]
		if _, dup := seen[m.Title]; dup {
			continue
		}
		seen[m.Title] = struct{}{}
		results = append(results, newRecommendation(m, c.popularity))
		if len(results) == n {
			break
		}
	}

	metrics.RecordRecommendation("mood", start, len(results), false)
	return results, nil
}

// moodGenres looks up the genre set for a mood, case-insensitively.
func (e *Engine) moodGenres(mood string) (map[string]struct{}, bool) {
	key := strings.ToLower(strings.TrimSpace(mood))
	for name, genres := range e.cfg.Moods {
		if strings.ToLower(name) == key {
			set := make(map[string]struct{}, len(genres))
			for _, g := range genres {
				set[strings.ToLower(g)] = struct{}{}
			}
			return set, true
		}
	}
	return nil, false
}

func hasAnyGenre(genres []string, wanted map[string]struct{}) bool {
	for _, g := range genres {
		if _, ok := wanted[g]; ok {
			return true
		}
	}
	return false
}
