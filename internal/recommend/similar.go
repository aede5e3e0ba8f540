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

// Similar recommends movies whose content resembles the queried title.
// The query is matched case-insensitively against Title and OriginalTitle;
// the similarity between the query movie and every other row is a weighted
// Jaccard blend over the normalized genre and keyword sets:
//
//	score = wG*J(genres) + wK*J(keywords)
//
// with wG/wK from Config (default 0.7/0.3, normalized at use). The queried
// title itself is excluded. topN <= 0 uses the configured default.
//
// Returns ErrTitleNotFound when the title is not in the catalog.
func (e *Engine) Similar(title string, topN int) ([]Recommendation, error) {
	start := time.Now()

	key := strings.ToLower(strings.TrimSpace(title))
	queryRow, ok := e.titleIndex[key]
	if !ok {
		metrics.RecordRecommendation("similar", start, 0, true)
		return nil, ErrTitleNotFound
	}
	query := &e.table.Movies[queryRow]

	wG, wK := e.cfg.GenreWeight, e.cfg.KeywordWeight
	if total := wG + wK; total > 0 {
		wG /= total
		wK /= total
	}

	queryGenres := toSet(query.Genres)
	queryKeywords := toSet(query.Keywords)

	type scored struct {
		row   int
		score float64
	}
	candidates := []scored{}
	for i := range e.table.Movies {
		m := &e.table.Movies[i]
		if i == queryRow || strings.EqualFold(m.Title, query.Title) {
			continue
		}
		score := wG*jaccard(queryGenres, toSet(m.Genres)) + wK*jaccard(queryKeywords, toSet(m.Keywords))
		if score > 0 {
			candidates = append(candidates, scored{row: i, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
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
		results = append(results, newRecommendation(m, c.score))
		if len(results) == n {
			break
		}
	}

	metrics.RecordRecommendation("similar", start, len(results), false)
	return results, nil
}

// jaccard computes set intersection over union. J(empty, empty) is defined
// as 0 to avoid division by zero.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for s := range a {
		if _, ok := b[s]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
