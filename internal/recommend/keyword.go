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

// ByKeyword searches free text against each movie's overview and keyword
// fields. A row is a candidate when the query appears as a case-insensitive
// substring in either field, or when its TF-IDF cosine similarity against
// the combined text exceeds zero. Candidates are ranked by similarity
// descending; substring-only matches (similarity 0) rank after scored ones,
// ordered by popularity descending. topN <= 0 uses the configured default.
//
// An unmatched query yields an empty result, not an error.
func (e *Engine) ByKeyword(text string, topN int) []Recommendation {
	start := time.Now()

	query := strings.TrimSpace(text)
	if query == "" {
		metrics.RecordRecommendation("keyword", start, 0, false)
		return []Recommendation{}
	}
	lowered := strings.ToLower(query)

	type scored struct {
		row        int
		similarity float64
		popularity float64
	}
	candidates := []scored{}
	for i := range e.table.Movies {
		m := &e.table.Movies[i]
		sim := e.corpus.score(query, i)
		if sim <= 0 && !textContains(m.Overview, m.Keywords, lowered) {
			continue
		}
		candidates = append(candidates, scored{
			row:        i,
			similarity: sim,
			popularity: m.PopularityOrZero(),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].similarity != candidates[j].similarity {
			return candidates[i].similarity > candidates[j].similarity
		}
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
		results = append(results, newRecommendation(m, c.similarity))
		if len(results) == n {
			break
		}
	}

	metrics.RecordRecommendation("keyword", start, len(results), false)
	return results
}

// textContains reports whether the lowercased query occurs in the overview
// or any keyword token.
func textContains(overview string, keywords []string, lowered string) bool {
	if strings.Contains(strings.ToLower(overview), lowered) {
		return true
	}
	for _, kw := range keywords {
		if strings.Contains(kw, lowered) {
			return true
		}
	}
	return false
}
