// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

import (
	"sort"
	"strings"
)

// levenshtein computes the edit distance between two strings using a
// single-row dynamic programming table over runes.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	curr := make([]int, len(rb)+1)

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(curr[j-1]+1, minInt(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// matchRatio scores the edit similarity of two strings in [0,100],
// case-insensitively. 100 means identical, 0 means nothing in common.
func matchRatio(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	total := len([]rune(a)) + len([]rune(b))
	dist := levenshtein(a, b)
	return (total - dist) * 100 / total
}

// similarity scores two strings in [0,1] as 1 - distance/maxLen,
// case-insensitively. Used for cutoff-gated close matching where short
// queries against long names legitimately score low.
func similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

// bestMatch returns the candidate with the highest matchRatio against
// query, together with its score. Ties keep the earliest candidate.
func bestMatch(query string, candidates []string) (string, int) {
	best := ""
	bestScore := -1
	for _, cand := range candidates {
		if score := matchRatio(query, cand); score > bestScore {
			best = cand
			bestScore = score
		}
	}
	return best, bestScore
}

// closeMatches returns the candidates whose similarity to query clears
// cutoff, ranked by similarity descending. Ties keep candidate order.
func closeMatches(query string, candidates []string, cutoff float64) []string {
	type scored struct {
		value string
		score float64
	}
	matched := []scored{}
	for _, cand := range candidates {
		if score := similarity(query, cand); score >= cutoff {
			matched = append(matched, scored{value: cand, score: score})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	out := make([]string, len(matched))
	for i, m := range matched {
		out[i] = m.value
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
