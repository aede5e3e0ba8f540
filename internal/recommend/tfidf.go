// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern splits free text into word tokens.
var tokenPattern = regexp.MustCompile(`[^a-z0-9_-]+`)

// textCorpus holds precomputed TF-IDF data over the per-movie combined
// text field (overview plus keywords). Built once at Engine construction;
// read-only afterwards.
type textCorpus struct {
	termFreqs []map[string]float64 // per-document normalized term frequency
	docFreqs  map[string]int       // number of documents containing each term
	docNorms  []float64            // per-document tf-idf vector norm
	docCount  int
}

// tokenize lower-cases text and splits it into tokens, dropping
// single-character fragments.
func tokenize(text string) []string {
	parts := tokenPattern.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) > 1 {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// newTextCorpus builds the corpus from one combined text per movie row.
func newTextCorpus(documents []string) *textCorpus {
	c := &textCorpus{
		termFreqs: make([]map[string]float64, len(documents)),
		docFreqs:  make(map[string]int),
		docNorms:  make([]float64, len(documents)),
		docCount:  len(documents),
	}

	for i, doc := range documents {
		tokens := tokenize(doc)
		tf := make(map[string]float64, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
		}
		if len(tokens) > 0 {
			for tok := range tf {
				tf[tok] /= float64(len(tokens))
			}
		}
		c.termFreqs[i] = tf
		for tok := range tf {
			c.docFreqs[tok]++
		}
	}

	// Vector norms need the full document frequencies, so a second pass.
	for i, tf := range c.termFreqs {
		var sum float64
		for tok, f := range tf {
			w := f * c.idf(tok)
			sum += w * w
		}
		c.docNorms[i] = math.Sqrt(sum)
	}

	return c
}

// idf returns the smoothed inverse document frequency of a term.
func (c *textCorpus) idf(term string) float64 {
	df := c.docFreqs[term]
	if df == 0 {
		return 0
	}
	return math.Log(float64(c.docCount)/float64(df)) + 1
}

// score computes the cosine similarity between the query and document i.
// Returns 0 for unknown terms, empty queries, or out-of-range indexes.
func (c *textCorpus) score(query string, i int) float64 {
	if i < 0 || i >= c.docCount || c.docNorms[i] == 0 {
		return 0
	}

	tokens := tokenize(query)
	if len(tokens) == 0 {
		return 0
	}
	queryTF := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		queryTF[tok]++
	}

	var dot, queryNormSq float64
	for tok, qf := range queryTF {
		w := (qf / float64(len(tokens))) * c.idf(tok)
		queryNormSq += w * w
		if df, ok := c.termFreqs[i][tok]; ok {
			dot += w * df * c.idf(tok)
		}
	}
	if dot == 0 || queryNormSq == 0 {
		return 0
	}
	return dot / (math.Sqrt(queryNormSq) * c.docNorms[i])
}
