// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

import (
	"sort"
	"strings"

	"github.com/donayy/inka/internal/dataset"
	"github.com/donayy/inka/internal/logging"
)

// Engine answers recommendation queries over a loaded catalog.
//
// All derived state (distinct genre and director sets, the title index and
// the TF-IDF corpus) is computed once in New; after that an Engine is
// immutable and safe for concurrent use without locking.
type Engine struct {
	table *dataset.Table
	cfg   Config

	genres     []string       // distinct normalized genre tokens, sorted
	directors  []string       // distinct director names, sorted
	titleIndex map[string]int // lower-cased title / original title -> first row index
	corpus     *textCorpus    // overview+keywords text index, row-aligned
}

// New builds an Engine over table. A nil or empty table is allowed; every
// query then returns an empty result or a not-found sentinel.
func New(table *dataset.Table, cfg Config) *Engine {
	e := &Engine{
		table:      table,
		cfg:        cfg.withDefaults(),
		titleIndex: make(map[string]int),
	}

	if table == nil {
		e.table = &dataset.Table{Movies: []dataset.Movie{}}
	}

	genreSet := make(map[string]struct{})
	directorSet := make(map[string]struct{})
	documents := make([]string, len(e.table.Movies))

	for i := range e.table.Movies {
		m := &e.table.Movies[i]
		for _, g := range m.Genres {
			genreSet[g] = struct{}{}
		}
		if m.Director != "" {
			directorSet[m.Director] = struct{}{}
		}
		if key := strings.ToLower(m.Title); key != "" {
			if _, dup := e.titleIndex[key]; !dup {
				e.titleIndex[key] = i
			}
		}
		if key := strings.ToLower(m.OriginalTitle); key != "" {
			if _, dup := e.titleIndex[key]; !dup {
				e.titleIndex[key] = i
			}
		}
		documents[i] = m.Overview + " " + strings.Join(m.Keywords, " ")
	}

	e.genres = sortedKeys(genreSet)
	e.directors = sortedKeys(directorSet)
	e.corpus = newTextCorpus(documents)

	logging.Debug().
		Int("rows", len(e.table.Movies)).
		Int("genres", len(e.genres)).
		Int("directors", len(e.directors)).
		Msg("Recommendation engine built")

	return e
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Genres returns the distinct normalized genre tokens in the catalog.
func (e *Engine) Genres() []string {
	return e.genres
}

// Size returns the number of catalog rows.
func (e *Engine) Size() int {
	return len(e.table.Movies)
}

// topN resolves a requested result count against the configured default.
func (e *Engine) topN(n int) int {
	if n <= 0 {
		return e.cfg.TopN
	}
	return n
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
