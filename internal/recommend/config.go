// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

// Config contains all tunable parameters of the engine. Zero values are
// replaced with defaults by withDefaults, so an empty Config is usable.
type Config struct {
	// CatalogPercentile is the vote-count quantile a movie must reach to
	// qualify for whole-catalog ranking.
	CatalogPercentile float64 `json:"catalog_percentile" koanf:"catalog_percentile"`

	// SubsetPercentile is the qualification quantile for filtered subsets
	// (genre, director, cast). Lower than CatalogPercentile because
	// filtered candidate pools are smaller.
	SubsetPercentile float64 `json:"subset_percentile" koanf:"subset_percentile"`

	// TopN is the default result count.
	TopN int `json:"top_n" koanf:"top_n"`

	// DirectorCutoff is the minimum name similarity in [0,1] for a
	// director close-match to be accepted.
	DirectorCutoff float64 `json:"director_cutoff" koanf:"director_cutoff"`

	// GenreWeight and KeywordWeight blend the genre and keyword Jaccard
	// similarities in the content matcher. They are normalized at use,
	// so 0.7/0.3 and 7/3 are equivalent.
	GenreWeight   float64 `json:"genre_weight" koanf:"genre_weight"`
	KeywordWeight float64 `json:"keyword_weight" koanf:"keyword_weight"`

	// Moods maps a mood name to the genre tokens that satisfy it.
	// Lookup is case-insensitive. Nil enables the built-in mapping.
	Moods map[string][]string `json:"moods" koanf:"moods"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		CatalogPercentile: 0.95,
		SubsetPercentile:  0.90,
		TopN:              10,
		DirectorCutoff:    0.75,
		GenreWeight:       0.7,
		KeywordWeight:     0.3,
		Moods:             defaultMoods(),
	}
}

// defaultMoods is the built-in mood-to-genre mapping.
func defaultMoods() map[string][]string {
	return map[string][]string{
		"happy":      {"comedy", "family", "music"},
		"sad":        {"drama", "history", "war"},
		"excited":    {"action", "adventure", "thriller"},
		"scared":     {"horror", "mystery", "thriller"},
		"curious":    {"documentary", "mystery", "science fiction", "sci-fi"},
		"romantic":   {"romance", "drama"},
		"nostalgic":  {"animation", "family", "fantasy"},
		"thoughtful": {"drama", "science fiction", "sci-fi"},
	}
}

// withDefaults fills zero-valued fields with defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.CatalogPercentile <= 0 || c.CatalogPercentile > 1 {
		c.CatalogPercentile = def.CatalogPercentile
	}
	if c.SubsetPercentile <= 0 || c.SubsetPercentile > 1 {
		c.SubsetPercentile = def.SubsetPercentile
	}
	if c.TopN <= 0 {
		c.TopN = def.TopN
	}
	if c.DirectorCutoff <= 0 || c.DirectorCutoff > 1 {
		c.DirectorCutoff = def.DirectorCutoff
	}
	if c.GenreWeight <= 0 && c.KeywordWeight <= 0 {
		c.GenreWeight = def.GenreWeight
		c.KeywordWeight = def.KeywordWeight
	}
	if c.Moods == nil {
		c.Moods = def.Moods
	}
	return c
}
