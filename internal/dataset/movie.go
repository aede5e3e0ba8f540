// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package dataset

import (
	"strings"
	"time"
)

// Movie is one row of the catalog after normalization.
//
// VoteCount, VoteAverage and Popularity are independently nullable;
// a row lacking VoteCount or VoteAverage is excluded from any weighted
// rating computation. Genres and Keywords are never nil, only empty.
type Movie struct {
	// Title is the display title. It is the required row key but is not
	// guaranteed unique across the catalog.
	Title string `json:"title"`

	// OriginalTitle is the title in the original language, if different.
	OriginalTitle string `json:"original_title,omitempty"`

	// OriginalLanguage is the ISO 639-1 language code.
	OriginalLanguage string `json:"original_language,omitempty"`

	// ReleaseDate is the raw release date string from the source.
	ReleaseDate string `json:"release_date,omitempty"`

	// Year is derived from ReleaseDate; nil when the date is unparseable.
	Year *int `json:"year,omitempty"`

	// Genres holds normalized (lower-cased, trimmed) genre tokens.
	Genres []string `json:"genres"`

	// Keywords holds normalized keyword tokens.
	Keywords []string `json:"keywords"`

	// Overview is the free-text synopsis; empty string if absent.
	Overview string `json:"overview,omitempty"`

	// Cast holds the billed cast names in source order.
	Cast []string `json:"cast,omitempty"`

	// Director is the credited director. The catalog carries one director
	// per row; a director may appear on many rows.
	Director string `json:"director,omitempty"`

	// VoteCount is the number of ratings; nil when absent or unparseable.
	VoteCount *int `json:"vote_count,omitempty"`

	// VoteAverage is the mean rating on a 0-10 scale; nil when absent.
	VoteAverage *float64 `json:"vote_average,omitempty"`

	// Popularity is an externally supplied popularity score, unrelated
	// to VoteAverage; nil when absent.
	Popularity *float64 `json:"popularity,omitempty"`

	// PosterURL is the derived artwork URL; nil when the source row has
	// no backdrop path.
	PosterURL *string `json:"poster_url,omitempty"`
}

// PopularityOrZero returns the popularity score, or 0 when absent.
func (m *Movie) PopularityOrZero() float64 {
	if m.Popularity == nil {
		return 0
	}
	return *m.Popularity
}

// HasGenre reports whether the movie carries the given normalized genre token.
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Table is the loaded, normalized catalog.
//
// After Load returns, a Table is immutable: recommenders only read it.
type Table struct {
	// Movies holds the catalog rows in source order.
	Movies []Movie

	// Skipped counts structurally malformed source rows that were dropped.
	Skipped int
}

// Empty reports whether the table holds no rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Movies) == 0
}

// NormalizeTokens splits a comma-joined list field into normalized tokens:
// each token is trimmed and lower-cased, empty tokens are dropped.
// Normalization is idempotent; the result is never nil.
func NormalizeTokens(raw string) []string {
	tokens := []string{}
	for _, part := range strings.Split(raw, ",") {
		tok := strings.ToLower(strings.TrimSpace(part))
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// SplitNames splits a comma-joined name field (cast lists), trimming each
// name but preserving case for display.
func SplitNames(raw string) []string {
	names := []string{}
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// dateLayouts are the release date formats accepted by ParseYear, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006",
}

// ParseYear extracts the release year from a raw date string.
// Returns nil for empty or unparseable dates.
func ParseYear(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			year := ts.Year()
			return &year
		}
	}
	return nil
}
