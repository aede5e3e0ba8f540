// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

import (
	"errors"

	"github.com/donayy/inka/internal/dataset"
)

// Sentinel errors for query resolution failures. These are normal negative
// results, not structural failures: callers branch on them to render a
// "nothing found" message.
var (
	// ErrNoGenres indicates the catalog carries no genre tokens at all,
	// so genre resolution has nothing to match against.
	ErrNoGenres = errors.New("recommend: no genres available")

	// ErrGenreNotFound indicates the genre query resolved to no known genre.
	ErrGenreNotFound = errors.New("recommend: genre not found")

	// ErrDirectorNotFound indicates no known director cleared the
	// similarity cutoff for the query.
	ErrDirectorNotFound = errors.New("recommend: director not found")

	// ErrCastNotFound indicates no row's cast matched the queried name.
	ErrCastNotFound = errors.New("recommend: cast member not found")

	// ErrTitleNotFound indicates the queried title is not in the catalog.
	ErrTitleNotFound = errors.New("recommend: title not found")

	// ErrMoodNotFound indicates the mood has no genre mapping.
	ErrMoodNotFound = errors.New("recommend: mood not found")
)

// IsNotFound reports whether err is one of the resolution sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoGenres) ||
		errors.Is(err, ErrGenreNotFound) ||
		errors.Is(err, ErrDirectorNotFound) ||
		errors.Is(err, ErrCastNotFound) ||
		errors.Is(err, ErrTitleNotFound) ||
		errors.Is(err, ErrMoodNotFound)
}

// Recommendation is one row of an ordered result table.
type Recommendation struct {
	// Title is the movie title.
	Title string `json:"title"`

	// Year is the release year, when known.
	Year *int `json:"year,omitempty"`

	// Rating is the score that produced this ranking. Its meaning depends
	// on the recommender: weighted rating for Popular/ByGenre/ByDirector/
	// ByCast, similarity in [0,1] for Similar and ByKeyword, raw
	// popularity for ByMood.
	Rating float64 `json:"rating"`

	// PosterURL is the derived artwork URL, when available.
	PosterURL *string `json:"poster_url,omitempty"`

	// Overview is the free-text synopsis pass-through.
	Overview string `json:"overview,omitempty"`
}

// newRecommendation builds a result row from a catalog movie and its score.
func newRecommendation(m *dataset.Movie, score float64) Recommendation {
	return Recommendation{
		Title:     m.Title,
		Year:      m.Year,
		Rating:    score,
		PosterURL: m.PosterURL,
		Overview:  m.Overview,
	}
}
