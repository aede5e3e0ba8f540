// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

// Package recommend implements the ranking and filtering engine over the
// loaded movie catalog.
//
// # Recommenders
//
//   - Popular: whole-catalog ranking by Bayesian weighted rating
//   - ByGenre / ByDirector / ByCast: filtered subsets ranked by weighted rating
//   - ByKeyword: free-text search over overview and keyword fields (substring
//     plus TF-IDF cosine similarity)
//   - Similar: content similarity via weighted Jaccard over genre and keyword sets
//   - ByMood: static mood-to-genre mapping ranked by popularity
//
// Every recommender is a pure function of (catalog, query parameters): the
// Engine precomputes its derived state (distinct genre and director sets,
// title index, TF-IDF corpus) once at construction and never mutates it, so
// a single Engine is safe for concurrent callers.
//
// # Failure Semantics
//
// Resolution failures (unknown genre, director, title or mood) are sentinel
// errors, not exceptions: callers branch on ErrGenreNotFound and friends.
// An empty result slice with a nil error means the query resolved but no
// row qualified.
package recommend
