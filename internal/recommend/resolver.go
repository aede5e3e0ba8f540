// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

import (
	"github.com/donayy/inka/internal/metrics"
)

// ResolveGenre resolves a free-text genre query to the closest known genre
// token by edit-similarity ratio. Genre inputs are short controlled-vocabulary
// tokens, so the single best ratio match tolerates typos ("acton" -> "action")
// and partial names ("sci" -> "sci-fi") without a cutoff.
//
// Returns ErrNoGenres when the catalog has no genre tokens at all.
func (e *Engine) ResolveGenre(query string) (string, error) {
	if len(e.genres) == 0 {
		metrics.RecordResolver("genre", false)
		return "", ErrNoGenres
	}

	match, score := bestMatch(query, e.genres)
	if score <= 0 {
		metrics.RecordResolver("genre", false)
		return "", ErrGenreNotFound
	}

	metrics.RecordResolver("genre", true)
	return match, nil
}

// ResolveDirector resolves a free-text name to the known directors whose
// similarity clears the configured cutoff, ranked best first. Director
// names are long free text with more variation than genre tokens, so a
// cutoff gate avoids false positives; a short query against a full name
// ("nolan" vs "Christopher Nolan") may legitimately fail the cutoff.
//
// Returns ErrDirectorNotFound when no candidate clears the cutoff.
func (e *Engine) ResolveDirector(query string) ([]string, error) {
	matched := closeMatches(query, e.directors, e.cfg.DirectorCutoff)
	if len(matched) == 0 {
		metrics.RecordResolver("director", false)
		return nil, ErrDirectorNotFound
	}

	metrics.RecordResolver("director", true)
	return matched, nil
}
