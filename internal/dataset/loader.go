// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/donayy/inka/internal/logging"
)

// SchemaError indicates a required column is missing from the source.
// The load attempt is unusable as a whole; callers must surface
// "no recommendations available" rather than crash.
type SchemaError struct {
	// Column is the missing required column name.
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset: required column %q missing from source", e.Column)
}

// Options controls catalog loading.
type Options struct {
	// PosterBaseURL is prepended to the source backdrop path to build
	// Movie.PosterURL. Empty disables poster URL derivation.
	PosterBaseURL string
}

// Column aliases: the snapshot exists in two header dialects, the raw
// TMDB export (tmdb_vote_count) and the merged IMDb form (numVotes).
var columnAliases = map[string][]string{
	"title":             {"title"},
	"original_title":    {"original_title"},
	"original_language": {"original_language"},
	"release_date":      {"release_date"},
	"genres":            {"genres"},
	"keywords":          {"keywords"},
	"overview":          {"overview"},
	"cast":              {"cast"},
	"directors":         {"directors", "director"},
	"vote_count":        {"numVotes", "tmdb_vote_count", "vote_count"},
	"vote_average":      {"averageRating", "tmdb_vote_average", "vote_average"},
	"popularity":        {"popularity"},
	"backdrop_path":     {"backdrop_path", "poster_path"},
}

// requiredColumns must be present in the header or the load fails with
// a *SchemaError. Title is the row key; genres gate every genre-driven
// recommender.
var requiredColumns = []string{"title", "genres"}

// Load reads and normalizes the catalog CSV at path.
func Load(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	table, err := Parse(f, opts)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("path", path).
		Int("rows", len(table.Movies)).
		Int("skipped", table.Skipped).
		Msg("Catalog loaded")

	return table, nil
}

// Parse reads and normalizes catalog rows from r.
//
// Structurally malformed rows (wrong field count) are skipped and counted.
// Unparseable numeric or date values degrade to nil fields. A missing
// required column yields a *SchemaError and an empty table.
func Parse(r io.Reader, opts Options) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // field count validated per row below
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return &Table{Movies: []Movie{}}, err
	}

	table := &Table{Movies: []Movie{}}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.Reader reports quoting problems per row; treat the row
			// as malformed and continue.
			if _, ok := err.(*csv.ParseError); ok {
				table.Skipped++
				continue
			}
			return nil, fmt.Errorf("dataset: read row: %w", err)
		}
		if len(record) != len(header) {
			table.Skipped++
			continue
		}

		movie := buildMovie(record, cols, opts)
		if movie.Title == "" {
			table.Skipped++
			continue
		}
		table.Movies = append(table.Movies, movie)
	}

	return table, nil
}

// mapColumns resolves canonical column names to header indexes.
func mapColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cols := make(map[string]int, len(columnAliases))
	for canonical, aliases := range columnAliases {
		for _, alias := range aliases {
			if i, ok := index[strings.ToLower(alias)]; ok {
				cols[canonical] = i
				break
			}
		}
	}

	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, &SchemaError{Column: required}
		}
	}

	return cols, nil
}

// buildMovie normalizes one source record into a Movie.
func buildMovie(record []string, cols map[string]int, opts Options) Movie {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	movie := Movie{
		Title:            field("title"),
		OriginalTitle:    field("original_title"),
		OriginalLanguage: field("original_language"),
		ReleaseDate:      field("release_date"),
		Genres:           NormalizeTokens(field("genres")),
		Keywords:         NormalizeTokens(field("keywords")),
		Overview:         field("overview"),
		Cast:             SplitNames(field("cast")),
		Director:         field("directors"),
	}

	movie.Year = ParseYear(movie.ReleaseDate)
	movie.VoteCount = parseCount(field("vote_count"))
	movie.VoteAverage = parseFloat(field("vote_average"))
	movie.Popularity = parseFloat(field("popularity"))

	if backdrop := field("backdrop_path"); backdrop != "" && opts.PosterBaseURL != "" {
		url := opts.PosterBaseURL + backdrop
		movie.PosterURL = &url
	}

	return movie
}

// parseCount parses a non-negative integer field; nil when absent, negative
// or unparseable. Float-formatted counts ("1290.0") are truncated, matching
// the source export which stores counts as floats.
func parseCount(raw string) *int {
	if raw == "" {
		return nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 {
			return nil
		}
		return &n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f >= 0 {
		n := int(f)
		return &n
	}
	return nil
}

// parseFloat parses a float field; nil when absent or unparseable.
func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
