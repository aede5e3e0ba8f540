// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package dataset

import (
	"errors"
	"strings"
	"testing"
)

const sampleCSV = `title,release_date,genres,keywords,overview,cast,directors,numVotes,averageRating,popularity,backdrop_path
Inception,2010-07-16,"Action, Sci-Fi","dream, heist",A thief who steals corporate secrets.,"Leonardo DiCaprio, Elliot Page",Christopher Nolan,30000,8.8,82.5,/inception.jpg
The Room,2003-06-27,Drama,,You are tearing me apart.,"Tommy Wiseau",Tommy Wiseau,5,3.7,12.1,
Broken Row,2001-01-01,Comedy
Untitled,2020-01-01,Drama,,,,,,,,
`

func TestParse(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV), Options{PosterBaseURL: "https://image.tmdb.org/t/p/w500"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got, want := len(table.Movies), 3; got != want {
		t.Fatalf("len(Movies) = %d, want %d", got, want)
	}
	if got, want := table.Skipped, 1; got != want {
		t.Errorf("Skipped = %d, want %d", got, want)
	}

	inception := table.Movies[0]
	if inception.Title != "Inception" {
		t.Errorf("Title = %q, want Inception", inception.Title)
	}
	if got, want := strings.Join(inception.Genres, ","), "action,sci-fi"; got != want {
		t.Errorf("Genres = %q, want %q", got, want)
	}
	if got, want := strings.Join(inception.Keywords, ","), "dream,heist"; got != want {
		t.Errorf("Keywords = %q, want %q", got, want)
	}
	if inception.Year == nil || *inception.Year != 2010 {
		t.Errorf("Year = %v, want 2010", inception.Year)
	}
	if inception.VoteCount == nil || *inception.VoteCount != 30000 {
		t.Errorf("VoteCount = %v, want 30000", inception.VoteCount)
	}
	if inception.VoteAverage == nil || *inception.VoteAverage != 8.8 {
		t.Errorf("VoteAverage = %v, want 8.8", inception.VoteAverage)
	}
	if inception.Director != "Christopher Nolan" {
		t.Errorf("Director = %q, want Christopher Nolan", inception.Director)
	}
	if inception.PosterURL == nil || *inception.PosterURL != "https://image.tmdb.org/t/p/w500/inception.jpg" {
		t.Errorf("PosterURL = %v, want derived URL", inception.PosterURL)
	}
}

func TestParseMissingOptionalFields(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV), Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// "Untitled" has empty keywords, cast, votes and backdrop.
	var untitled *Movie
	for i := range table.Movies {
		if table.Movies[i].Title == "Untitled" {
			untitled = &table.Movies[i]
		}
	}
	if untitled == nil {
		t.Fatal("row Untitled not loaded")
	}

	if untitled.Keywords == nil || len(untitled.Keywords) != 0 {
		t.Errorf("Keywords = %v, want empty non-nil slice", untitled.Keywords)
	}
	if untitled.VoteCount != nil {
		t.Errorf("VoteCount = %v, want nil", untitled.VoteCount)
	}
	if untitled.VoteAverage != nil {
		t.Errorf("VoteAverage = %v, want nil", untitled.VoteAverage)
	}
	if untitled.PosterURL != nil {
		t.Errorf("PosterURL = %v, want nil", untitled.PosterURL)
	}
}

func TestParseMissingGenresColumn(t *testing.T) {
	csv := "title,release_date\nInception,2010-07-16\n"

	table, err := Parse(strings.NewReader(csv), Options{})

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Parse() error = %v, want *SchemaError", err)
	}
	if schemaErr.Column != "genres" {
		t.Errorf("SchemaError.Column = %q, want genres", schemaErr.Column)
	}
	if table == nil || len(table.Movies) != 0 {
		t.Errorf("table = %v, want empty table", table)
	}
}

func TestParseAliasHeaders(t *testing.T) {
	csv := "title,genres,tmdb_vote_count,tmdb_vote_average\nHeat,Crime,5000,8.3\n"

	table, err := Parse(strings.NewReader(csv), Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(table.Movies) != 1 {
		t.Fatalf("len(Movies) = %d, want 1", len(table.Movies))
	}

	heat := table.Movies[0]
	if heat.VoteCount == nil || *heat.VoteCount != 5000 {
		t.Errorf("VoteCount via tmdb alias = %v, want 5000", heat.VoteCount)
	}
	if heat.VoteAverage == nil || *heat.VoteAverage != 8.3 {
		t.Errorf("VoteAverage via tmdb alias = %v, want 8.3", heat.VoteAverage)
	}
}

func TestParseFloatFormattedCounts(t *testing.T) {
	csv := "title,genres,numVotes,averageRating\nHeat,Crime,5000.0,8.3\n"

	table, err := Parse(strings.NewReader(csv), Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := table.Movies[0].VoteCount; got == nil || *got != 5000 {
		t.Errorf("VoteCount = %v, want 5000", got)
	}
}

func TestTableEmpty(t *testing.T) {
	var nilTable *Table
	if !nilTable.Empty() {
		t.Error("nil table should report Empty")
	}
	if !(&Table{}).Empty() {
		t.Error("zero table should report Empty")
	}
	if (&Table{Movies: []Movie{{Title: "x"}}}).Empty() {
		t.Error("populated table should not report Empty")
	}
}
