// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package dataset

import (
	"reflect"
	"testing"
)

func TestNormalizeTokens(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "splits and lowercases",
			raw:  "Action, Sci-Fi,Adventure",
			want: []string{"action", "sci-fi", "adventure"},
		},
		{
			name: "drops empty tokens",
			raw:  "drama, , ,comedy,",
			want: []string{"drama", "comedy"},
		},
		{
			name: "empty input yields empty slice not nil",
			raw:  "",
			want: []string{},
		},
		{
			name: "whitespace only yields empty slice",
			raw:  " ,  , ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTokens(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTokens(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeTokensIdempotent(t *testing.T) {
	raw := "Action, Sci-Fi , ADVENTURE"
	once := NormalizeTokens(raw)

	// Normalizing an already-normalized sequence must be a no-op.
	twice := NormalizeTokens(joinTokens(once))
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalization not idempotent: first %v, second %v", once, twice)
	}
}

func joinTokens(tokens []string) string {
	out := ""
	for i, tok := range tokens {
		if i > 0 {
			out += ","
		}
		out += tok
	}
	return out
}

func TestSplitNames(t *testing.T) {
	got := SplitNames("Leonardo DiCaprio, Joseph Gordon-Levitt , Elliot Page")
	want := []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Elliot Page"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitNames() = %v, want %v", got, want)
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{name: "iso date", raw: "2010-07-16", want: intPtr(2010)},
		{name: "datetime", raw: "1999-03-31 00:00:00", want: intPtr(1999)},
		{name: "bare year", raw: "1994", want: intPtr(1994)},
		{name: "empty", raw: "", want: nil},
		{name: "garbage", raw: "not-a-date", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseYear(tt.raw)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ParseYear(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("ParseYear(%q) = %d, want %d", tt.raw, *got, *tt.want)
			}
		})
	}
}

func TestMovieHasGenre(t *testing.T) {
	m := Movie{Genres: []string{"action", "sci-fi"}}
	if !m.HasGenre("sci-fi") {
		t.Error("HasGenre(sci-fi) = false, want true")
	}
	if m.HasGenre("drama") {
		t.Error("HasGenre(drama) = true, want false")
	}
}

func intPtr(n int) *int { return &n }
