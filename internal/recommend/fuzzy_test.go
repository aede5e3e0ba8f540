// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

import (
	"reflect"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"acton", "action", 1},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMatchRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "identical", a: "action", b: "action", want: 100},
		{name: "case insensitive", a: "Action", b: "ACTION", want: 100},
		{name: "one edit", a: "acton", b: "action", want: 90},
		{name: "empty query", a: "", b: "action", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("matchRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBestMatch(t *testing.T) {
	genres := []string{"action", "adventure", "animation"}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "typo resolves", query: "acton", want: "action"},
		{name: "exact match", query: "animation", want: "animation"},
		{name: "partial prefix", query: "adv", want: "adventure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score := bestMatch(tt.query, genres)
			if got != tt.want {
				t.Errorf("bestMatch(%q) = %q (score %d), want %q", tt.query, got, score, tt.want)
			}
		})
	}
}

func TestBestMatchPartialGenreToken(t *testing.T) {
	// "sci" must prefer "sci-fi" over longer unrelated tokens.
	got, _ := bestMatch("sci", []string{"action", "comedy", "crime", "sci-fi"})
	if got != "sci-fi" {
		t.Errorf("bestMatch(sci) = %q, want sci-fi", got)
	}
}

func TestSimilarity(t *testing.T) {
	// Short query against a full name: 1 - 12/17 ~= 0.29.
	got := similarity("nolan", "Christopher Nolan")
	if got > 0.35 || got < 0.25 {
		t.Errorf("similarity(nolan, Christopher Nolan) = %v, want ~0.29", got)
	}

	if got := similarity("same", "same"); got != 1 {
		t.Errorf("similarity of identical strings = %v, want 1", got)
	}
	if got := similarity("", "anything"); got != 0 {
		t.Errorf("similarity with empty string = %v, want 0", got)
	}
}

func TestCloseMatches(t *testing.T) {
	directors := []string{"Christopher Nolan", "Christopher Guest", "Ridley Scott"}

	tests := []struct {
		name   string
		query  string
		cutoff float64
		want   []string
	}{
		{
			name:   "near exact clears cutoff",
			query:  "Christoper Nolan", // missing h
			cutoff: 0.75,
			want:   []string{"Christopher Nolan"},
		},
		{
			name:   "short substring fails cutoff",
			query:  "nolan",
			cutoff: 0.75,
			want:   []string{},
		},
		{
			name:   "low cutoff returns ranked candidates",
			query:  "Christopher N",
			cutoff: 0.5,
			want:   []string{"Christopher Nolan", "Christopher Guest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := closeMatches(tt.query, directors, tt.cutoff)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("closeMatches(%q, cutoff=%v) = %v, want %v", tt.query, tt.cutoff, got, tt.want)
			}
		})
	}
}
