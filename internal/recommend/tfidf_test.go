// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package recommend

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "lowercases and splits on punctuation",
			in:   "A thief, who steals Corporate secrets!",
			want: []string{"thief", "who", "steals", "corporate", "secrets"},
		},
		{
			name: "drops single character fragments",
			in:   "a b cd",
			want: []string{"cd"},
		},
		{
			name: "keeps hyphenated tokens",
			in:   "sci-fi classic",
			want: []string{"sci-fi", "classic"},
		},
		{
			name: "empty input",
			in:   "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextCorpusScore(t *testing.T) {
	corpus := newTextCorpus([]string{
		"dreams within dreams heist",
		"space travel wormhole",
		"",
	})

	t.Run("matching term scores positive", func(t *testing.T) {
		if got := corpus.score("dreams", 0); got <= 0 {
			t.Errorf("score(dreams, 0) = %v, want > 0", got)
		}
	})

	t.Run("unrelated term scores zero", func(t *testing.T) {
		if got := corpus.score("dreams", 1); got != 0 {
			t.Errorf("score(dreams, 1) = %v, want 0", got)
		}
	})

	t.Run("empty document scores zero", func(t *testing.T) {
		if got := corpus.score("dreams", 2); got != 0 {
			t.Errorf("score against empty doc = %v, want 0", got)
		}
	})

	t.Run("empty query scores zero", func(t *testing.T) {
		if got := corpus.score("", 0); got != 0 {
			t.Errorf("score(empty) = %v, want 0", got)
		}
	})

	t.Run("out of range index scores zero", func(t *testing.T) {
		if got := corpus.score("dreams", 99); got != 0 {
			t.Errorf("score out of range = %v, want 0", got)
		}
	})

	t.Run("score bounded by one", func(t *testing.T) {
		got := corpus.score("dreams within dreams heist", 0)
		if got <= 0 || got > 1.0000001 {
			t.Errorf("self-similar query score = %v, want in (0,1]", got)
		}
	})

	t.Run("repeated term outranks single mention", func(t *testing.T) {
		c := newTextCorpus([]string{
			"dragon dragon dragon",
			"dragon and other beasts",
		})
		if c.score("dragon", 0) <= c.score("dragon", 1) {
			t.Errorf("score(heavy doc) = %v not greater than score(light doc) = %v",
				c.score("dragon", 0), c.score("dragon", 1))
		}
	})
}
