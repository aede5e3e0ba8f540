// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

// Package config provides layered configuration loading using Koanf v2.
// Precedence: environment variables > YAML config file > built-in defaults.
package config

import (
	"fmt"
	"time"

	"github.com/donayy/inka/internal/recommend"
)

// Config is the root configuration for the service.
type Config struct {
	Catalog   CatalogConfig    `koanf:"catalog" json:"catalog"`
	Server    ServerConfig     `koanf:"server" json:"server"`
	Recommend recommend.Config `koanf:"recommend" json:"recommend"`
	Logging   LoggingConfig    `koanf:"logging" json:"logging"`
}

// CatalogConfig controls where the movie dataset is read from.
type CatalogConfig struct {
	// Path is the CSV file holding the movie catalog.
	Path string `koanf:"path" json:"path" validate:"required"`

	// PosterBaseURL is prepended to relative poster paths in the dataset.
	PosterBaseURL string `koanf:"poster_base_url" json:"poster_base_url"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host    string        `koanf:"host" json:"host"`
	Port    int           `koanf:"port" json:"port" validate:"min=1,max=65535"`
	Timeout time.Duration `koanf:"timeout" json:"timeout"`

	// RateLimitReqs requests per RateLimitWindow per client IP. Zero disables.
	RateLimitReqs   int           `koanf:"rate_limit_reqs" json:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window" json:"rate_limit_window"`

	CORSOrigins []string `koanf:"cors_origins" json:"cors_origins"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `koanf:"level" json:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Format string `koanf:"format" json:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller" json:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:          "movies.csv",
			PosterBaseURL: "https://image.tmdb.org/t/p/w500",
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8600,
			Timeout:         30 * time.Second,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Recommend: recommend.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for values that would fail at runtime.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}

	r := &c.Recommend
	if r.CatalogPercentile <= 0 || r.CatalogPercentile > 1 {
		return fmt.Errorf("recommend.catalog_percentile must be in (0, 1], got %v", r.CatalogPercentile)
	}
	if r.SubsetPercentile <= 0 || r.SubsetPercentile > 1 {
		return fmt.Errorf("recommend.subset_percentile must be in (0, 1], got %v", r.SubsetPercentile)
	}
	if r.DirectorCutoff < 0 || r.DirectorCutoff > 1 {
		return fmt.Errorf("recommend.director_cutoff must be in [0, 1], got %v", r.DirectorCutoff)
	}
	if r.GenreWeight < 0 || r.KeywordWeight < 0 {
		return fmt.Errorf("recommend similarity weights must be non-negative")
	}
	if r.TopN <= 0 {
		return fmt.Errorf("recommend.top_n must be positive, got %d", r.TopN)
	}
	return nil
}
