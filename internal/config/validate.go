// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package config

import (
	"github.com/donayy/inka/internal/validation"
)

// validateStruct runs tag-based validation over the config tree.
func validateStruct(c *Config) error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	return nil
}
