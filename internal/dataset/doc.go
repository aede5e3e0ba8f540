// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

// Package dataset loads and normalizes the movie catalog snapshot.
//
// The catalog is a CSV export of TMDB-style movie metadata. It is loaded
// exactly once per process and treated as immutable afterwards: every
// normalization step (token lower-casing, year derivation, poster URL
// construction) happens at load time so the resulting Table can be shared
// across concurrent readers without locking.
//
// # Error Model
//
//   - Structurally malformed rows (wrong column count) are skipped and
//     counted, never fatal. This mirrors lenient CSV ingestion where a
//     handful of bad export lines must not take down the catalog.
//   - Unparseable field values (vote counts, dates) degrade to nil fields
//     on an otherwise valid row.
//   - A missing required column (title, genres) is a *SchemaError: the
//     load fails as a whole and callers must treat the catalog as
//     unavailable.
package dataset
