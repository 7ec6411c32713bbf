// SPDX-License-Identifier: MIT

package etl

import "errors"

var (
	// ErrMissingColumn indicates the CSV header lacks a required column.
	ErrMissingColumn = errors.New("etl: missing required column")

	// ErrBadRecord indicates a record that cannot be parsed or duplicates a
	// (date, region) observation.
	ErrBadRecord = errors.New("etl: bad record")

	// ErrIncompleteCoverage indicates a region lacks a price on some date.
	ErrIncompleteCoverage = errors.New("etl: incomplete region coverage")

	// ErrNoData indicates that no record survived filtering.
	ErrNoData = errors.New("etl: no data after filtering")
)
