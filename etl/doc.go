// SPDX-License-Identifier: MIT

// Package etl turns the long-format avocado price CSV into the wide
// price-delta table consumed by package corr.
//
// Steps:
//  1. Read the header and locate Date, AveragePrice, type and region.
//  2. Keep rows of the configured avocado type whose region is not excluded.
//  3. Sort by (date, region) and pivot: one column per region in order of first
//     appearance, one row per date in ascending order.
//  4. Replace each price series by its first difference; the first delta is 0.
//
// Every region must be observed on every date; partial coverage is rejected
// with ErrIncompleteCoverage rather than interpolated.
package etl
