// SPDX-License-Identifier: MIT

// Package corr computes and stores the dense pairwise Pearson correlation
// structure between regions.
//
// What & Why
//
//   - DeltaTable is the contract an upstream ETL stage must satisfy: an ordered
//     list of unique region names plus one equal-length column of price deltas
//     per region.
//   - Matrix is the immutable N×N correlation table built from a DeltaTable.
//     Cells live in a flat row-major buffer addressed through a stable
//     region→index mapping, so Get is O(1) and independent of pair order.
//
// Numerical policy
//
//   - Correlation is computed over the aligned delta series of every ordered
//     pair (self-pairs included) with a two-pass centered kernel.
//   - A zero-variance series has no defined correlation: every cell involving
//     it, its own diagonal included, is NaN. The NaN is stored as-is and left
//     for downstream stages to handle.
//   - Non-degenerate diagonal cells are exactly 1 and the table is exactly
//     symmetric because every unordered pair is computed once and mirrored.
//
// Errors
//
//   - ErrMalformedInput: ragged columns, duplicate or empty region names, no
//     observations, or a non-finite delta. Detected in New before any work.
//   - ErrUnknownRegion (as *LookupError): Get or Index with a region that is not
//     part of the matrix.
//
// Concurrency
//
//	New fans the O(N²·T) kernel out over a bounded errgroup, one task per
//	matrix row; tasks write disjoint cells. The returned Matrix is read-only
//	and safe for concurrent readers.
package corr
