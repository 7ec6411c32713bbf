// SPDX-License-Identifier: MIT

// Package export renders a minimum spanning tree as text.
//
// LayoutRegions (default) writes
//
//	<node_count> <edge_count>
//	<regionU> <regionV> <weight>
//	...
//
// LayoutIndexed writes the header, every region on its own line in node order,
// then `<u> <v> <weight>` lines with node indices.
//
// Weights are printed in the shortest decimal form that round-trips, never in
// exponent notation.
package export
