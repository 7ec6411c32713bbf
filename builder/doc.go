// SPDX-License-Identifier: MIT
// Package: avomst/builder
//
// Package builder turns a pairwise correlation table into the complete
// weighted undirected graph consumed by the MST engine.
//
// Contract:
//   - One node per region, in the table's region order.
//   - One edge per unordered pair {i,j}, i<j, emitted in lexicographic (i,j)
//     order; self-pairs are never materialized even though the diagonal exists.
//   - Edge weight is WeightFn(correlation(i,j)); the default InverseSquare maps
//     c to c⁻², so |c| near 1 is a short distance and c near 0 a long one.
//   - c == 0 yields +Inf, which is a formal edge the MST engine never accepts.
//   - c == NaN yields NaN. The builder keeps such poisoned edges in the graph and
//     reports each one as an *UndefinedWeightError; it never repairs them.
//
// Complexity:
//   - Time O(N²), Space O(N²) for the N·(N−1)/2 edges.
//
// Determinism:
//   - Edge IDs follow the (i,j) emission order, so two builds of one table are
//     identical.
package builder
