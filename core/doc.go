// SPDX-License-Identifier: MIT

// Package core defines the weighted undirected Graph that connects the
// correlation stage to the MST engine.
//
// Nodes are addressed by position: node i is the i-th identifier passed to
// NewGraph, which keeps the region order of the correlation matrix intact all
// the way to export. Edges carry float64 weights; NaN and ±Inf are accepted so
// that undefined or infinite distances stay visible to the MST engine instead
// of being repaired early.
//
// The graph is simple: parallel edges are always rejected and self-loops are
// rejected unless WithLoops is given. A Graph is guarded by a sync.RWMutex, so
// readers may run concurrently with each other and with construction.
//
// Errors:
//
//	ErrEmptyVertexID        - a node identifier is the empty string.
//	ErrDuplicateVertex      - two nodes share one identifier.
//	ErrVertexNotFound       - an index or identifier does not name a node.
//	ErrLoopNotAllowed       - self-loop while loops are disabled.
//	ErrMultiEdgeNotAllowed  - a second edge between the same pair of nodes.
package core
