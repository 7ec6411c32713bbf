// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a node identifier is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that a node identifier appears twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent node.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two node indices.
type Edge struct {
	// ID is the insertion position of the edge (0-based).
	ID int

	// From and To are node indices as passed to AddEdge.
	From int
	To   int

	// Weight is the distance between the endpoints; may be NaN or +Inf.
	Weight float64
}

// Endpoints returns the node indices ordered as (min, max).
func (e Edge) Endpoints() (lo, hi int) {
	if e.From <= e.To {
		return e.From, e.To
	}

	return e.To, e.From
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// pairKey identifies an unordered node pair.
type pairKey struct{ lo, hi int }

// Graph is an undirected, weighted, simple graph over a fixed node set.
//
// ids holds node identifiers by index and index is its inverse. edges is the
// catalog in insertion order (Edge.ID == position). adjacency[i] lists the IDs
// of edges incident to node i; pairs guards against parallel edges.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	ids       []string
	index     map[string]int
	edges     []Edge
	adjacency [][]int
	pairs     map[pairKey]struct{}
}

// NewGraph creates a graph with one node per identifier, in the given order.
// Complexity: O(V).
func NewGraph(ids []string, opts ...GraphOption) (*Graph, error) {
	g := &Graph{
		ids:       make([]string, len(ids)),
		index:     make(map[string]int, len(ids)),
		adjacency: make([][]int, len(ids)),
		pairs:     make(map[pairKey]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	for i, id := range ids {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		if _, dup := g.index[id]; dup {
			return nil, ErrDuplicateVertex
		}
		g.ids[i] = id
		g.index[id] = i
	}

	return g, nil
}
