// SPDX-License-Identifier: MIT

package core

import "fmt"

// AddEdge connects nodes from and to with weight w and returns the edge ID.
//
// Steps:
//  1. Validate both indices (ErrVertexNotFound).
//  2. Reject self-loops unless WithLoops (ErrLoopNotAllowed).
//  3. Reject a second edge on the same unordered pair (ErrMultiEdgeNotAllowed).
//  4. Append to the catalog and to both adjacency lists.
//
// Weight is stored verbatim, NaN included.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, w float64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.ids)
	if from < 0 || from >= n || to < 0 || to >= n {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrVertexNotFound)
	}
	if from == to && !g.allowLoops {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}

	e := Edge{ID: len(g.edges), From: from, To: to, Weight: w}
	lo, hi := e.Endpoints()
	key := pairKey{lo, hi}
	if _, ok := g.pairs[key]; ok {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	g.pairs[key] = struct{}{}
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e.ID)
	if from != to {
		g.adjacency[to] = append(g.adjacency[to], e.ID)
	}

	return e.ID, nil
}

// HasEdge reports whether an edge joins u and v in either direction.
func (g *Graph) HasEdge(u, v int) bool {
	if u > v {
		u, v = v, u
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pairs[pairKey{u, v}]

	return ok
}

// Edges returns a copy of all edges in ID order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge(nil), g.edges...)
}

// Neighbors returns the edges incident to node i, each oriented so that
// From == i, in ID order.
func (g *Graph) Neighbors(i int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.ids) {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrVertexNotFound)
	}
	out := make([]Edge, 0, len(g.adjacency[i]))
	for _, eid := range g.adjacency[i] {
		e := g.edges[eid]
		if e.From != i {
			e.From, e.To = e.To, e.From
		}
		out = append(out, e)
	}

	return out, nil
}

// Vertices returns a copy of the node identifiers in index order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.ids...)
}

// VertexID returns the identifier of node i.
func (g *Graph) VertexID(i int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.ids) {
		return "", fmt.Errorf("VertexID(%d): %w", i, ErrVertexNotFound)
	}

	return g.ids[i], nil
}

// IndexOf returns the index of the node named id.
func (g *Graph) IndexOf(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("IndexOf(%q): %w", id, ErrVertexNotFound)
	}

	return i, nil
}

// VertexCount returns the number of nodes.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Complete reports whether every unordered pair of distinct nodes is joined,
// i.e. the graph has exactly V·(V−1)/2 edges and no loops.
func (g *Graph) Complete() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.ids)
	if len(g.edges) != n*(n-1)/2 {
		return false
	}
	for _, e := range g.edges {
		if e.From == e.To {
			return false
		}
	}

	return true
}

// FilterEdges returns the edges for which keep reports true, in ID order.
func (g *Graph) FilterEdges(keep func(Edge) bool) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, e := range g.edges {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}
