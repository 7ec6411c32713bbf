// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/avomst/core"
)

// Kruskal computes the MST of an undirected, weighted graph over its finite
// edges.
//
// Steps:
//  1. Validate: graph != nil.
//  2. |V| == 0 → ErrDisconnected; |V| == 1 → trivial empty MST.
//  3. Collect candidates: drop self-loops, NaN and ±Inf weights.
//  4. Stable sort by (weight, min endpoint, max endpoint).
//  5. Scan with a disjoint set; accept edges joining two components.
//  6. Stop at |V|−1 edges; fewer → *DisconnectedError.
//
// Only WithIsolated is read from opts.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Trivial sizes.
	numVerts := graph.VertexCount()
	if numVerts == 0 {
		return nil, 0, ErrDisconnected
	}
	isolated, err := isolatedSet(graph, DefaultOptions(opts...).Isolated)
	if err != nil {
		return nil, 0, err
	}
	if numVerts == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Finite candidates only; NaN cannot be ordered and Inf must never span.
	edges, undefined, infinite := candidates(graph.Edges())

	// 4. Total order, independent of insertion order.
	sort.SliceStable(edges, func(i, j int) bool {
		return edgeLess(edges[i], edges[j])
	})

	// 5. Greedy scan.
	dsu := newDisjointSet(numVerts)
	var (
		mst         = make([]core.Edge, 0, numVerts-1)
		totalWeight float64
	)
	for _, e := range edges {
		if !dsu.union(e.From, e.To) {
			// Same component: the edge would close a cycle.
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == numVerts-1 {
			break
		}
	}

	// 6. A forest is never returned as a tree.
	if len(mst) < numVerts-1 {
		return nil, 0, disconnected(graph, edges, isolated, undefined, infinite)
	}

	return mst, totalWeight, nil
}
