// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/avomst/core"
)

// Prim computes the MST by growing outwards from root using a min-heap.
// It applies the same finite-edge policy and ordering as Kruskal, so both
// return trees of equal total weight.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil.
//   - ErrDisconnected       : |V| == 0, or some node cannot be reached from root
//     over finite edges (as *DisconnectedError, reported as Kruskal would).
//   - ErrEmptyRoot          : root == "" on a non-empty graph.
//   - core.ErrVertexNotFound: root is not a node.
//
// Only WithIsolated is read from opts; root always comes from the argument.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string, opts ...Option) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	start, err := graph.IndexOf(root)
	if err != nil {
		return nil, 0, err
	}
	isolated, err := isolatedSet(graph, DefaultOptions(opts...).Isolated)
	if err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	all := graph.Edges()
	keep, undefined, infinite := candidates(all)

	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64
	pq := &edgePQ{}

	// push enqueues the finite edges from v to unvisited neighbours.
	push := func(v int) error {
		nb, err := graph.Neighbors(v)
		if err != nil {
			return err
		}
		next, _, _ := candidates(nb)
		for _, e := range next {
			if !visited[e.To] {
				heap.Push(pq, e)
			}
		}
		return nil
	}

	visited[start] = true
	if err := push(start); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		// Record the catalog edge so orientation matches Kruskal's output.
		mst = append(mst, all[e.ID])
		totalWeight += e.Weight
		if err := push(e.To); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, disconnected(graph, keep, isolated, undefined, infinite)
	}

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min-heap of core.Edge ordered by edgeLess.
type edgePQ []core.Edge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return edgeLess(pq[i], pq[j]) }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a core.Edge.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element after heap adjustment.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
