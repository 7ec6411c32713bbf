package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/avomst/core"
)

// isolatedSet resolves the identifiers in names to a per-node mask.
func isolatedSet(graph *core.Graph, names []string) ([]bool, error) {
	mask := make([]bool, graph.VertexCount())
	for _, id := range names {
		i, err := graph.IndexOf(id)
		if err != nil {
			return nil, fmt.Errorf("isolated: %w", err)
		}
		mask[i] = true
	}

	return mask, nil
}

// disconnected builds the *DisconnectedError for a graph whose finite edges
// keep do not span it. Both algorithms report through here, so the listed
// nodes do not depend on the method or on Prim's root.
//
// Unreached nodes are picked in this order:
//  1. Nodes marked isolated and nodes with no finite incident edge.
//  2. Among the rest, nodes outside the largest finite-edge component.
//
// When step 1 leaves nothing, only the isolated marks are applied; when
// everything is marked, the largest-component rule runs over all nodes.
func disconnected(graph *core.Graph, keep []core.Edge, isolated []bool, undefined, infinite int) error {
	n := graph.VertexCount()
	dsu := newDisjointSet(n)
	touched := make([]bool, n)
	for _, e := range keep {
		dsu.union(e.From, e.To)
		touched[e.From] = true
		touched[e.To] = true
	}

	eligible := make([]bool, n)
	if !fill(eligible, func(i int) bool { return touched[i] && !isolated[i] }) &&
		!fill(eligible, func(i int) bool { return !isolated[i] }) {
		fill(eligible, func(int) bool { return true })
	}

	ids := graph.Vertices()
	unreached := dsu.outsideLargest(eligible)
	names := make([]string, len(unreached))
	for k, i := range unreached {
		names[k] = ids[i]
	}

	return &DisconnectedError{Unreached: names, Undefined: undefined, Infinite: infinite}
}

// fill sets mask[i] = pred(i) and reports whether any entry is true.
func fill(mask []bool, pred func(int) bool) bool {
	set := false
	for i := range mask {
		mask[i] = pred(i)
		set = set || mask[i]
	}

	return set
}
