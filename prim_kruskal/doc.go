// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an
// undirected, weighted *core.Graph with Kruskal's algorithm (default) or
// Prim's algorithm.
//
// What & Why
//
//   - Given a connected weighted graph G = (V, E), an MST is a subset T ⊆ E of
//     |V|−1 edges that spans V, contains no cycle and has the least total weight.
//   - Over a correlation graph with weights c⁻², the MST keeps the strongest
//     chain of relationships between markets.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//
//   - Strategy: keep the finite edges, sort them, scan in order and accept every
//     edge whose endpoints lie in different union-find components. Stop at |V|−1.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, root string) ([]core.Edge, float64, error)
//
//   - Strategy: grow one tree from root with a min-heap of candidate edges.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Edge Policy
//
//   - NaN weights cannot be totally ordered. They are dropped before sorting and
//     counted as undefined.
//   - ±Inf weights are dropped as well and counted as infinite: an infinite
//     distance never becomes a spanning edge.
//   - Self-loops are ignored.
//   - Dropping edges can only disconnect the graph, never corrupt the order.
//
// Determinism
//
//	Edges are ordered by (weight, min endpoint, max endpoint) ascending, which
//	is a total order on a simple graph. The accepted edge set therefore does
//	not depend on insertion order. Kruskal returns edges in acceptance order.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil.
//   - ErrEmptyRoot: Prim without a root.
//   - core.ErrVertexNotFound: Prim root is not a node.
//   - ErrDisconnected: |V| == 0, or fewer than |V|−1 finite edges connect the
//     nodes. For |V| > 0 the error is a *DisconnectedError naming the unreached
//     nodes; no partial forest is ever returned.
//   - ErrUnknownMethod: Compute with an unsupported method name.
package prim_kruskal
