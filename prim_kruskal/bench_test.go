package prim_kruskal_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/avomst/core"
	"github.com/katalvlaran/avomst/prim_kruskal"
)

// completeGraph builds K_n with seeded random weights, nodes R0..R(n-1).
func completeGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("R%d", i)
	}
	g, err := core.NewGraph(ids)
	if err != nil {
		b.Fatal(err)
	}
	for _, e := range randomComplete(n, int64(n)) {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

// BenchmarkKruskal measures K_n for dataset-sized and larger region counts.
func BenchmarkKruskal(b *testing.B) {
	for _, n := range []int{45, 200} {
		g := completeGraph(b, n) // pre-build graph once
		b.Run(fmt.Sprintf("K%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _, _ = prim_kruskal.Kruskal(g)
			}
		})
	}
}

// BenchmarkPrim measures the same graphs rooted at R0.
func BenchmarkPrim(b *testing.B) {
	for _, n := range []int{45, 200} {
		g := completeGraph(b, n)
		b.Run(fmt.Sprintf("K%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _, _ = prim_kruskal.Prim(g, "R0")
			}
		})
	}
}
