// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/avomst/core"
)

func newTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]string{"A", "B", "C"})
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 0, 3)
	require.NoError(t, err)

	return g
}

func TestNewGraph_Validation(t *testing.T) {
	_, err := core.NewGraph([]string{"A", ""})
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = core.NewGraph([]string{"A", "B", "A"})
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)

	g, err := core.NewGraph(nil)
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.True(t, g.Complete())
}

func TestAddEdge_Policies(t *testing.T) {
	g := newTriangle(t)

	_, err := g.AddEdge(0, 3, 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge(-1, 0, 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.AddEdge(1, 1, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// Parallel edge in either orientation.
	_, err = g.AddEdge(1, 0, 5)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.Complete())
}

func TestAddEdge_LoopsOption(t *testing.T) {
	g, err := core.NewGraph([]string{"A", "B"}, core.WithLoops())
	require.NoError(t, err)
	_, err = g.AddEdge(0, 0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 1)
	require.NoError(t, err)

	// A loop makes the edge count match K_2 plus one, so not complete.
	assert.False(t, g.Complete())
	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Len(t, nb, 2)
}

func TestAddEdge_KeepsNonFiniteWeights(t *testing.T) {
	g, err := core.NewGraph([]string{"A", "B", "C"})
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, math.NaN())
	_, _ = g.AddEdge(0, 2, math.Inf(1))

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.True(t, math.IsNaN(edges[0].Weight))
	assert.True(t, math.IsInf(edges[1].Weight, 1))

	nan := g.FilterEdges(func(e core.Edge) bool { return math.IsNaN(e.Weight) })
	assert.Len(t, nan, 1)
}

func TestQueries(t *testing.T) {
	g := newTriangle(t)

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	id, err := g.VertexID(2)
	require.NoError(t, err)
	assert.Equal(t, "C", id)
	_, err = g.VertexID(3)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	i, err := g.IndexOf("B")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	_, err = g.IndexOf("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.True(t, g.HasEdge(2, 0))
	assert.True(t, g.HasEdge(0, 2))

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nb, 2)
	for _, e := range nb {
		assert.Equal(t, 0, e.From)
	}
	assert.Equal(t, 1, nb[0].To)
	assert.Equal(t, 2, nb[1].To)

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	lo, hi := nb[1].Endpoints()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 2, hi)
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g := newTriangle(t)
	edges := g.Edges()
	edges[0].Weight = 99
	assert.Equal(t, 1.0, g.Edges()[0].Weight)
}

func TestConcurrentReaders(t *testing.T) {
	g := newTriangle(t)
	var wg sync.WaitGroup
	for k := 0; k < 16; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_, _ = g.Neighbors(1)
			_ = g.Complete()
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, g.EdgeCount())
}
