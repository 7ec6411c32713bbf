// SPDX-License-Identifier: MIT

package corr

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// centered holds a mean-centered copy of every column and the sum of squared
// deviations per column (the unnormalized variance).
type centered struct {
	cols  [][]float64
	sumsq []float64
}

// centerColumns subtracts each column mean and accumulates Σ(x-mean)².
// Complexity: O(N·T) time and space.
func centerColumns(columns [][]float64) centered {
	out := centered{
		cols:  make([][]float64, len(columns)),
		sumsq: make([]float64, len(columns)),
	}

	var k, i int
	var mean, d float64
	for k = 0; k < len(columns); k++ {
		col := columns[k]
		mean = 0
		for i = 0; i < len(col); i++ {
			mean += col[i]
		}
		mean /= float64(len(col))

		xc := make([]float64, len(col))
		for i = 0; i < len(col); i++ {
			d = col[i] - mean
			xc[i] = d
			out.sumsq[k] += d * d
		}
		out.cols[k] = xc
	}

	return out
}

// pearson returns the correlation of columns a and b of c.
//
//   - NaN if either column has zero variance.
//   - Exactly 1 for a == b when the variance is positive.
//   - Otherwise Σ(xa·xb)/√(ssa·ssb), clamped into [-1, 1] to absorb rounding.
func (c centered) pearson(a, b int) float64 {
	ssa, ssb := c.sumsq[a], c.sumsq[b]
	if ssa == 0 || ssb == 0 {
		return math.NaN()
	}
	if a == b {
		return 1
	}

	xa, xb := c.cols[a], c.cols[b]
	var cross float64
	for i := range xa {
		cross += xa[i] * xb[i]
	}

	r := cross / math.Sqrt(ssa*ssb)
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}

	return r
}

// fillPairwise writes pearson(i, j) into data[i*n+j] and data[j*n+i] for all
// j ≥ i. Row i is one errgroup task: it owns row i from the diagonal rightwards
// and column i from the diagonal downwards, so tasks never share a cell.
// workers ≤ 0 leaves the group unbounded.
func fillPairwise(c centered, data []float64, workers int) error {
	n := len(c.cols)

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < n; i++ {
		g.Go(func() error {
			for j := i; j < n; j++ {
				r := c.pearson(i, j)
				data[i*n+j] = r
				data[j*n+i] = r
			}
			return nil
		})
	}

	return g.Wait()
}
