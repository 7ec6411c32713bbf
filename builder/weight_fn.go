// SPDX-License-Identifier: MIT

package builder

import "math"

// WeightFn maps a correlation coefficient to an edge distance.
// It must be a pure function of c.
type WeightFn func(c float64) float64

// InverseSquare returns c⁻².
//
//	c == ±1  → 1
//	c == ±½  → 4
//	c == 0   → +Inf
//	c is NaN → NaN
//
// For 0 < |c1| < |c2| ≤ 1 it holds that InverseSquare(c1) > InverseSquare(c2).
func InverseSquare(c float64) float64 {
	return math.Pow(c, -2)
}
