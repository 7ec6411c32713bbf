package prim_kruskal

import (
	"math"

	"github.com/katalvlaran/avomst/core"
)

// edgeLess orders edges by (weight, min endpoint, max endpoint) ascending.
// Callers must have removed NaN weights.
func edgeLess(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	alo, ahi := a.Endpoints()
	blo, bhi := b.Endpoints()
	if alo != blo {
		return alo < blo
	}

	return ahi < bhi
}

// candidates splits edges into the sortable finite set and counts what was
// dropped. Self-loops are dropped silently.
func candidates(edges []core.Edge) (keep []core.Edge, undefined, infinite int) {
	keep = make([]core.Edge, 0, len(edges))
	for _, e := range edges {
		switch {
		case e.From == e.To:
			continue
		case math.IsNaN(e.Weight):
			undefined++
		case math.IsInf(e.Weight, 0):
			infinite++
		default:
			keep = append(keep, e)
		}
	}

	return keep, undefined, infinite
}
