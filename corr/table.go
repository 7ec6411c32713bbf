// SPDX-License-Identifier: MIT

package corr

import "math"

// DeltaTable is the wide price-delta table handed over by the ETL stage.
//
// Regions[k] names Columns[k]; every column holds one delta per observation
// date, in the same date order. The first observation of each series is 0.
type DeltaTable struct {
	// Regions lists the unique region identifiers in column order.
	Regions []string

	// Columns holds one delta series per region.
	Columns [][]float64
}

// Rows returns the number of observations per column (0 for an empty table).
func (t *DeltaTable) Rows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}

	return len(t.Columns[0])
}

// Validate checks the shape contract:
//   - at least one region, and exactly one column per region;
//   - region names are non-empty and unique;
//   - all columns share one non-zero length;
//   - every cell is finite.
//
// All violations wrap ErrMalformedInput.
func (t *DeltaTable) Validate() error {
	if t == nil {
		return malformedf("nil table")
	}
	if len(t.Regions) == 0 {
		return malformedf("no regions")
	}
	if len(t.Regions) != len(t.Columns) {
		return malformedf("%d regions but %d columns", len(t.Regions), len(t.Columns))
	}

	seen := make(map[string]int, len(t.Regions))
	for k, r := range t.Regions {
		if r == "" {
			return malformedf("empty region name at column %d", k)
		}
		if prev, dup := seen[r]; dup {
			return malformedf("duplicate region %q at columns %d and %d", r, prev, k)
		}
		seen[r] = k
	}

	rows := len(t.Columns[0])
	if rows == 0 {
		return malformedf("no observations")
	}
	for k, col := range t.Columns {
		if len(col) != rows {
			return malformedf("column %q has %d rows, want %d", t.Regions[k], len(col), rows)
		}
		for i, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return malformedf("column %q row %d is not finite", t.Regions[k], i)
			}
		}
	}

	return nil
}
