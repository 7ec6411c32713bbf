// SPDX-License-Identifier: MIT

package corr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matrix is an immutable symmetric table of pairwise Pearson correlations.
//
// regions keeps the column order of the source table and doubles as the
// node-index mapping downstream; index is its inverse. data is row-major with
// len(data) == n*n.
type Matrix struct {
	regions []string
	index   map[string]int
	n       int
	data    []float64
}

// New validates table and computes the correlation of every ordered pair of
// its columns.
//
// Steps:
//  1. Validate the table shape (ErrMalformedInput on failure; no work done).
//  2. Center every column once.
//  3. Fill the upper triangle with bounded parallelism and mirror it.
//
// Complexity: O(N²·T) time, O(N·T + N²) memory for N regions and T rows.
func New(table *DeltaTable, opts ...Option) (*Matrix, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	n := len(table.Regions)
	o.log.Info().
		Int("regions", n).
		Int("rows", table.Rows()).
		Int("workers", o.workers).
		Msg("calculating correlation matrix")

	m := &Matrix{
		regions: append([]string(nil), table.Regions...),
		index:   make(map[string]int, n),
		n:       n,
		data:    make([]float64, n*n),
	}
	for i, r := range m.regions {
		m.index[r] = i
	}

	if err := fillPairwise(centerColumns(table.Columns), m.data, o.workers); err != nil {
		return nil, fmt.Errorf("corr: pairwise kernel: %w", err)
	}

	if undefined := m.Degenerate(); len(undefined) > 0 {
		o.log.Warn().Strs("regions", undefined).Msg("zero-variance delta series; correlations undefined")
	}

	return m, nil
}

// Len returns the number of regions.
func (m *Matrix) Len() int { return m.n }

// Regions returns a copy of the region order.
func (m *Matrix) Regions() []string {
	return append([]string(nil), m.regions...)
}

// Index returns the position of region, or a *LookupError.
func (m *Matrix) Index(region string) (int, error) {
	i, ok := m.index[region]
	if !ok {
		return 0, &LookupError{Region: region}
	}

	return i, nil
}

// Get returns the correlation between regions a and b.
// Get(a, b) == Get(b, a); the result is NaN when either series is constant.
func (m *Matrix) Get(a, b string) (float64, error) {
	i, err := m.Index(a)
	if err != nil {
		return 0, err
	}
	j, err := m.Index(b)
	if err != nil {
		return 0, err
	}

	return m.data[i*m.n+j], nil
}

// At returns the correlation at node indices (i, j).
// Indices outside [0, Len()) are a programming error and panic.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("corr: At(%d,%d) out of range for %d regions", i, j, m.n))
	}

	return m.data[i*m.n+j]
}

// Degenerate lists regions whose self-correlation is undefined, which happens
// exactly when their delta series has zero variance.
func (m *Matrix) Degenerate() []string {
	var out []string
	for i := 0; i < m.n; i++ {
		if math.IsNaN(m.data[i*m.n+i]) {
			out = append(out, m.regions[i])
		}
	}

	return out
}

// String renders the matrix with a region header, one row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(m.regions, "\t"))
	b.WriteByte('\n')
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(strconv.FormatFloat(m.data[i*m.n+j], 'g', 6, 64))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
