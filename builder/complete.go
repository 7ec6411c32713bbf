// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/avomst/core"
)

const methodComplete = "Complete"

// Correlations is the read-only view of a correlation table the builder needs.
// *corr.Matrix satisfies it.
type Correlations interface {
	// Regions returns the region identifiers in node order.
	Regions() []string
	// At returns the correlation between nodes i and j.
	At(i, j int) float64
}

// Builder maps correlation tables to complete weighted graphs.
// The zero value is not usable; call New.
type Builder struct {
	weightFn WeightFn
	log      zerolog.Logger
}

// New returns a Builder using InverseSquare unless overridden.
func New(opts ...Option) *Builder {
	b := &Builder{weightFn: InverseSquare, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build returns the complete graph over m's regions together with one
// *UndefinedWeightError per edge whose weight came out NaN.
//
// The returned error is non-nil only if the graph itself cannot be
// constructed (duplicate or empty region identifiers); poisoned edges are not
// a build failure.
func (b *Builder) Build(m Correlations) (*core.Graph, []*UndefinedWeightError, error) {
	regions := m.Regions()
	b.log.Info().Int("regions", len(regions)).Msg("making graph")

	g, err := core.NewGraph(regions)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	var undefined []*UndefinedWeightError
	n := len(regions)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := m.At(i, j)
			w := b.weightFn(c)

			if _, err := g.AddEdge(i, j, w); err != nil {
				return nil, nil, fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", methodComplete, regions[i], regions[j], w, err)
			}

			if math.IsNaN(w) {
				uw := &UndefinedWeightError{From: regions[i], To: regions[j], Correlation: c}
				undefined = append(undefined, uw)
				b.log.Warn().Err(uw).Str("from", regions[i]).Str("to", regions[j]).Msg("poisoned edge")
			}
		}
	}

	b.log.Info().
		Int("nodes", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Int("undefined", len(undefined)).
		Msgf("graph has %d nodes and %d edges", g.VertexCount(), g.EdgeCount())

	return g, undefined, nil
}

// Build is a convenience for New(opts...).Build(m).
func Build(m Correlations, opts ...Option) (*core.Graph, []*UndefinedWeightError, error) {
	return New(opts...).Build(m)
}
