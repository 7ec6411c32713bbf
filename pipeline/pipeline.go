// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/avomst/builder"
	"github.com/katalvlaran/avomst/config"
	"github.com/katalvlaran/avomst/core"
	"github.com/katalvlaran/avomst/corr"
	"github.com/katalvlaran/avomst/etl"
	"github.com/katalvlaran/avomst/export"
	"github.com/katalvlaran/avomst/prim_kruskal"
)

// Pipeline runs correlation, graph and mst over a delta table.
type Pipeline struct {
	log     zerolog.Logger
	workers int
	method  string
	root    string
}

// Result is the outcome of a successful run.
type Result struct {
	// Regions in node-index order.
	Regions []string

	// Tree holds the N-1 spanning edges in acceptance order.
	Tree []core.Edge

	TotalWeight float64

	// Undefined lists the edges dropped for an undefined weight.
	Undefined []*builder.UndefinedWeightError
}

// New returns a Pipeline with opts applied.
func New(opts ...Option) *Pipeline {
	p := defaultPipeline()
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run computes the minimum spanning tree of the correlation graph of table.
func (p *Pipeline) Run(table *corr.DeltaTable) (*Result, error) {
	p.log.Info().Msg("computing correlation matrix")
	m, err := corr.New(table, corr.WithWorkers(p.workers), corr.WithLogger(p.log))
	if err != nil {
		return nil, fail(StageCorrelation, err)
	}

	p.log.Info().Msg("building graph")
	g, undefined, err := builder.Build(m, builder.WithLogger(p.log))
	if err != nil {
		return nil, fail(StageGraph, err)
	}

	root := p.root
	if root == "" && g.VertexCount() > 0 {
		root = g.Vertices()[0]
	}
	p.log.Info().Str("method", p.method).Msg("finding mst")
	opts := prim_kruskal.DefaultOptions(
		prim_kruskal.WithMethod(p.method),
		prim_kruskal.WithRoot(root),
		prim_kruskal.WithIsolated(m.Degenerate()...),
	)
	tree, total, err := prim_kruskal.Compute(g, opts)
	if err != nil {
		return nil, fail(StageMST, err)
	}
	p.log.Info().Msgf("mst has %d nodes and %d edges", g.VertexCount(), len(tree))

	return &Result{
		Regions:     g.Vertices(),
		Tree:        tree,
		TotalWeight: total,
		Undefined:   undefined,
	}, nil
}

// RunFile loads cfg.Input, runs the core and writes the tree to cfg.Output.
// When cfg enables it, the tree is also described on stdout.
func RunFile(cfg config.Config, stdout io.Writer, log zerolog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	eo := cfg.ETLOptions()
	eo.Log = &log
	table, err := etl.LoadFile(cfg.Input, eo)
	if err != nil {
		return nil, fail(StageETL, err)
	}

	p := New(
		WithLogger(log),
		WithWorkers(cfg.Workers),
		WithMethod(cfg.Method),
		WithRoot(cfg.Root),
	)
	res, err := p.Run(&table.DeltaTable)
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.Output).Msg("writing mst")
	if err := export.WriteFile(cfg.Output, res.Regions, res.Tree, export.Layout(cfg.Layout)); err != nil {
		return nil, fail(StageExport, err)
	}
	if cfg.DescribeEnabled() && stdout != nil {
		if err := export.Describe(stdout, res.Regions, res.Tree); err != nil {
			return nil, fail(StageExport, fmt.Errorf("describe: %w", err))
		}
	}

	return res, nil
}
