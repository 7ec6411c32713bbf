// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/avomst/prim_kruskal"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger passed to every stage.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// WithWorkers bounds correlation parallelism. n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// WithMethod selects the MST algorithm (prim_kruskal.MethodKruskal by default).
func WithMethod(m string) Option {
	return func(p *Pipeline) { p.method = m }
}

// WithRoot sets Prim's start region. Empty means the first region.
func WithRoot(root string) Option {
	return func(p *Pipeline) { p.root = root }
}

func defaultPipeline() *Pipeline {
	return &Pipeline{
		log:    zerolog.Nop(),
		method: prim_kruskal.MethodKruskal,
	}
}
