// Package avomst builds the minimum spanning tree of regional avocado price
// correlations.
//
// Cities whose weekly price changes move together end up adjacent in the
// tree; weakly related cities are joined only when nothing better spans them.
//
// 🚀 Pipeline
//
//	etl/          avocado CSV -> filtered, pivoted, first-differenced delta table
//	corr/         Pearson correlation matrix over the delta columns (parallel rows)
//	builder/      complete graph with weight = corr^-2
//	core/         thread-safe undirected graph with index-addressed nodes
//	prim_kruskal/ deterministic MST (Kruskal by default, Prim optional)
//	export/       `<node_count> <edge_count>` text artifact and console dump
//	pipeline/     stage driver with stage-tagged errors
//	config/       YAML config with defaults and validation
//	logger/       zerolog setup
//	cmd/avomst/   the CLI
//
// Undefined correlations (a region with constant prices) and zero
// correlations never enter the tree. If the remaining edges cannot span every
// region the run fails with prim_kruskal.ErrDisconnected and names the
// regions left out; no partial tree is written.
//
// Quick start:
//
//	avomst run --input data/avocado.csv --output data/mst.txt
//
// A 3-region run writes:
//
//	3 2
//	Albany Boston 1
//	Albany Chicago 5
package avomst
