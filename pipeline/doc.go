// SPDX-License-Identifier: MIT

// Package pipeline drives one avomst run end to end:
//
//	etl -> correlation -> graph -> mst -> export
//
// Every stage consumes the previous stage's immutable output. The first failure
// aborts the run and is returned as a *StageError naming the stage; no partial
// tree is ever exported.
//
// Run covers the in-memory core (correlation, graph, mst). RunFile adds the
// file-based ETL and export stages around it, driven by a config.Config.
package pipeline
