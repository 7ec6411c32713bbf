// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/avomst/core"
)

// ErrInvalidGraph indicates that the MST algorithms received a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that no spanning tree over finite edges exists.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// DisconnectedError reports why a spanning tree could not be formed.
// It matches ErrDisconnected under errors.Is.
type DisconnectedError struct {
	// Unreached lists the identifiers of nodes outside the spanned component,
	// in node order.
	Unreached []string

	// Undefined counts edges dropped for a NaN weight.
	Undefined int

	// Infinite counts edges dropped for an infinite weight.
	Infinite int
}

// Error implements error.
func (e *DisconnectedError) Error() string {
	return fmt.Sprintf("%v: %d unreached node(s) [%s] (dropped %d undefined and %d infinite edges)",
		ErrDisconnected, len(e.Unreached), strings.Join(e.Unreached, ", "), e.Undefined, e.Infinite)
}

// Unwrap exposes the sentinel.
func (e *DisconnectedError) Unwrap() error { return ErrDisconnected }

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting vertex to use.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string

	// Isolated names nodes known to have no usable edge. They only shape the
	// disconnection report: they are always listed as unreached and never
	// chosen as the spanned component.
	Isolated []string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithIsolated marks nodes that a disconnection report must list as unreached.
// Unknown identifiers fail with core.ErrVertexNotFound.
func WithIsolated(ids ...string) Option {
	return func(opts *MSTOptions) {
		opts.Isolated = append(opts.Isolated, ids...)
	}
}

// DefaultOptions returns MSTOptions for Kruskal.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute runs the algorithm selected by opts.Method.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph, WithIsolated(opts.Isolated...))
	case MethodPrim:
		return Prim(graph, opts.Root, WithIsolated(opts.Isolated...))
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
