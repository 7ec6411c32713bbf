// SPDX-License-Identifier: MIT

package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/avomst/core"
)

// Layout selects the file layout.
type Layout string

const (
	// LayoutRegions names edge endpoints by region.
	LayoutRegions Layout = "regions"

	// LayoutIndexed lists regions first and names endpoints by index.
	LayoutIndexed Layout = "indexed"
)

var (
	// ErrUnknownLayout indicates an unsupported Layout.
	ErrUnknownLayout = errors.New("export: unknown layout")

	// ErrEdgeOutOfRange indicates an edge endpoint outside the region list.
	ErrEdgeOutOfRange = errors.New("export: edge endpoint out of range")
)

// Validate reports ErrUnknownLayout for anything but the two layouts.
// The empty layout means LayoutRegions.
func (l Layout) Validate() error {
	switch l {
	case LayoutRegions, LayoutIndexed, "":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLayout, string(l))
	}
}

// FormatWeight renders w as shortest round-trip decimal.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// Write renders regions and tree to w in the given layout.
func Write(w io.Writer, regions []string, tree []core.Edge, layout Layout) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	if err := checkEdges(regions, tree); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(regions), len(tree))

	if layout == LayoutIndexed {
		for _, r := range regions {
			fmt.Fprintln(bw, r)
		}
		for _, e := range tree {
			fmt.Fprintf(bw, "%d %d %s\n", e.From, e.To, FormatWeight(e.Weight))
		}
	} else {
		for _, e := range tree {
			fmt.Fprintf(bw, "%s %s %s\n", regions[e.From], regions[e.To], FormatWeight(e.Weight))
		}
	}

	return bw.Flush()
}

// WriteFile writes the tree to path, creating parent directories.
func WriteFile(path string, regions []string, tree []core.Edge, layout Layout) (err error) {
	if err := layout.Validate(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()

	return Write(f, regions, tree, layout)
}

// Describe prints every region, then one `A, B, w` line per tree edge.
func Describe(w io.Writer, regions []string, tree []core.Edge) error {
	if err := checkEdges(regions, tree); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, r := range regions {
		fmt.Fprintln(bw, r)
	}
	for _, e := range tree {
		fmt.Fprintf(bw, "%s, %s, %s\n", regions[e.From], regions[e.To], FormatWeight(e.Weight))
	}

	return bw.Flush()
}

func checkEdges(regions []string, tree []core.Edge) error {
	n := len(regions)
	for _, e := range tree {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d,%d) with %d regions", ErrEdgeOutOfRange, e.ID, e.From, e.To, n)
		}
	}

	return nil
}
