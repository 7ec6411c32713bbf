// SPDX-License-Identifier: MIT

package etl

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/avomst/corr"
)

// observation is one filtered row of the long table.
type observation struct {
	date   time.Time
	region string
	price  float64
}

// Table is the wide delta table plus the date axis it was built on.
type Table struct {
	corr.DeltaTable

	// Dates holds the observation dates in row order.
	Dates []time.Time
}

// LoadFile opens path and runs Load on it.
func LoadFile(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("etl: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts)
}

// Load parses the CSV in r, filters it and returns the wide delta table.
func Load(r io.Reader, opts Options) (*Table, error) {
	log := opts.logger()
	log.Info().Msg("parsing and preparing data")

	long, err := readLong(r, opts)
	if err != nil {
		return nil, err
	}
	if len(long) == 0 {
		return nil, ErrNoData
	}
	log.Info().Int("rows", len(long)).Msg("long table ready")

	t, err := pivot(long)
	if err != nil {
		return nil, err
	}
	diff(t.Columns)

	log.Info().
		Int("regions", len(t.Regions)).
		Int("dates", len(t.Dates)).
		Msg("converted and diffed wide table")

	return t, nil
}

// readLong reads, parses and filters the records, then sorts them by (date, region).
func readLong(r io.Reader, opts Options) ([]observation, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
		}
		return nil, fmt.Errorf("etl: read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	idx := make(map[string]int, 4)
	for _, name := range []string{ColumnDate, ColumnPrice, ColumnType, ColumnRegion} {
		i, ok := col[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		idx[name] = i
	}

	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, e := range opts.Exclude {
		exclude[e] = struct{}{}
	}

	var out []observation
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		line, _ := cr.FieldPos(0)

		if opts.Type != "" && rec[idx[ColumnType]] != opts.Type {
			continue
		}
		region := rec[idx[ColumnRegion]]
		if _, skip := exclude[region]; skip {
			continue
		}

		date, err := time.Parse(DateLayout, rec[idx[ColumnDate]])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: date: %v", ErrBadRecord, line, err)
		}
		price, err := strconv.ParseFloat(rec[idx[ColumnPrice]], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: price: %v", ErrBadRecord, line, err)
		}
		out = append(out, observation{date: date, region: region, price: price})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].date.Equal(out[j].date) {
			return out[i].date.Before(out[j].date)
		}
		return out[i].region < out[j].region
	})

	return out, nil
}

// pivot spreads the sorted long table into one price column per region.
// Columns follow the first appearance of each region in long.
func pivot(long []observation) (*Table, error) {
	t := &Table{}
	regionCol := map[string]int{}
	var rows []map[int]float64

	for _, o := range long {
		k, ok := regionCol[o.region]
		if !ok {
			k = len(t.Regions)
			regionCol[o.region] = k
			t.Regions = append(t.Regions, o.region)
		}
		if n := len(t.Dates); n == 0 || !t.Dates[n-1].Equal(o.date) {
			t.Dates = append(t.Dates, o.date)
			rows = append(rows, map[int]float64{})
		}
		row := rows[len(rows)-1]
		if _, dup := row[k]; dup {
			return nil, fmt.Errorf("%w: duplicate observation for %s on %s",
				ErrBadRecord, o.region, o.date.Format(DateLayout))
		}
		row[k] = o.price
	}

	t.Columns = make([][]float64, len(t.Regions))
	for k := range t.Columns {
		t.Columns[k] = make([]float64, len(t.Dates))
	}
	for i, row := range rows {
		for k := range t.Regions {
			p, ok := row[k]
			if !ok {
				return nil, fmt.Errorf("%w: %s has no price on %s",
					ErrIncompleteCoverage, t.Regions[k], t.Dates[i].Format(DateLayout))
			}
			t.Columns[k][i] = p
		}
	}

	return t, nil
}

// diff replaces every column by its first difference in place.
// The first delta, which has no predecessor, is 0.
func diff(columns [][]float64) {
	for _, col := range columns {
		prev := 0.0
		for i, p := range col {
			if i == 0 {
				col[i] = 0
			} else {
				col[i] = p - prev
			}
			prev = p
		}
	}
}
