// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/avomst/config"
	"github.com/katalvlaran/avomst/core"
	"github.com/katalvlaran/avomst/corr"
	"github.com/katalvlaran/avomst/etl"
	"github.com/katalvlaran/avomst/pipeline"
	"github.com/katalvlaran/avomst/prim_kruskal"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// threeRegions: A and B move in lockstep (corr 1), C is weakly tied to both.
func threeRegions() *corr.DeltaTable {
	return &corr.DeltaTable{
		Regions: []string{"A", "B", "C"},
		Columns: [][]float64{
			{0, 1, 2, 3},
			{0, 2, 4, 6},
			{0, 1, 0, 1},
		},
	}
}

func stageOf(t *testing.T, err error) pipeline.Stage {
	t.Helper()
	var se *pipeline.StageError
	require.True(t, errors.As(err, &se), "want *StageError, got %T: %v", err, err)

	return se.Stage
}

func TestRun_Kruskal(t *testing.T) {
	res, err := pipeline.New(pipeline.WithWorkers(2)).Run(threeRegions())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, res.Regions)
	require.Len(t, res.Tree, 2)
	assert.Equal(t, 0, res.Tree[0].From)
	assert.Equal(t, 1, res.Tree[0].To)
	assert.Equal(t, 1.0, res.Tree[0].Weight)
	assert.InDelta(t, 6.0, res.TotalWeight, 1e-9)
	assert.Empty(t, res.Undefined)
}

func TestRun_PrimMatchesKruskal(t *testing.T) {
	k, err := pipeline.New().Run(threeRegions())
	require.NoError(t, err)

	for _, root := range []string{"", "A", "C"} {
		p, err := pipeline.New(
			pipeline.WithMethod(prim_kruskal.MethodPrim),
			pipeline.WithRoot(root),
		).Run(threeRegions())
		require.NoError(t, err, "root %q", root)
		assert.Len(t, p.Tree, 2)
		assert.InDelta(t, k.TotalWeight, p.TotalWeight, 1e-9, "root %q", root)
	}
}

func TestRun_ConstantRegionDisconnects(t *testing.T) {
	tbl := threeRegions()
	tbl.Columns[2] = []float64{0, 0, 0, 0}

	_, err := pipeline.New().Run(tbl)
	require.Error(t, err)
	assert.Equal(t, pipeline.StageMST, stageOf(t, err))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	var de *prim_kruskal.DisconnectedError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, []string{"C"}, de.Unreached)
	assert.Equal(t, 2, de.Undefined)
	assert.Contains(t, err.Error(), "mst stage")
}

func TestRun_ConstantFirstRegion(t *testing.T) {
	flat := []float64{0, 0, 0, 0}
	cases := []struct {
		name string
		tbl  *corr.DeltaTable
		want []string
	}{
		{
			name: "pair",
			tbl: &corr.DeltaTable{
				Regions: []string{"Flat", "Albany"},
				Columns: [][]float64{flat, {0, 1, 2, 3}},
			},
			want: []string{"Flat"},
		},
		{
			name: "two flat",
			tbl: &corr.DeltaTable{
				Regions: []string{"Aflat", "Boise", "Cflat", "Dallas"},
				Columns: [][]float64{flat, {0, 1, 2, 3}, flat, {0, 2, 1, 3}},
			},
			want: []string{"Aflat", "Cflat"},
		},
	}

	for _, tc := range cases {
		for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
			_, err := pipeline.New(pipeline.WithMethod(method)).Run(tc.tbl)
			var de *prim_kruskal.DisconnectedError
			require.ErrorAs(t, err, &de, "%s/%s", tc.name, method)
			assert.Equal(t, tc.want, de.Unreached, "%s/%s", tc.name, method)
		}
	}
}

func TestRun_ZeroCorrelationDisconnects(t *testing.T) {
	tbl := &corr.DeltaTable{
		Regions: []string{"A", "B"},
		Columns: [][]float64{
			{1, -1, 1, -1},
			{1, 1, -1, -1},
		},
	}

	_, err := pipeline.New().Run(tbl)
	var de *prim_kruskal.DisconnectedError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Infinite)
	assert.Len(t, de.Unreached, 1)
}

func TestRun_MalformedInput(t *testing.T) {
	tbl := threeRegions()
	tbl.Columns[1] = tbl.Columns[1][:2]

	_, err := pipeline.New().Run(tbl)
	assert.Equal(t, pipeline.StageCorrelation, stageOf(t, err))
	assert.ErrorIs(t, err, corr.ErrMalformedInput)
}

func TestRun_UnknownRoot(t *testing.T) {
	_, err := pipeline.New(
		pipeline.WithMethod(prim_kruskal.MethodPrim),
		pipeline.WithRoot("Z"),
	).Run(threeRegions())
	assert.Equal(t, pipeline.StageMST, stageOf(t, err))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestRun_LogsStages(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	_, err := pipeline.New(pipeline.WithLogger(log)).Run(threeRegions())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "graph has 3 nodes and 3 edges")
	assert.Contains(t, out, "mst has 3 nodes and 2 edges")
}

// avocadoCSV holds four weeks of prices whose deltas match threeRegions,
// plus organic and aggregate rows that the default filters drop.
const avocadoCSV = `,Date,AveragePrice,Total Volume,type,year,region
0,2015-01-04,1.00,10,conventional,2015,Albany
1,2015-01-04,1.00,10,conventional,2015,Boston
2,2015-01-04,1.00,10,conventional,2015,Chicago
3,2015-01-11,2.00,10,conventional,2015,Albany
4,2015-01-11,3.00,10,conventional,2015,Boston
5,2015-01-11,2.00,10,conventional,2015,Chicago
6,2015-01-18,4.00,10,conventional,2015,Albany
7,2015-01-18,7.00,10,conventional,2015,Boston
8,2015-01-18,2.00,10,conventional,2015,Chicago
9,2015-01-25,7.00,10,conventional,2015,Albany
10,2015-01-25,13.00,10,conventional,2015,Boston
11,2015-01-25,3.00,10,conventional,2015,Chicago
12,2015-01-25,9.00,10,organic,2015,Albany
13,2015-01-25,1.50,10,conventional,2015,TotalUS
`

func fileConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "avocado.csv")
	require.NoError(t, os.WriteFile(in, []byte(avocadoCSV), 0o600))

	cfg := config.Default()
	cfg.Input = in
	cfg.Output = filepath.Join(dir, "out", "mst.txt")

	return cfg
}

func TestRunFile(t *testing.T) {
	cfg := fileConfig(t)
	var stdout bytes.Buffer

	res, err := pipeline.RunFile(cfg, &stdout, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"Albany", "Boston", "Chicago"}, res.Regions)

	b, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "3 2", lines[0])
	assert.Equal(t, "Albany Boston 1", lines[1])
	assert.Contains(t, lines[2], " Chicago ")

	assert.True(t, strings.HasPrefix(stdout.String(), "Albany\nBoston\nChicago\nAlbany, Boston, 1\n"), stdout.String())
}

func TestRunFile_DescribeDisabled(t *testing.T) {
	cfg := fileConfig(t)
	off := false
	cfg.Describe = &off
	cfg.Layout = "indexed"

	var stdout bytes.Buffer
	_, err := pipeline.RunFile(cfg, &stdout, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	b, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "3 2\nAlbany\nBoston\nChicago\n0 1 1\n"), string(b))
}

func TestRunFile_StageErrors(t *testing.T) {
	t.Run("etl", func(t *testing.T) {
		cfg := fileConfig(t)
		cfg.Input = filepath.Join(t.TempDir(), "missing.csv")
		_, err := pipeline.RunFile(cfg, nil, zerolog.Nop())
		assert.Equal(t, pipeline.StageETL, stageOf(t, err))
	})

	t.Run("no data", func(t *testing.T) {
		cfg := fileConfig(t)
		cfg.AvocadoType = "exotic"
		_, err := pipeline.RunFile(cfg, nil, zerolog.Nop())
		assert.Equal(t, pipeline.StageETL, stageOf(t, err))
		assert.ErrorIs(t, err, etl.ErrNoData)
	})

	t.Run("export", func(t *testing.T) {
		cfg := fileConfig(t)
		// A regular file where the output directory should be.
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))
		cfg.Output = filepath.Join(blocker, "mst.txt")
		_, err := pipeline.RunFile(cfg, nil, zerolog.Nop())
		assert.Equal(t, pipeline.StageExport, stageOf(t, err))
		_, statErr := os.Stat(cfg.Output)
		assert.Error(t, statErr)
	})

	t.Run("config", func(t *testing.T) {
		cfg := fileConfig(t)
		cfg.Method = "boruvka"
		_, err := pipeline.RunFile(cfg, nil, zerolog.Nop())
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("constant region", func(t *testing.T) {
		cfg := fileConfig(t)
		flat := strings.NewReplacer(
			"2,2015-01-04,1.00,", "2,2015-01-04,5.00,",
			"5,2015-01-11,2.00,", "5,2015-01-11,5.00,",
			"8,2015-01-18,2.00,", "8,2015-01-18,5.00,",
			"11,2015-01-25,3.00,", "11,2015-01-25,5.00,",
		).Replace(avocadoCSV)
		require.NoError(t, os.WriteFile(cfg.Input, []byte(flat), 0o600))

		_, err := pipeline.RunFile(cfg, nil, zerolog.Nop())
		assert.Equal(t, pipeline.StageMST, stageOf(t, err))
		var de *prim_kruskal.DisconnectedError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, []string{"Chicago"}, de.Unreached)
		_, statErr := os.Stat(cfg.Output)
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})
}
