package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/Pyramidx/pkg"
	"github.com/lintang-b-s/Pyramidx/pkg/engine/solver"
	"github.com/lintang-b-s/Pyramidx/pkg/generator"
	"github.com/lintang-b-s/Pyramidx/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var defaultPath = []int32{215, 192, 269, 836, 805, 728, 433, 528, 863, 632, 931, 778, 413, 310, 253}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, zap.NewNop())
	require.NoError(t, err)
	return e
}

func TestEngineSolveDefault(t *testing.T) {
	for _, strategy := range []string{pkg.STRATEGY_BOTTOM_UP, pkg.STRATEGY_MEMOIZED} {
		t.Run(strategy, func(t *testing.T) {
			e := newTestEngine(t, Config{Strategy: strategy, CacheSize: 8})

			res, err := e.SolveDefault(context.Background())
			require.NoError(t, err)
			assert.True(t, res.Feasible)
			assert.Equal(t, int64(8186), res.MaxSum)
			assert.Equal(t, defaultPath, res.Path)
			assert.Equal(t, 15, res.Rows)
			assert.Equal(t, 120, res.Cells)
			assert.Equal(t, strategy, res.Strategy)
		})
	}
}

func TestEngineInfeasibleIsNotAnError(t *testing.T) {
	e := newTestEngine(t, Config{})

	res, err := e.Solve(context.Background(), parser.NewStringLineReader("2\n4 6\n8 10 12\n"))
	require.NoError(t, err)
	assert.False(t, res.Feasible)
	assert.Zero(t, res.MaxSum)
	assert.Empty(t, res.Path)
}

func TestEngineParseErrors(t *testing.T) {
	e := newTestEngine(t, Config{})

	_, err := e.SolveText(context.Background(), "", "")
	assert.ErrorIs(t, err, parser.ErrEmptyInput)

	_, err = e.SolveText(context.Background(), "1\n2 3 4\n", "")
	assert.ErrorIs(t, err, parser.ErrMalformedRow)

	_, err = e.SolveText(context.Background(), "1\n2 3\n", "greedy")
	assert.ErrorIs(t, err, solver.ErrUnknownStrategy)
}

func TestEngineCache(t *testing.T) {
	e := newTestEngine(t, Config{CacheSize: 4})

	first, err := e.SolveText(context.Background(), "1\n2 3\n4 5 6\n", "")
	require.NoError(t, err)
	second, err := e.SolveText(context.Background(), "\n1\n\n2   3\n4 5\t6", "")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.True(t, second.Cached, "normalized text hits the cache")
	assert.Equal(t, first.Evaluations, second.Evaluations)
	assert.Equal(t, first.Elapsed, second.Elapsed, "a hit keeps the time of the original search")

	memo, err := e.SolveText(context.Background(), "1\n2 3\n4 5 6\n", pkg.STRATEGY_MEMOIZED)
	require.NoError(t, err)
	assert.False(t, memo.Cached, "strategy is part of the key")
	assert.Equal(t, first.MaxSum, memo.MaxSum)
	assert.Equal(t, []int32{1, 2, 5}, memo.Path)
}

func TestEngineCacheHitsAreCopies(t *testing.T) {
	e := newTestEngine(t, Config{CacheSize: 4})

	first, err := e.SolveText(context.Background(), "1\n2 3\n4 5 6\n", "")
	require.NoError(t, err)
	first.Path[0] = 99
	first.MaxSum = -1

	second, err := e.SolveText(context.Background(), "1\n2 3\n4 5 6\n", "")
	require.NoError(t, err)
	require.True(t, second.Cached)
	assert.Equal(t, []int32{1, 2, 5}, second.Path)
	assert.Equal(t, int64(8), second.MaxSum)

	second.Path[1] = 77
	third, err := e.SolveText(context.Background(), "1\n2 3\n4 5 6\n", "")
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 5}, third.Path)
}

func TestEngineWithoutCache(t *testing.T) {
	e := newTestEngine(t, Config{})

	first, err := e.SolveText(context.Background(), "1\n2 3\n", "")
	require.NoError(t, err)
	second, err := e.SolveText(context.Background(), "1\n2 3\n", "")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first.MaxSum, second.MaxSum)
}

func TestEngineSolveFile(t *testing.T) {
	rows, err := generator.AlternatingTriangle(40, 99, 7)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "triangle.txt.bz2")
	require.NoError(t, generator.WriteFile(path, rows))

	e := newTestEngine(t, Config{})
	res, err := e.SolveFile(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Len(t, res.Path, 40)

	_, err = e.SolveFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngineMemoizedTooTall(t *testing.T) {
	e := newTestEngine(t, Config{Strategy: pkg.STRATEGY_MEMOIZED, MaxRecursionDepth: 2})

	_, err := e.SolveText(context.Background(), "1\n2 3\n4 5 6\n", "")
	assert.ErrorIs(t, err, solver.ErrTriangleTooTall)
}

func TestNewEngineUnknownStrategy(t *testing.T) {
	_, err := NewEngine(Config{Strategy: "greedy"}, zap.NewNop())
	assert.ErrorIs(t, err, solver.ErrUnknownStrategy)
}
