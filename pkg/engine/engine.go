package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/Pyramidx/pkg"
	da "github.com/lintang-b-s/Pyramidx/pkg/datastructure"
	"github.com/lintang-b-s/Pyramidx/pkg/engine/solver"
	"github.com/lintang-b-s/Pyramidx/pkg/parser"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Strategy          string
	MaxRecursionDepth int
	CacheSize         int
}

func ConfigFromViper() Config {
	return Config{
		Strategy:          viper.GetString(pkg.CONFIG_SOLVER_STRATEGY),
		MaxRecursionDepth: viper.GetInt(pkg.CONFIG_SOLVER_MAX_RECURSION_DEPTH),
		CacheSize:         viper.GetInt(pkg.CONFIG_CACHE_SIZE),
	}
}

// Result of one search. Feasible=false is a normal outcome, MaxSum and Path are then empty.
// a result served from the cache has Cached set, its Elapsed is the time of the original search.
type Result struct {
	Feasible    bool
	MaxSum      int64
	Path        []int32
	Rows        int
	Cells       int
	Evaluations int
	Strategy    string
	Elapsed     time.Duration
	Cached      bool
}

func (r *Result) clone() *Result {
	c := *r
	if r.Path != nil {
		c.Path = make([]int32, len(r.Path))
		copy(c.Path, r.Path)
	}
	return &c
}

type Engine struct {
	cfg    Config
	logger *zap.Logger
	cache  *lru.Cache[string, *Result]
}

func NewEngine(cfg Config, logger *zap.Logger) (*Engine, error) {
	if _, err := solver.NewSolver(cfg.Strategy, cfg.MaxRecursionDepth); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		logger: logger,
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, *Result](cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		e.cache = cache
	}
	return e, nil
}

func (e *Engine) Strategy() string {
	if e.cfg.Strategy == "" {
		return pkg.STRATEGY_BOTTOM_UP
	}
	return e.cfg.Strategy
}

// Solve builds the triangle from src and searches it with the configured strategy.
func (e *Engine) Solve(ctx context.Context, src parser.LineSource) (*Result, error) {
	return e.SolveWithStrategy(ctx, src, e.cfg.Strategy)
}

func (e *Engine) SolveWithStrategy(ctx context.Context, src parser.LineSource, strategy string) (*Result, error) {
	start := time.Now()

	t, err := parser.BuildTriangle(src)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("triangle built", zap.Int("rows", t.NumberOfRows()), zap.Int("cells", t.NumberOfCells()))

	s, err := solver.NewSolver(strategy, e.cfg.MaxRecursionDepth)
	if err != nil {
		return nil, err
	}

	res, err := e.search(ctx, t, s)
	if err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(start)

	e.logger.Info("triangle solved",
		zap.String("strategy", res.Strategy),
		zap.Int("rows", res.Rows),
		zap.Bool("feasible", res.Feasible),
		zap.Int64("max_sum", res.MaxSum),
		zap.Int("evaluations", res.Evaluations),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

func (e *Engine) search(ctx context.Context, t *da.Triangle, s solver.Solver) (*Result, error) {
	sum, ok, err := s.Solve(ctx, t)
	if err != nil {
		return nil, err
	}

	stats := s.Stats()
	res := &Result{
		Feasible:    ok,
		Rows:        stats.Rows,
		Cells:       stats.Cells,
		Evaluations: stats.Evaluations,
		Strategy:    s.Name(),
	}
	if !ok {
		return res, nil
	}

	path, err := solver.ReconstructPath(t, t.Root())
	if err != nil {
		return nil, err
	}
	res.MaxSum = sum
	res.Path = solver.PathValues(t, path)
	return res, nil
}

// SolveText solves text, reusing a cached result for text with the same normalized rows.
func (e *Engine) SolveText(ctx context.Context, text, strategy string) (*Result, error) {
	if strategy == "" {
		strategy = e.Strategy()
	}
	normalized, err := parser.Normalize(text)
	if err != nil {
		return nil, err
	}

	key := cacheKey(strategy, normalized)
	if e.cache != nil {
		if res, ok := e.cache.Get(key); ok {
			e.logger.Debug("result cache hit", zap.String("key", key[:12]))
			hit := res.clone()
			hit.Cached = true
			return hit, nil
		}
	}

	res, err := e.SolveWithStrategy(ctx, parser.NewStringLineReader(normalized), strategy)
	if err != nil {
		return nil, err
	}
	if e.cache != nil {
		e.cache.Add(key, res.clone())
	}
	return res, nil
}

func (e *Engine) SolveFile(ctx context.Context, path string) (*Result, error) {
	fr, err := parser.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open triangle %s: %w", path, err)
	}
	defer fr.Close()

	e.logger.Info("solving triangle file", zap.String("path", path))
	return e.Solve(ctx, fr)
}

func (e *Engine) SolveDefault(ctx context.Context) (*Result, error) {
	return e.SolveText(ctx, parser.DefaultTriangle, "")
}

func cacheKey(strategy, normalized string) string {
	h := sha256.New()
	h.Write([]byte(strategy))
	h.Write([]byte{0})
	h.Write([]byte(normalized))
	return hex.EncodeToString(h.Sum(nil))
}
