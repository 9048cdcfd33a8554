package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/lintang-b-s/Pyramidx/pkg"
	da "github.com/lintang-b-s/Pyramidx/pkg/datastructure"
)

var (
	// ErrInvalidState indicates a broken memoization invariant. it is a bug, not bad input.
	ErrInvalidState = errors.New("solver: invalid cell state")

	// ErrTriangleTooTall indicates the memoized search would recurse deeper than allowed.
	ErrTriangleTooTall = errors.New("solver: triangle is taller than the maximum recursion depth")

	// ErrEmptyTriangle indicates a triangle without rows.
	ErrEmptyTriangle = errors.New("solver: triangle has no rows")

	ErrUnknownStrategy = errors.New("solver: unknown strategy")
)

// Solver annotates every cell it evaluates with its best choice and best sum, and returns the
// best sum from the root. ok=false means no parity-alternating path reaches the bottom row.
type Solver interface {
	Solve(ctx context.Context, t *da.Triangle) (sum int64, ok bool, err error)
	Stats() Stats
	Name() string
}

type Stats struct {
	// Evaluations counts cells decided by the last Solve call.
	Evaluations int
	Rows        int
	Cells       int
}

func NewSolver(strategy string, maxRecursionDepth int) (Solver, error) {
	switch strategy {
	case pkg.STRATEGY_BOTTOM_UP, "":
		return NewBottomUpSolver(), nil
	case pkg.STRATEGY_MEMOIZED:
		return NewMemoizedSolver(maxRecursionDepth), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
