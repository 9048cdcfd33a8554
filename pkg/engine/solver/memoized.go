package solver

import (
	"context"
	"fmt"

	"github.com/lintang-b-s/Pyramidx/pkg"
	da "github.com/lintang-b-s/Pyramidx/pkg/datastructure"
	"github.com/lintang-b-s/Pyramidx/pkg/util"
)

// MemoizedSolver is the depth-first memoized search. recursion depth equals the number of rows.
type MemoizedSolver struct {
	maxDepth int
	t        *da.Triangle
	stats    Stats
}

func NewMemoizedSolver(maxDepth int) *MemoizedSolver {
	if maxDepth <= 0 {
		maxDepth = pkg.DEFAULT_MAX_RECURSION_DEPTH
	}
	return &MemoizedSolver{maxDepth: maxDepth}
}

func (ms *MemoizedSolver) Name() string {
	return pkg.STRATEGY_MEMOIZED
}

func (ms *MemoizedSolver) Stats() Stats {
	return ms.stats
}

func (ms *MemoizedSolver) Solve(ctx context.Context, t *da.Triangle) (int64, bool, error) {
	ms.t = t
	ms.stats = Stats{Rows: t.NumberOfRows(), Cells: t.NumberOfCells()}
	if t.NumberOfRows() == 0 {
		return 0, false, ErrEmptyTriangle
	}
	if t.NumberOfRows() > ms.maxDepth {
		return 0, false, fmt.Errorf("%w: %d rows, limit %d", ErrTriangleTooTall, t.NumberOfRows(), ms.maxDepth)
	}
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	return ms.CheckChoice(t.Root(), 0, false)
}

// CheckChoice returns the best sum from u downward. when validate is true, u must have the
// opposite parity of prevValue, otherwise the edge into u is infeasible and u's memo state is
// left untouched.
func (ms *MemoizedSolver) CheckChoice(u da.Index, prevValue int32, validate bool) (int64, bool, error) {
	if u == da.NoCell {
		return 0, true, nil
	}

	value := ms.t.GetValue(u)
	if validate && util.SameParity(prevValue, value) {
		return 0, false, nil
	}

	switch choice := ms.t.GetChoice(u); choice {
	case da.NotCheckedYet:
		sumBelow, okBelow, err := ms.CheckChoice(ms.t.GetBelow(u), value, true)
		if err != nil {
			return 0, false, err
		}
		sumDiag, okDiag, err := ms.CheckChoice(ms.t.GetDiagonalRight(u), value, true)
		if err != nil {
			return 0, false, err
		}

		ms.stats.Evaluations++
		if !okBelow && !okDiag {
			ms.t.SetChoice(u, da.Impossible, 0)
			return 0, false, nil
		}
		if !okDiag || (okBelow && sumBelow >= sumDiag) {
			bestSum := sumBelow + int64(value)
			ms.t.SetChoice(u, da.Below, bestSum)
			return bestSum, true, nil
		}
		bestSum := sumDiag + int64(value)
		ms.t.SetChoice(u, da.DiagonalRight, bestSum)
		return bestSum, true, nil

	case da.Below, da.DiagonalRight:
		bestSum, _ := ms.t.GetBestSum(u)
		return bestSum, true, nil

	case da.Impossible:
		return 0, false, nil

	default:
		return 0, false, fmt.Errorf("%w: unknown status %d of cell %d", ErrInvalidState, choice, u)
	}
}
