package solver

import (
	"context"
	"fmt"

	"github.com/lintang-b-s/Pyramidx/pkg"
	da "github.com/lintang-b-s/Pyramidx/pkg/datastructure"
	"github.com/lintang-b-s/Pyramidx/pkg/util"
)

// BottomUpSolver decides every cell row by row from the bottom, reading the already decided
// row below. it gives the same root sum and path as MemoizedSolver without recursion, and
// also decides cells the root can never reach.
type BottomUpSolver struct {
	stats Stats
}

func NewBottomUpSolver() *BottomUpSolver {
	return &BottomUpSolver{}
}

func (bs *BottomUpSolver) Name() string {
	return pkg.STRATEGY_BOTTOM_UP
}

func (bs *BottomUpSolver) Stats() Stats {
	return bs.stats
}

func (bs *BottomUpSolver) Solve(ctx context.Context, t *da.Triangle) (int64, bool, error) {
	bs.stats = Stats{Rows: t.NumberOfRows(), Cells: t.NumberOfCells()}
	if t.NumberOfRows() == 0 {
		return 0, false, ErrEmptyTriangle
	}

	for r := t.NumberOfRows() - 1; r >= 0; r-- {
		if util.StopConcurrentOperation(ctx) {
			return 0, false, ctx.Err()
		}
		for _, u := range t.GetRow(r) {
			if t.GetChoice(u) != da.NotCheckedYet {
				// decided by an earlier run, decisions are write-once.
				continue
			}
			if err := bs.decide(t, u); err != nil {
				return 0, false, err
			}
		}
	}

	root := t.Root()
	switch choice := t.GetChoice(root); choice {
	case da.Below, da.DiagonalRight:
		sum, _ := t.GetBestSum(root)
		return sum, true, nil
	case da.Impossible:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("%w: root left as %s", ErrInvalidState, choice)
	}
}

func (bs *BottomUpSolver) decide(t *da.Triangle, u da.Index) error {
	value := t.GetValue(u)
	sumBelow, okBelow, err := edgeSum(t, value, t.GetBelow(u))
	if err != nil {
		return err
	}
	sumDiag, okDiag, err := edgeSum(t, value, t.GetDiagonalRight(u))
	if err != nil {
		return err
	}

	bs.stats.Evaluations++
	switch {
	case !okBelow && !okDiag:
		t.SetChoice(u, da.Impossible, 0)
	case !okDiag || (okBelow && sumBelow >= sumDiag):
		t.SetChoice(u, da.Below, sumBelow+int64(value))
	default:
		t.SetChoice(u, da.DiagonalRight, sumDiag+int64(value))
	}
	return nil
}

// edgeSum is the best sum reachable through the edge parent -> child. a missing child is the
// empty remaining path.
func edgeSum(t *da.Triangle, parentValue int32, child da.Index) (int64, bool, error) {
	if child == da.NoCell {
		return 0, true, nil
	}
	if util.SameParity(parentValue, t.GetValue(child)) {
		return 0, false, nil
	}

	switch choice := t.GetChoice(child); choice {
	case da.Below, da.DiagonalRight:
		sum, _ := t.GetBestSum(child)
		return sum, true, nil
	case da.Impossible:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("%w: child %d read as %s before its row was decided", ErrInvalidState, child, choice)
	}
}
