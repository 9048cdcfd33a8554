package solver

import (
	"fmt"

	da "github.com/lintang-b-s/Pyramidx/pkg/datastructure"
)

// ReconstructPath follows the best choices from a solved cell down to the bottom row.
func ReconstructPath(t *da.Triangle, from da.Index) ([]da.Index, error) {
	path := make([]da.Index, 0, t.NumberOfRows())
	for u := from; u != da.NoCell; {
		path = append(path, u)
		switch choice := t.GetChoice(u); choice {
		case da.Below:
			u = t.GetBelow(u)
		case da.DiagonalRight:
			u = t.GetDiagonalRight(u)
		default:
			return nil, fmt.Errorf("%w: you can't output choice, when cell %d has status %s",
				ErrInvalidState, u, choice)
		}
	}
	return path, nil
}

func PathValues(t *da.Triangle, path []da.Index) []int32 {
	values := make([]int32, len(path))
	for i, u := range path {
		values[i] = t.GetValue(u)
	}
	return values
}
