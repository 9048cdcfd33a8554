package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/Pyramidx/pkg/util"
)

// Triangle owns every cell in a flat arena. row r (0-indexed) holds r+1 cells.
// cell (r, c) is the below-child of (r-1, c) and the diagonalRight-child of (r-1, c-1),
// so interior cells are shared by two parents.
type Triangle struct {
	cells []Cell
	rows  [][]Index
}

func NewTriangle() *Triangle {
	return &Triangle{
		cells: make([]Cell, 0),
		rows:  make([][]Index, 0),
	}
}

func NewTriangleWithSize(numberOfRows int) *Triangle {
	return &Triangle{
		cells: make([]Cell, 0, numberOfRows*(numberOfRows+1)/2),
		rows:  make([][]Index, 0, numberOfRows),
	}
}

// AddRow appends cells as the next row and returns their arena indices. it does not link
// the row to the previous one, see SetChildren.
func (t *Triangle) AddRow(row []Cell) []Index {
	ids := make([]Index, len(row))
	for i, c := range row {
		ids[i] = Index(len(t.cells))
		t.cells = append(t.cells, c)
	}
	t.rows = append(t.rows, ids)
	return ids
}

func (t *Triangle) SetChildren(u, below, diagonalRight Index) {
	t.cells[u].below = below
	t.cells[u].diagonalRight = diagonalRight
}

// Root returns NoCell for an empty triangle.
func (t *Triangle) Root() Index {
	if len(t.rows) == 0 {
		return NoCell
	}
	return t.rows[0][0]
}

func (t *Triangle) NumberOfRows() int {
	return len(t.rows)
}

func (t *Triangle) NumberOfCells() int {
	return len(t.cells)
}

func (t *Triangle) GetRow(r int) []Index {
	return t.rows[r]
}

// CellAt returns the arena index of (row, col), both 0-indexed.
func (t *Triangle) CellAt(row, col int) (Index, error) {
	if row < 0 || row >= len(t.rows) || col < 0 || col > row {
		return NoCell, fmt.Errorf("cell (%d, %d) is outside a triangle of %d rows", row, col, len(t.rows))
	}
	return t.rows[row][col], nil
}

func (t *Triangle) GetValue(u Index) int32 {
	return t.cells[u].value
}

func (t *Triangle) GetBelow(u Index) Index {
	return t.cells[u].below
}

func (t *Triangle) GetDiagonalRight(u Index) Index {
	return t.cells[u].diagonalRight
}

func (t *Triangle) IsBottom(u Index) bool {
	return t.cells[u].IsBottom()
}

func (t *Triangle) GetChoice(u Index) ChoiceType {
	return t.cells[u].bestChoice
}

// GetBestSum returns false when the cell has no best sum (not checked yet or impossible).
func (t *Triangle) GetBestSum(u Index) (int64, bool) {
	c := &t.cells[u]
	if !c.bestChoice.Decided() {
		return 0, false
	}
	return c.bestSum, true
}

// SetChoice records the memoized decision of u. a cell is decided at most once.
func (t *Triangle) SetChoice(u Index, choice ChoiceType, bestSum int64) {
	c := &t.cells[u]
	util.AssertPanic(c.bestChoice == NotCheckedYet,
		fmt.Sprintf("cell %d already decided as %s", u, c.bestChoice))
	util.AssertPanic(choice != NotCheckedYet, fmt.Sprintf("cell %d cannot be reset through SetChoice", u))

	c.bestChoice = choice
	if choice.Decided() {
		c.bestSum = bestSum
	} else {
		c.bestSum = 0
	}
}

// ResetChoices clears every memoized decision so the triangle can be solved again.
func (t *Triangle) ResetChoices() {
	for i := range t.cells {
		t.cells[i].bestChoice = NotCheckedYet
		t.cells[i].bestSum = 0
	}
}

// Rows returns a copy of the cell values, row by row.
func (t *Triangle) Rows() [][]int32 {
	values := make([][]int32, len(t.rows))
	for r, row := range t.rows {
		values[r] = make([]int32, len(row))
		for c, u := range row {
			values[r][c] = t.cells[u].value
		}
	}
	return values
}
