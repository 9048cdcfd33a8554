package datastructure

import "math"

type Index uint32

// NoCell marks the missing child of a bottom-row cell.
const NoCell Index = math.MaxUint32

// ChoiceType marks the best (or impossible) choice from a cell.
type ChoiceType uint8

const (
	NotCheckedYet ChoiceType = iota
	Below
	DiagonalRight
	Impossible
)

func (c ChoiceType) String() string {
	switch c {
	case NotCheckedYet:
		return "not_checked_yet"
	case Below:
		return "below"
	case DiagonalRight:
		return "diagonal_right"
	case Impossible:
		return "impossible"
	default:
		return "unknown"
	}
}

// Decided reports whether the cell has a best sum (Below or DiagonalRight).
func (c ChoiceType) Decided() bool {
	return c == Below || c == DiagonalRight
}

type Cell struct {
	value         int32
	below         Index
	diagonalRight Index
	bestChoice    ChoiceType
	bestSum       int64 // valid only when bestChoice.Decided()
}

// NewCell creates a childless cell with bestChoice = NotCheckedYet.
func NewCell(value int32) Cell {
	return Cell{
		value:         value,
		below:         NoCell,
		diagonalRight: NoCell,
	}
}

func (c *Cell) GetValue() int32 {
	return c.value
}

func (c *Cell) GetBelow() Index {
	return c.below
}

func (c *Cell) GetDiagonalRight() Index {
	return c.diagonalRight
}

func (c *Cell) GetBestChoice() ChoiceType {
	return c.bestChoice
}

func (c *Cell) IsBottom() bool {
	return c.below == NoCell && c.diagonalRight == NoCell
}
