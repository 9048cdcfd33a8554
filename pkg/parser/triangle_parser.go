package parser

import (
	"io"
	"strconv"
	"strings"

	da "github.com/lintang-b-s/Pyramidx/pkg/datastructure"
)

// ParseRow splits row on whitespace (runs of separators count once), parses every token as a
// base-10 32-bit integer and returns one unlinked cell per token.
func ParseRow(row string, expectedCount int) ([]da.Cell, error) {
	parts := strings.Fields(row)
	if len(parts) != expectedCount {
		return nil, &MalformedRowError{Line: row, Expected: expectedCount, Got: len(parts)}
	}

	cells := make([]da.Cell, len(parts))
	for i, part := range parts {
		num, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return nil, &MalformedRowError{Line: row, Token: part, Expected: expectedCount, Got: len(parts), Err: err}
		}
		cells[i] = da.NewCell(int32(num))
	}
	return cells, nil
}

// BuildTriangle reads rows until src is exhausted. the first row must hold one number and
// every next row one more than the previous. prevRow[j] gets newRow[j] as below child and
// newRow[j+1] as diagonalRight child.
func BuildTriangle(src LineSource) (*da.Triangle, error) {
	expectedColumnCount := 1
	line, ok, err := src.NextNonEmptyLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmptyInput
	}

	row, err := ParseRow(line, expectedColumnCount)
	if err != nil {
		return nil, err
	}

	t := da.NewTriangle()
	lastRow := t.AddRow(row)

	for {
		line, ok, err = src.NextNonEmptyLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		expectedColumnCount++
		row, err = ParseRow(line, expectedColumnCount)
		if err != nil {
			return nil, err
		}

		newRow := t.AddRow(row)
		for j := 0; j < len(lastRow); j++ {
			t.SetChildren(lastRow[j], newRow[j], newRow[j+1])
		}
		lastRow = newRow
	}

	return t, nil
}

func BuildTriangleFromReader(r io.Reader) (*da.Triangle, error) {
	return BuildTriangle(NewLineReader(r))
}

func BuildTriangleFromString(s string) (*da.Triangle, error) {
	return BuildTriangleFromReader(strings.NewReader(s))
}

// BuildTriangleFromFile builds the triangle stored at path, see OpenFile.
func BuildTriangleFromFile(path string) (*da.Triangle, error) {
	fr, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer fr.Close()

	return BuildTriangle(fr)
}

// Normalize rewrites the data lines of s with single spaces between tokens and drops blank
// lines. it does not validate the triangle shape.
func Normalize(s string) (string, error) {
	lr := NewStringLineReader(s)
	var sb strings.Builder
	for {
		line, ok, err := lr.NextNonEmptyLine()
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		sb.WriteString(strings.Join(strings.Fields(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
