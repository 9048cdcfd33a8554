package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"golang.org/x/exp/rand"
)

var ErrBadSize = errors.New("generator: rows must be positive and maxValue non-negative")

// RandomTriangle returns rows of uniformly random values in [0, maxValue]. the same seed
// always gives the same triangle.
func RandomTriangle(rows int, maxValue int32, seed uint64) ([][]int32, error) {
	if rows <= 0 || maxValue < 0 {
		return nil, ErrBadSize
	}
	rd := rand.New(rand.NewSource(seed))

	triangle := make([][]int32, rows)
	for r := 0; r < rows; r++ {
		triangle[r] = make([]int32, r+1)
		for c := range triangle[r] {
			triangle[r][c] = int32(rd.Int63n(int64(maxValue) + 1))
		}
	}
	return triangle, nil
}

// AlternatingTriangle returns a triangle in which every downward edge alternates parity,
// so every root-to-bottom path is feasible. values are in [0, maxValue], maxValue >= 1.
func AlternatingTriangle(rows int, maxValue int32, seed uint64) ([][]int32, error) {
	if rows <= 0 || maxValue < 1 {
		return nil, ErrBadSize
	}
	rd := rand.New(rand.NewSource(seed))

	triangle := make([][]int32, rows)
	for r := 0; r < rows; r++ {
		triangle[r] = make([]int32, r+1)
		for c := range triangle[r] {
			v := int32(rd.Int63n(int64(maxValue) + 1))
			if (v&1 == 1) != (r%2 == 0) {
				// row parity: even rows odd, odd rows even.
				if v == maxValue {
					v--
				} else {
					v++
				}
			}
			triangle[r][c] = v
		}
	}
	return triangle, nil
}

func Write(w io.Writer, triangle [][]int32) error {
	bw := bufio.NewWriter(w)
	for _, row := range triangle {
		parts := make([]string, len(row))
		for i, v := range row {
			parts[i] = strconv.FormatInt(int64(v), 10)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func Format(triangle [][]int32) string {
	var sb strings.Builder
	_ = Write(&sb, triangle)
	return sb.String()
}

// WriteFile writes triangle to path, bzip2-compressed when path ends in .bz2.
func WriteFile(path string, triangle [][]int32) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ".bz2") {
		return Write(f, triangle)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := Write(bz, triangle); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}
