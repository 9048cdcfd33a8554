package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// LineSource yields the data lines of a triangle. blank lines never reach the builder.
type LineSource interface {
	// NextNonEmptyLine returns ok=false once the source is exhausted.
	NextNonEmptyLine() (line string, ok bool, err error)
}

// maxLineBytes bounds a single row of text.
const maxLineBytes = 16 << 20

type LineReader struct {
	sc     *bufio.Scanner
	lineNo int
}

func NewLineReader(r io.Reader) *LineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	sc.Split(scanLines)
	return &LineReader{sc: sc}
}

func NewStringLineReader(s string) *LineReader {
	return NewLineReader(strings.NewReader(s))
}

// scanLines is bufio.ScanLines that also ends a line at a lone '\r'.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// '\r' is the last byte read, wait for a possible '\n'.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func (lr *LineReader) NextNonEmptyLine() (string, bool, error) {
	for lr.sc.Scan() {
		lr.lineNo++
		line := lr.sc.Text()
		if strings.TrimSpace(line) != "" {
			return line, true, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return "", false, fmt.Errorf("read line %d: %w", lr.lineNo+1, err)
	}
	return "", false, nil
}

// LineNumber is the 1-indexed number of the last line read, blank lines included.
func (lr *LineReader) LineNumber() int {
	return lr.lineNo
}

type FileLineReader struct {
	*LineReader
	closers []io.Closer
}

// OpenFile opens a triangle file. files ending in .bz2 are decompressed on the fly.
func OpenFile(path string) (*FileLineReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		r       io.Reader = f
		closers           = []io.Closer{f}
	)
	if strings.HasSuffix(path, ".bz2") {
		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open bzip2 triangle %s: %w", path, err)
		}
		r = bz
		closers = append([]io.Closer{bz}, closers...)
	}

	return &FileLineReader{
		LineReader: NewLineReader(r),
		closers:    closers,
	}, nil
}

func (fr *FileLineReader) Close() error {
	var errs []error
	for _, c := range fr.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
