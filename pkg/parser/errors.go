package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the line source produced no data lines.
	ErrEmptyInput = errors.New("parser: the input is empty")

	// ErrMalformedRow is matched by every *MalformedRowError through errors.Is.
	ErrMalformedRow = errors.New("parser: malformed row")
)

// MalformedRowError reports a row whose token count breaks the triangular growth rule,
// or a token that is not a 32-bit integer. Token is empty for count mismatches.
type MalformedRowError struct {
	Line     string
	Token    string
	Expected int
	Got      int
	Err      error
}

func (e *MalformedRowError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("parser: couldn't parse number %s in row '%s'", e.Token, e.Line)
	}
	return fmt.Sprintf("parser: expected %d numbers in row '%s', but got %d", e.Expected, e.Line, e.Got)
}

func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}
