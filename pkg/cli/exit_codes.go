package cli

import (
	"errors"

	"github.com/lintang-b-s/Pyramidx/pkg/parser"
)

const (
	ExitSuccess = 0

	// ExitParseError indicates malformed or empty input.
	ExitParseError = 1

	// ExitInfeasible indicates no parity-alternating path exists.
	ExitInfeasible = 2

	ExitInvalidArguments = 3

	// ExitFailure covers any other error (io, invalid state).
	ExitFailure = 4
)

var errInfeasible = errors.New("no feasible path")

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errInfeasible):
		return ExitInfeasible
	case errors.Is(err, parser.ErrEmptyInput), errors.Is(err, parser.ErrMalformedRow):
		return ExitParseError
	case errors.Is(err, errInvalidArguments):
		return ExitInvalidArguments
	default:
		return ExitFailure
	}
}
