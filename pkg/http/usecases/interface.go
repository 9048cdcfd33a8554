package usecases

import (
	"context"

	"github.com/lintang-b-s/Pyramidx/pkg/engine"
)

type SolverEngine interface {
	SolveText(ctx context.Context, text, strategy string) (*engine.Result, error)
	SolveDefault(ctx context.Context) (*engine.Result, error)
}
