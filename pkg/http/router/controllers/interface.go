package controllers

import (
	"context"

	"github.com/lintang-b-s/Pyramidx/pkg/engine"
)

type SolverService interface {
	Solve(ctx context.Context, triangle, strategy string) (*engine.Result, error)
	SolveDefault(ctx context.Context) (*engine.Result, error)
}
