package usecases

import (
	"context"
	"errors"

	"github.com/lintang-b-s/Pyramidx/pkg/engine"
	"github.com/lintang-b-s/Pyramidx/pkg/engine/solver"
	"github.com/lintang-b-s/Pyramidx/pkg/parser"
	"github.com/lintang-b-s/Pyramidx/pkg/util"
	"go.uber.org/zap"
)

type SolverService struct {
	log    *zap.Logger
	engine SolverEngine
}

func NewSolverService(log *zap.Logger, engine SolverEngine) *SolverService {
	return &SolverService{
		log:    log,
		engine: engine,
	}
}

func (ss *SolverService) Solve(ctx context.Context, triangle, strategy string) (*engine.Result, error) {
	res, err := ss.engine.SolveText(ctx, triangle, strategy)
	if err != nil {
		return nil, ss.wrap(err)
	}
	return res, nil
}

func (ss *SolverService) SolveDefault(ctx context.Context) (*engine.Result, error) {
	res, err := ss.engine.SolveDefault(ctx)
	if err != nil {
		return nil, ss.wrap(err)
	}
	return res, nil
}

// wrap maps engine errors to the bad input / internal error codes used by the controllers.
func (ss *SolverService) wrap(err error) error {
	switch {
	case errors.Is(err, parser.ErrEmptyInput),
		errors.Is(err, parser.ErrMalformedRow),
		errors.Is(err, solver.ErrUnknownStrategy),
		errors.Is(err, solver.ErrTriangleTooTall):
		return util.WrapErrorf(err, util.ErrBadParamInput, "couldn't parse input")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return util.WrapErrorf(err, util.ErrInternalServerError, "search canceled")
	default:
		ss.log.Error("solver failed", zap.Error(err))
		return util.WrapErrorf(err, util.ErrInternalServerError, "%s", util.MessageInternalServerError)
	}
}
