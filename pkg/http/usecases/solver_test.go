package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lintang-b-s/Pyramidx/pkg/engine"
	"github.com/lintang-b-s/Pyramidx/pkg/engine/solver"
	"github.com/lintang-b-s/Pyramidx/pkg/parser"
	"github.com/lintang-b-s/Pyramidx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEngine struct {
	res *engine.Result
	err error
}

func (s stubEngine) SolveText(ctx context.Context, text, strategy string) (*engine.Result, error) {
	return s.res, s.err
}

func (s stubEngine) SolveDefault(ctx context.Context) (*engine.Result, error) {
	return s.res, s.err
}

func TestSolverServiceErrorCodes(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode error
	}{
		{"empty input", parser.ErrEmptyInput, util.ErrBadParamInput},
		{"malformed row", &parser.MalformedRowError{Line: "1 x", Token: "x"}, util.ErrBadParamInput},
		{"unknown strategy", fmt.Errorf("%w: %q", solver.ErrUnknownStrategy, "dfs"), util.ErrBadParamInput},
		{"too tall", solver.ErrTriangleTooTall, util.ErrBadParamInput},
		{"canceled", context.Canceled, util.ErrInternalServerError},
		{"invalid state", solver.ErrInvalidState, util.ErrInternalServerError},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSolverService(zap.NewNop(), stubEngine{err: tt.err})

			_, err := svc.Solve(context.Background(), "1", "")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantCode)
			assert.ErrorIs(t, err, tt.err, "wrapped error stays reachable")

			var uerr *util.Error
			require.True(t, errors.As(err, &uerr))
			assert.Equal(t, tt.wantCode, uerr.Code())
		})
	}
}

func TestSolverServiceResult(t *testing.T) {
	want := &engine.Result{Feasible: true, MaxSum: 8, Path: []int32{1, 2, 5}}
	svc := NewSolverService(zap.NewNop(), stubEngine{res: want})

	got, err := svc.Solve(context.Background(), "1\n2 3\n4 5 6", "")
	require.NoError(t, err)
	assert.Same(t, want, got)

	got, err = svc.SolveDefault(context.Background())
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestSolverServiceInternalErrorMessage(t *testing.T) {
	svc := NewSolverService(zap.NewNop(), stubEngine{err: solver.ErrInvalidState})

	_, err := svc.SolveDefault(context.Background())
	require.Error(t, err)
	assert.Equal(t, util.MessageInternalServerError+": "+solver.ErrInvalidState.Error(), err.Error())
}
