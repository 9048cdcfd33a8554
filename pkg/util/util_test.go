package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParity(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     int32
		wantSame bool
	}{
		{name: "odd odd", a: 1, b: 3, wantSame: true},
		{name: "even even", a: 2, b: 0, wantSame: true},
		{name: "odd even", a: 1, b: 2, wantSame: false},
		{name: "negative odd with odd", a: -3, b: 5, wantSame: true},
		{name: "negative odd with negative even", a: -1, b: -2, wantSame: false},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSame, SameParity(tt.a, tt.b))
			assert.Equal(t, tt.wantSame, IsOdd(tt.a) == IsOdd(tt.b))
		})
	}
}

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("boom")
	err := WrapErrorf(orig, ErrBadParamInput, "couldn't parse %s", "input")

	assert.ErrorIs(t, err, orig)
	assert.ErrorIs(t, err, ErrBadParamInput)
	assert.NotErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, "couldn't parse input: boom", err.Error())

	var ierr *Error
	assert.True(t, errors.As(err, &ierr))
	assert.Equal(t, ErrBadParamInput, ierr.Code())
}

