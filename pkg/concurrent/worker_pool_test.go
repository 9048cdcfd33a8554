package concurrent

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapKeepsInputOrder(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}

	var calls atomic.Int64
	out := Map(4, in, func(v int) int {
		calls.Add(1)
		return v * v
	})

	assert.Equal(t, int64(len(in)), calls.Load())
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestMapEmpty(t *testing.T) {
	out := Map(3, []string{}, func(s string) int { return len(s) })
	assert.Empty(t, out)
}

func TestWorkerPoolZeroWorkers(t *testing.T) {
	out := Map(0, []string{"a", "bb"}, func(s string) int { return len(s) })
	assert.Equal(t, []int{1, 2}, out)
}
