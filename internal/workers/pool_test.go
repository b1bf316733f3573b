package workers_test

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathmx/internal/workers"
)

func TestDefault(t *testing.T) {
	want := runtime.NumCPU()
	if want > 4 {
		want = 4
	}
	assert.Equal(t, want, workers.Default(4))
	assert.LessOrEqual(t, workers.Default(0), workers.MaxWorkers)
	assert.GreaterOrEqual(t, workers.Default(0), 1)
	assert.LessOrEqual(t, workers.Default(100), workers.MaxWorkers)
}

func TestNew_Clamps(t *testing.T) {
	assert.Equal(t, 1, workers.New(0).Size())
	assert.Equal(t, 1, workers.New(-5).Size())
	assert.Equal(t, 3, workers.New(3).Size())
	assert.Equal(t, workers.MaxWorkers, workers.New(64).Size())
}

// TestRun_Barrier checks every worker index runs exactly once and that all
// writes are visible after Run returns.
func TestRun_Barrier(t *testing.T) {
	p := workers.New(4)
	seen := make([]int, p.Size())
	var calls atomic.Int32

	err := p.Run(func(w int) error {
		seen[w]++
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(4), calls.Load())
	assert.Equal(t, []int{1, 1, 1, 1}, seen)
}

// TestRun_Error returns the failure only after every task finished.
func TestRun_Error(t *testing.T) {
	p := workers.New(3)
	boom := errors.New("boom")
	var mu sync.Mutex
	finished := 0

	err := p.Run(func(w int) error {
		mu.Lock()
		finished++
		mu.Unlock()
		if w == 1 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, finished)
}

func TestStride(t *testing.T) {
	var got []int
	workers.Stride(1, 3, 10, func(i int) { got = append(got, i) })
	assert.Equal(t, []int{1, 4, 7}, got)

	got = nil
	workers.Stride(5, 8, 3, func(i int) { got = append(got, i) })
	assert.Empty(t, got)
}

// TestSpan covers the contiguous partition and its remainder rule.
func TestSpan(t *testing.T) {
	tests := []struct {
		worker, size, n int
		start, end      int
	}{
		{0, 4, 10, 0, 2},
		{1, 4, 10, 2, 4},
		{3, 4, 10, 6, 10},
		{0, 8, 3, 0, 0},
		{7, 8, 3, 0, 3},
		{0, 1, 5, 0, 5},
	}
	for _, tc := range tests {
		start, end := workers.Span(tc.worker, tc.size, tc.n)
		assert.Equal(t, tc.start, start, "%+v", tc)
		assert.Equal(t, tc.end, end, "%+v", tc)
	}
}
