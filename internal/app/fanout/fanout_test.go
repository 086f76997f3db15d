package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/app/fanout"
)

var errOdd = errors.New("odd input")

func double(_ context.Context, n int) (int, error) {
	if n%2 != 0 {
		return 0, errOdd
	}
	return n * 2, nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		workers   int
		inputs    []int
		wantVals  []int
		wantFails []int
	}{
		{name: "empty", workers: 4, inputs: []int{}, wantVals: []int{}, wantFails: []int{}},
		{name: "all succeed", workers: 2, inputs: []int{2, 4, 6}, wantVals: []int{4, 8, 12}, wantFails: []int{}},
		{name: "partial failure keeps order", workers: 3, inputs: []int{2, 3, 4, 5}, wantVals: []int{4, 8}, wantFails: []int{1, 3}},
		{name: "zero workers runs serially", workers: 0, inputs: []int{2, 1}, wantVals: []int{4}, wantFails: []int{1}},
		{name: "more workers than inputs", workers: 50, inputs: []int{8}, wantVals: []int{16}, wantFails: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outcomes := fanout.Run(context.Background(), tt.workers, tt.inputs, double)
			require.Len(t, outcomes, len(tt.inputs))
			for i, o := range outcomes {
				if o.Index != i {
					t.Errorf("outcomes[%d].Index = %d, want %d", i, o.Index, i)
				}
			}

			vals, fails := fanout.Split(outcomes)
			assert.Equal(t, tt.wantVals, vals)
			failIdx := make([]int, len(fails))
			for i, f := range fails {
				failIdx[i] = f.Index
				assert.ErrorIs(t, f.Err, errOdd)
			}
			assert.Equal(t, tt.wantFails, failIdx)
		})
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 3
	var active, peak atomic.Int32

	inputs := make([]int, 15)
	fanout.Run(context.Background(), workers, inputs, func(_ context.Context, _ int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return 0, nil
	})

	if p := peak.Load(); p > workers {
		t.Errorf("peak concurrency = %d, want <= %d", p, workers)
	}
}

func TestRun_CanceledInputsSkipped(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	outcomes := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		if n == 1 {
			cancel()
		}
		return n, nil
	})

	assert.NoError(t, outcomes[0].Err)
	for _, o := range outcomes[1:] {
		if !errors.Is(o.Err, context.Canceled) && o.Err != nil {
			t.Errorf("outcomes[%d].Err = %v, want nil or context.Canceled", o.Index, o.Err)
		}
	}
	// The second input may already be queued when cancel lands; the third
	// is never started.
	if c := calls.Load(); c > 2 {
		t.Errorf("calls = %d, want <= 2", c)
	}
}

func TestRun_PanicBecomesError(t *testing.T) {
	t.Parallel()

	outcomes := fanout.Run(context.Background(), 2, []string{"ok", "boom"}, func(_ context.Context, s string) (string, error) {
		if s == "boom" {
			panic("kaboom")
		}
		return s, nil
	})

	assert.NoError(t, outcomes[0].Err)
	var pe *fanout.PanicError
	require.ErrorAs(t, outcomes[1].Err, &pe)
	assert.Equal(t, "kaboom", pe.Value)
}
