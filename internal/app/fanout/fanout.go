// Package fanout runs one operation over many inputs on a fixed pool of
// workers. Bulk task updates use it to apply independent changes
// concurrently while reporting outcomes in request order.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Outcome is the result of one input. Exactly one of Value and Err is set.
type Outcome[R any] struct {
	Index int
	Value R
	Err   error
}

// PanicError wraps a value recovered from a panicking operation so one bad
// input cannot take down the whole batch.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("operation panicked: %v", e.Value)
}

// Run applies fn to every input using at most workers goroutines and returns
// one outcome per input, in input order. Inputs not yet started when ctx is
// done receive ctx.Err() without calling fn. Run blocks until every started
// call returns. workers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, workers int, inputs []T, fn func(context.Context, T) (R, error)) []Outcome[R] {
	out := make([]Outcome[R], len(inputs))
	if len(inputs) == 0 {
		return out
	}
	workers = min(max(workers, 1), len(inputs))

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				out[i] = call(ctx, i, inputs[i], fn)
			}
		}()
	}

	for i := range inputs {
		if ctx.Err() != nil {
			out[i] = Outcome[R]{Index: i, Err: ctx.Err()}
			continue
		}
		select {
		case next <- i:
		case <-ctx.Done():
			out[i] = Outcome[R]{Index: i, Err: ctx.Err()}
		}
	}
	close(next)
	wg.Wait()
	return out
}

func call[T, R any](ctx context.Context, i int, in T, fn func(context.Context, T) (R, error)) (o Outcome[R]) {
	o.Index = i
	defer func() {
		if v := recover(); v != nil {
			o.Err = &PanicError{Value: v}
		}
	}()
	o.Value, o.Err = fn(ctx, in)
	return o
}

// Split separates outcomes into successful values and failures, both in
// input order.
func Split[R any](outcomes []Outcome[R]) (values []R, failures []Outcome[R]) {
	values = make([]R, 0, len(outcomes))
	failures = []Outcome[R]{}
	for _, o := range outcomes {
		if o.Err != nil {
			failures = append(failures, o)
			continue
		}
		values = append(values, o.Value)
	}
	return values, failures
}
