// Package workerpool runs independent jobs on a bounded number of goroutines.
package workerpool

import (
	"context"
	"sync"
)

// Result is the outcome of one item.
type Result[R any] struct {
	Value R
	Err   error
}

// Map runs fn for every item on at most workerCount goroutines and returns results in item order.
// A failing item does not stop the others. Items not started before ctx is canceled get ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) []Result[R] {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	results := make([]Result[R], len(items))
	tasks := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				value, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: value, Err: err}
			}
		}()
	}

	next := 0
dispatch:
	for ; next < len(items); next++ {
		select {
		case <-ctx.Done():
			break dispatch
		case tasks <- next:
		}
	}
	close(tasks)
	wg.Wait()

	for i := next; i < len(items); i++ {
		results[i].Err = ctx.Err()
	}
	return results
}
