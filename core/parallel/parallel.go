// Package parallel provides chunked worker helpers for CPU-bound loops.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items across up to NumCPU workers and runs fn on each
// half-open range [start, end). It returns after every worker finishes.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so the last chunk absorbs the remainder.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over [0, items) when items
// is at or below threshold, and parallelizes otherwise. Small inputs are not
// worth the goroutine overhead.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// MapReduce evaluates fn(i) for every i in [0, items) in parallel and folds
// the results with reduce in ascending index order. The reduction order is
// fixed regardless of scheduling, so callers with order-sensitive tie-breaks
// (such as split search over feature indices) get deterministic results.
func MapReduce[T any](items int, fn func(i int) T, reduce func(acc, next T) T, zero T) T {
	if items == 0 {
		return zero
	}

	results := make([]T, items)
	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = fn(i)
		}
	})

	acc := zero
	for i := 0; i < items; i++ {
		acc = reduce(acc, results[i])
	}
	return acc
}
