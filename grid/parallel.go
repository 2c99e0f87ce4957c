package grid

import (
	"runtime"
	"sync"
)

// ParallelFor executes fn for every i in [start, end), splitting the range
// among available CPUs. Iterations must be independent: fn must not read
// values another iteration writes.
func ParallelFor(start, end int, fn func(i int)) {
	ParallelChunks(start, end, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}

// ParallelChunks splits [start, end) into contiguous chunks, one per
// worker, and executes fn(lo, hi) for each chunk on its own goroutine.
// Use this instead of ParallelFor when each worker needs private scratch.
func ParallelChunks(start, end int, fn func(lo, hi int)) {
	total := end - start
	if total <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	chunk := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := start + w*chunk
		if lo >= end {
			break
		}
		hi := lo + chunk
		if hi > end {
			hi = end
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
