package parallel

import (
	"math"
	"runtime"
	"sync"
)

// Parallelize divides the specified total number (items) according to the number of CPU cores,
// and executes the specified function (fn) in parallel for each range (start, end)
func Parallelize(items int, fn func(start, end int)) {
	parallelize(items, runtime.NumCPU(), fn)
}

// ParallelizeFraction behaves like Parallelize but bounds the worker count to the
// given fraction of available CPU cores, rounded up and never below one.
// A fraction outside (0,1] falls back to all cores. The grid sweep uses this so a
// run does not saturate the host while the delegated fitting routines are active.
func ParallelizeFraction(items int, fraction float64, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if fraction > 0 && fraction <= 1 {
		workers = int(math.Ceil(fraction * float64(workers)))
		if workers < 1 {
			workers = 1
		}
	}
	parallelize(items, workers, fn)
}

func parallelize(items, numWorkers int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	if numWorkers > items {
		numWorkers = items // No need for more workers than items
	}

	// Calculate the number of items each worker handles (ceiling division)
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		// Skip if there's no range to handle
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	// Wait for all workers to finish processing
	wg.Wait()
}

// ParallelizeWithThreshold performs parallelization only when the number of items exceeds the threshold
// If below threshold, normal sequential processing is performed
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		// Sequential processing when below threshold
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}
