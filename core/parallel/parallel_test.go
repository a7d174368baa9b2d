package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversAllItems(t *testing.T) {
	const items = 1000

	var visited [items]int32
	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&visited[i], 1)
		}
	})

	for i, count := range visited {
		if count != 1 {
			t.Fatalf("item %d visited %d times, want 1", i, count)
		}
	}
}

func TestParallelizeZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) {
		called = true
	})
	if called {
		t.Error("fn called for zero items")
	}
}

func TestParallelizeWithThresholdSequential(t *testing.T) {
	var calls int32
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 10 {
			t.Errorf("sequential range = [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestMapReduceDeterministicOrder(t *testing.T) {
	// Folding subtraction is order-sensitive; repeated runs must agree.
	f := func(i int) int { return i }
	reduce := func(acc, next int) int { return acc*2 - next }

	want := MapReduce(64, f, reduce, 0)
	for run := 0; run < 20; run++ {
		if got := MapReduce(64, f, reduce, 0); got != want {
			t.Fatalf("run %d: MapReduce = %d, want %d", run, got, want)
		}
	}
}

func TestMapReduceEmpty(t *testing.T) {
	got := MapReduce(0, func(i int) int { return 1 }, func(a, b int) int { return a + b }, 42)
	if got != 42 {
		t.Errorf("MapReduce(0 items) = %d, want zero value 42", got)
	}
}
