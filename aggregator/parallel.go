package aggregator

import (
	"sync"

	"github.com/rowforge/rowforge/table"
)

// aggregateParallel splits the row range into n contiguous partitions,
// aggregates each on its own goroutine, then merges the partial bucket
// states by key. Every aggregator merge is associative and commutative, so
// the result does not depend on partition boundaries or scheduling.
func aggregateParallel(t *table.Table, keyIdx, srcIdx []int, specs []AggregateSpec, n int) map[string]*group {
	total := t.NumRows()
	if n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}

	partials := make([]map[string]*group, n)
	var wg sync.WaitGroup
	for p := 0; p < n; p++ {
		from := p * total / n
		to := (p + 1) * total / n
		wg.Add(1)
		go func(p, from, to int) {
			defer wg.Done()
			partials[p] = aggregateRows(t, keyIdx, srcIdx, specs, from, to)
		}(p, from, to)
	}
	wg.Wait()

	merged := partials[0]
	for _, part := range partials[1:] {
		for key, g := range part {
			if existing, ok := merged[key]; ok {
				for s := range existing.aggs {
					existing.aggs[s].Merge(g.aggs[s])
				}
			} else {
				merged[key] = g
			}
		}
	}
	return merged
}
