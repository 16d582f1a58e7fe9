package kk

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/numpart/bins"
	"github.com/katalvlaran/numpart/metrics"
)

// Partition assigns every item to bin 0 or bin 1 of b with the largest
// differencing method and returns b, mutated in place.
//
// Items are added in descending value order. The input slice is not
// modified. Zero items leave b untouched; a single item goes to bin 0.
//
// Errors: ErrNilBins, ErrNilValueFunc, ErrUnsupportedBinCount.
//
// Complexity: O(n log n) time, O(n) space.
func Partition[T any](b bins.Bins[T], items []T, valueOf func(T) float64, opts ...Option) (bins.Bins[T], error) {
	if b == nil {
		return nil, ErrNilBins
	}
	if valueOf == nil {
		return nil, ErrNilValueFunc
	}
	if b.Len() != 2 {
		return nil, errors.Wrapf(ErrUnsupportedBinCount, "got %d", b.Len())
	}
	cfg := newOptions(opts...)
	start := time.Now()

	order, sorted := sortDescending(items, valueOf)
	red := reduce(sorted, nil)
	for range red.merges {
		cfg.recorder.RecordNode(metrics.SearchKK)
	}
	side := red.assign(len(sorted))

	var sumA, sumB float64
	for k, s := range side {
		if s == sideA {
			sumA += sorted[k]
		} else {
			sumB += sorted[k]
		}
	}
	heavy := sideB
	if sumA > sumB {
		heavy = sideA
	}
	for k, s := range side {
		bin := 1
		if s == heavy {
			bin = 0
		}
		b.AddItem(items[order[k]], sorted[k], bin, true)
	}

	elapsed := time.Since(start)
	cfg.recorder.RecordSolve("kk", elapsed.Seconds(), b.Len())
	cfg.logger.WithFields(logrus.Fields{
		"items":   len(items),
		"merges":  len(red.merges),
		"sum0":    b.Sum(0),
		"sum1":    b.Sum(1),
		"elapsed": elapsed,
	}).Debug("kk: partition complete")

	return b, nil
}

// Differences returns the largest differencing trace of values: the values
// sorted descending, then the multiset after each step (two largest values
// replaced by their non-zero difference), until at most one value remains.
// The last set holds the heuristic difference, or is empty when it is zero.
// Zero values yield a single set.
//
// Complexity: O(n² log n) time for the snapshots.
func Differences(values []float64) [][]float64 {
	_, sorted := sortDescending(values, Identity)
	var trace [][]float64
	reduce(sorted, &trace)

	return trace
}

// sortDescending returns the stable descending order of items by value and
// the values in that order.
func sortDescending[T any](items []T, valueOf func(T) float64) ([]int, []float64) {
	var (
		n     = len(items)
		order = make([]int, n)
		vals  = make([]float64, n)
	)
	for i := 0; i < n; i++ {
		order[i] = i
		vals[i] = valueOf(items[i])
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	sorted := make([]float64, n)
	for k, i := range order {
		sorted[k] = vals[i]
	}

	return order, sorted
}
