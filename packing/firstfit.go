package packing

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/numpart/bins"
)

// FirstFit places items in input order, each into the lowest-indexed bin of b
// with enough free space, appending an empty bin when none has. Bins already
// present in b take part with their current sums. b is mutated and returned.
//
// All items are validated before b is touched.
//
// Complexity: O(n·m) for n items and m bins.
func FirstFit[T any](b bins.Bins[T], capacity float64, items []T, valueOf func(T) float64) (bins.Bins[T], error) {
	vals, err := checkInput(b, capacity, items, valueOf)
	if err != nil {
		return nil, err
	}
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}

	return firstFit(b, capacity, items, vals, order), nil
}

// FirstFitDecreasing is FirstFit over the items sorted by descending value
// (stable). It never uses more than 11/9·OPT + 6/9 bins.
//
// Complexity: O(n log n + n·m).
func FirstFitDecreasing[T any](b bins.Bins[T], capacity float64, items []T, valueOf func(T) float64) (bins.Bins[T], error) {
	vals, err := checkInput(b, capacity, items, valueOf)
	if err != nil {
		return nil, err
	}

	return firstFit(b, capacity, items, vals, descendingOrder(vals)), nil
}

func firstFit[T any](b bins.Bins[T], capacity float64, items []T, vals []float64, order []int) bins.Bins[T] {
	sums := b.Sums()
	for _, i := range order {
		v := vals[i]
		target := -1
		for j, s := range sums {
			if s+v <= capacity {
				target = j

				break
			}
		}
		if target < 0 {
			b.AddEmptyBins(1)
			sums = append(sums, 0)
			target = len(sums) - 1
		}
		b.AddItem(items[i], v, target, true)
		sums[target] += v
	}

	return b
}

// checkInput validates the shared arguments of the packers and returns the
// item values.
func checkInput[T any](b bins.Bins[T], capacity float64, items []T, valueOf func(T) float64) ([]float64, error) {
	if b == nil {
		return nil, ErrNilBins
	}
	if valueOf == nil {
		return nil, ErrNilValueFunc
	}
	if !validCapacity(capacity) {
		return nil, errors.Wrapf(ErrBadCapacity, "capacity %g", capacity)
	}

	return itemValues(capacity, items, valueOf)
}

// itemValues evaluates and validates every item value.
func itemValues[T any](capacity float64, items []T, valueOf func(T) float64) ([]float64, error) {
	vals := make([]float64, len(items))
	for i, it := range items {
		v := valueOf(it)
		if !validValue(v) {
			return nil, errors.Wrapf(ErrNegativeValue, "item %d: %g", i, v)
		}
		if v > capacity {
			return nil, errors.Wrapf(ErrItemTooLarge, "item %d: %g > %g", i, v, capacity)
		}
		vals[i] = v
	}

	return vals, nil
}

// descendingOrder returns the indices of vals in stable descending order.
func descendingOrder(vals []float64) []int {
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	return order
}
