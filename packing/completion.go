package packing

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/numpart/bins"
	"github.com/katalvlaran/numpart/metrics"
	"github.com/katalvlaran/numpart/subset"
)

// BinCompletion packs items into the minimum number of bins of the given
// capacity and returns the packing with full contents. Bins are listed in
// the order the search opened them; items inside a bin are in descending
// value order.
//
// The context is checked before the search, every 1024 search nodes, every
// 1024 nodes of each completion enumeration and after each enumeration.
// When it is done, BinCompletion returns no packing and an error matching
// both ErrSearchAborted and the context error.
//
// Errors: ErrNilValueFunc, ErrBadCapacity, ErrNegativeValue,
// ErrItemTooLarge, ErrSearchAborted.
//
// Complexity: exponential in the worst case; O(n log n) when FFD meets the
// L2 bound.
func BinCompletion[T any](ctx context.Context, capacity float64, items []T, valueOf func(T) float64, opts ...Option) (*bins.Contents[T], error) {
	if valueOf == nil {
		return nil, ErrNilValueFunc
	}
	if !validCapacity(capacity) {
		return nil, errors.Wrapf(ErrBadCapacity, "capacity %g", capacity)
	}
	vals, err := itemValues(capacity, items, valueOf)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchAborted, err)
	}
	cfg := newOptions(opts...)
	start := time.Now()

	order := descendingOrder(vals)
	sorted := make([]float64, len(order))
	for k, i := range order {
		sorted[k] = vals[i]
	}

	e := &completionEngine{
		ctx:      ctx,
		capacity: capacity,
		values:   sorted,
		used:     make([]bool, len(sorted)),
		rec:      cfg.recorder,
		lb:       L2LowerBound(capacity, sorted),
	}
	for _, v := range sorted {
		e.remaining += v
	}
	e.best = e.firstFitDecreasing()
	ffd := len(e.best)
	if ffd > e.lb {
		e.search()
	}
	if e.err != nil {
		cfg.logger.WithFields(logrus.Fields{
			"items": len(items),
			"nodes": e.nodes,
			"best":  len(e.best),
		}).Debug("packing: bin completion aborted")

		return nil, fmt.Errorf("%w after %d nodes: %w", ErrSearchAborted, e.nodes, e.err)
	}

	out := bins.NewContents[T](len(e.best))
	for b, bin := range e.best {
		for _, k := range bin {
			out.AddItem(items[order[k]], sorted[k], b, true)
		}
	}

	elapsed := time.Since(start)
	cfg.recorder.RecordSolve(metrics.SearchCompletion, elapsed.Seconds(), out.Len())
	cfg.logger.WithFields(logrus.Fields{
		"items":   len(items),
		"ffd":     ffd,
		"l2":      e.lb,
		"bins":    out.Len(),
		"nodes":   e.nodes,
		"elapsed": elapsed,
	}).Debug("packing: bin completion complete")

	return out, nil
}

// completionEngine holds the state of one exact search. Positions k refer to
// the descending value order.
//
// Rationale:
//  1. Incumbent: the FFD packing. Only strictly smaller packings replace it,
//     and the search stops once the incumbent meets the L2 bound.
//  2. Branching: the largest unpacked item opens the next bin; the branches
//     are the ways to fill the rest of that bin. The largest item has to go
//     somewhere, and placing it first makes every later bin choice smaller.
//  3. Dominance: only maximal completions (no other unpacked item still
//     fits) are branched on. Any packing using a non-maximal bin can move
//     the missing item into it without using more bins. Completions with the
//     same value sequence as an earlier one lead to symmetric subtrees and
//     are dropped.
//  4. Order: completions are tried fullest first, which tends to leave the
//     least waste and finds good packings early.
//  5. Bound: a node is cut when bins used + ceil(remaining / capacity) >=
//     incumbent (L1 on the unpacked items).
//
// Complexity:
//   - Worst case exponential in n; each node enumerates a subset tree over
//     the unpacked items, bounded below by the smallest possible maximal sum.
//   - Memory: O(n) for the current packing plus the completions of every
//     open level.
//
// Cancellation: ctx is polled every 1024 search nodes, every 1024 nodes of
// a completion enumeration and after every enumeration; e.err keeps the
// first context error and unwinds the search.
type completionEngine struct {
	ctx      context.Context
	capacity float64
	values   []float64 // descending
	used     []bool

	remaining float64 // sum of unused values
	current   [][]int // bins of the partial packing
	best      [][]int // incumbent; only replaced by strictly smaller packings
	lb        int     // L2 bound of the whole instance

	nodes int
	err   error
	rec   metrics.Recorder
}

// firstFitDecreasing returns the FFD packing as position lists.
func (e *completionEngine) firstFitDecreasing() [][]int {
	var (
		packed [][]int
		sums   []float64
	)
	for k, v := range e.values {
		target := -1
		for j, s := range sums {
			if s+v <= e.capacity {
				target = j

				break
			}
		}
		if target < 0 {
			packed = append(packed, nil)
			sums = append(sums, 0)
			target = len(sums) - 1
		}
		packed[target] = append(packed[target], k)
		sums[target] += v
	}

	return packed
}

// done reports whether the search must stop: the context ended or the
// incumbent meets the lower bound.
func (e *completionEngine) done() bool {
	return e.err != nil || len(e.best) <= e.lb
}

func (e *completionEngine) search() {
	if e.done() {
		return
	}
	e.nodes++
	e.rec.RecordNode(metrics.SearchCompletion)
	if e.nodes%checkEvery == 0 {
		if err := e.ctx.Err(); err != nil {
			e.err = err

			return
		}
	}

	first := slices.Index(e.used, false)
	if first < 0 {
		if len(e.current) < len(e.best) {
			e.best = cloneBins(e.current)
			e.rec.RecordYield(metrics.SearchCompletion)
		}

		return
	}
	if len(e.current)+ceilDiv(e.remaining, e.capacity) >= len(e.best) {
		e.rec.RecordPrune(metrics.SearchCompletion, metrics.PruneLower)

		return
	}

	leftover := e.capacity - e.values[first]
	e.used[first] = true
	e.remaining -= e.values[first]

	for _, comp := range e.completions(first, leftover) {
		bin := append([]int{first}, comp...)
		for _, k := range comp {
			e.used[k] = true
			e.remaining -= e.values[k]
		}
		e.current = append(e.current, bin)

		e.search()

		e.current = e.current[:len(e.current)-1]
		for _, k := range comp {
			e.used[k] = false
			e.remaining += e.values[k]
		}
		if e.done() {
			break
		}
	}

	e.used[first] = false
	e.remaining += e.values[first]
}

// completions returns the maximal subsets of the unused positions after
// first that fit into leftover, fullest first. Subsets repeating the value
// sequence of an earlier one are skipped. It returns nil and sets e.err when
// the context ends during the enumeration.
func (e *completionEngine) completions(first int, leftover float64) [][]int {
	var (
		candidates []int
		total      float64
	)
	for k := first + 1; k < len(e.values); k++ {
		if !e.used[k] && e.values[k] <= leftover {
			candidates = append(candidates, k)
			total += e.values[k]
		}
	}

	// A maximal completion either takes every candidate or leaves one out
	// that does not fit, so its sum exceeds leftover minus the largest
	// candidate.
	lower := total
	if len(candidates) > 0 {
		lower = min(total, leftover-e.values[candidates[0]])
	}
	lower = max(0, lower-ceilTol*e.capacity)

	tree, err := subset.NewTree(candidates, e.valueAt, leftover, lower,
		subset.WithDistinctValues(), subset.WithRecorder(e.rec), subset.WithContext(e.ctx))
	if err != nil {
		// valueAt is non-nil and the bounds are finite.
		panic(err)
	}

	var (
		out    [][]int
		sums   []float64
		in     = make(map[int]bool, len(candidates))
		yields int
	)
	for comp := range tree.All() {
		yields++
		if yields%checkEvery == 0 && e.ctx.Err() != nil {
			break
		}
		var sum float64
		for _, k := range comp {
			sum += e.values[k]
			in[k] = true
		}
		if e.maximal(candidates, in, leftover-sum) {
			out = append(out, comp)
			sums = append(sums, sum)
		}
		clear(in)
	}
	// The tree ends silently on a done context.
	if err = e.ctx.Err(); err != nil {
		e.err = err

		return nil
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return sums[idx[a]] > sums[idx[b]] })
	sortedOut := make([][]int, len(out))
	for i, j := range idx {
		sortedOut[i] = out[j]
	}

	return sortedOut
}

// maximal reports whether no candidate outside the completion fits into
// free.
func (e *completionEngine) maximal(candidates []int, in map[int]bool, free float64) bool {
	for _, k := range candidates {
		if !in[k] && e.values[k] <= free {
			return false
		}
	}

	return true
}

func (e *completionEngine) valueAt(k int) float64 { return e.values[k] }

func cloneBins(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i := range src {
		out[i] = slices.Clone(src[i])
	}

	return out
}
