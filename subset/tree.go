package subset

import (
	"context"
	"iter"
	"math"
	"slices"
	"sort"

	"github.com/katalvlaran/numpart/metrics"
)

// node is one decision point of the tree. The selected items themselves
// live on the walker's path stack, which grows and shrinks with depth.
type node struct {
	depth     int     // items[0:depth] are decided
	sum       float64 // sum of the selected items
	remaining float64 // sum of items[depth:]
}

// Tree is a bounded inclusion/exclusion search tree over a snapshot of items.
//
// Search:
//  1. Items are sorted by descending value once, at construction. Level d
//     decides item d: the include child is visited before the exclude child.
//  2. Every node carries the selected sum and the exact sum of the undecided
//     items (suffix sums), so sum + remaining == Total() holds everywhere.
//  3. A node is cut when sum > upper (no extension can shrink it) or when
//     sum + remaining < lower (even taking everything left falls short).
//     Large items first make both cuts fire near the root.
//  4. Leaves within bounds are yielded as fresh slices; in distinct mode a
//     leaf whose value sequence was already yielded is skipped.
//
// Complexity:
//   - Worst case O(2^n) nodes per enumeration; O(n) per yield for the copy.
//   - Memory: O(n) for the path, plus the stored sequences in distinct mode.
//
// Cancellation: stop ranging, or pass WithContext (polled every 1024 nodes).
type Tree[T any] struct {
	items  []T       // sorted by descending value
	values []float64 // values[i] = valueOf(items[i])
	suffix []float64 // suffix[d] = sum(values[d:]); len(items)+1 entries
	upper  float64
	lower  float64

	distinct bool
	rec      metrics.Recorder
	ctx      context.Context // nil: never polled
}

// NewTree snapshots items, sorts them by descending value (stable) and
// returns a Tree yielding every subset S with lower <= sum(S) <= upper.
//
// Errors:
//   - ErrNilValueFunc if valueOf is nil.
//   - ErrBadBounds if upper or lower is NaN.
//
// Complexity: O(n log n) time, O(n) space.
func NewTree[T any](items []T, valueOf func(T) float64, upper, lower float64, opts ...Option) (*Tree[T], error) {
	if valueOf == nil {
		return nil, ErrNilValueFunc
	}
	if math.IsNaN(upper) || math.IsNaN(lower) {
		return nil, ErrBadBounds
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		n     = len(items)
		order = make([]int, n)
		vals  = make([]float64, n)
		i     int
	)
	for i = 0; i < n; i++ {
		order[i] = i
		vals[i] = valueOf(items[i])
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	t := &Tree[T]{
		items:    make([]T, n),
		values:   make([]float64, n),
		suffix:   make([]float64, n+1),
		upper:    upper,
		lower:    lower,
		distinct: cfg.distinct,
		rec:      cfg.recorder,
		ctx:      cfg.ctx,
	}
	for i = 0; i < n; i++ {
		t.items[i] = items[order[i]]
		t.values[i] = vals[order[i]]
	}
	for i = n - 1; i >= 0; i-- {
		t.suffix[i] = t.suffix[i+1] + t.values[i]
	}

	return t, nil
}

// Items returns the sorted snapshot the tree searches.
func (t *Tree[T]) Items() []T { return slices.Clone(t.items) }

// Total returns the sum of all item values.
func (t *Tree[T]) Total() float64 { return t.suffix[0] }

// All returns the lazy sequence of subsets within bounds, in include-first
// depth-first order. Each yielded slice is a fresh copy, listed in the
// tree's descending-value order.
func (t *Tree[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		w := walker[T]{
			t:     t,
			path:  make([]T, 0, len(t.items)),
			yield: yield,
		}
		if t.distinct {
			w.vals = make([]float64, 0, len(t.items))
			w.seen = newFingerprints()
		}
		w.walk(node{depth: 0, sum: 0, remaining: t.suffix[0]})
	}
}

// Collect drains All into a slice.
func (t *Tree[T]) Collect() [][]T {
	var out [][]T
	for s := range t.All() {
		out = append(out, s)
	}

	return out
}

// walker holds the mutable state of one enumeration.
type walker[T any] struct {
	t     *Tree[T]
	path  []T       // selected items on the current root-to-node path
	vals  []float64 // their values; maintained only in distinct mode
	seen  *fingerprints
	yield func([]T) bool
	nodes int
}

// walk visits n and its subtree. It returns false once the consumer stops.
func (w *walker[T]) walk(n node) bool {
	t := w.t
	t.rec.RecordNode(metrics.SearchSubset)
	if t.ctx != nil {
		w.nodes++
		if w.nodes%checkEvery == 0 && t.ctx.Err() != nil {
			return false
		}
	}

	if n.sum > t.upper {
		t.rec.RecordPrune(metrics.SearchSubset, metrics.PruneUpper)

		return true
	}
	if n.sum+n.remaining < t.lower {
		t.rec.RecordPrune(metrics.SearchSubset, metrics.PruneLower)

		return true
	}

	if n.depth == len(t.items) {
		if w.seen != nil && !w.seen.add(w.vals) {
			return true
		}
		t.rec.RecordYield(metrics.SearchSubset)

		return w.yield(slices.Clone(w.path))
	}

	var (
		v    = t.values[n.depth]
		next = n.depth + 1
		rest = t.suffix[next]
	)

	// Inclusion first.
	w.push(t.items[n.depth], v)
	ok := w.walk(node{depth: next, sum: n.sum + v, remaining: rest})
	w.pop()
	if !ok {
		return false
	}

	// Exclusion.
	return w.walk(node{depth: next, sum: n.sum, remaining: rest})
}

func (w *walker[T]) push(item T, v float64) {
	w.path = append(w.path, item)
	if w.seen != nil {
		w.vals = append(w.vals, v)
	}
}

func (w *walker[T]) pop() {
	w.path = w.path[:len(w.path)-1]
	if w.seen != nil {
		w.vals = w.vals[:len(w.vals)-1]
	}
}
