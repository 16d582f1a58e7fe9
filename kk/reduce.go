package kk

import (
	"container/heap"
	"slices"
	"sort"
)

// merge records one differencing step: tokens hi and lo (values[hi] >=
// values[lo]) were replaced by token out. out is -1 when the difference was
// zero and the pair was dropped.
type merge struct {
	hi, lo, out int
}

// reduction is the complete differencing history of a value sequence.
// Tokens 0..n-1 are the input values; later tokens are differences.
type reduction struct {
	values []float64 // by token
	merges []merge
	last   int // token left at the end, or -1 when nothing remains
}

// tokenHeap orders tokens by descending value, then ascending token id.
// Token ids grow with creation, so a new difference sorts after every
// existing token of equal value.
type tokenHeap struct {
	ids    []int
	values *[]float64
}

func (h *tokenHeap) Len() int { return len(h.ids) }
func (h *tokenHeap) Less(i, j int) bool {
	vi, vj := (*h.values)[h.ids[i]], (*h.values)[h.ids[j]]
	if vi != vj {
		return vi > vj
	}

	return h.ids[i] < h.ids[j]
}
func (h *tokenHeap) Swap(i, j int) { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }
func (h *tokenHeap) Push(x any)    { h.ids = append(h.ids, x.(int)) }
func (h *tokenHeap) Pop() any {
	n := len(h.ids) - 1
	id := h.ids[n]
	h.ids = h.ids[:n]

	return id
}

// snapshot returns the values currently in the heap, largest first.
func (h *tokenHeap) snapshot() []float64 {
	ids := slices.Clone(h.ids)
	sort.Slice(ids, func(i, j int) bool {
		vi, vj := (*h.values)[ids[i]], (*h.values)[ids[j]]
		if vi != vj {
			return vi > vj
		}

		return ids[i] < ids[j]
	})
	out := make([]float64, len(ids))
	for i, id := range ids {
		out[i] = (*h.values)[id]
	}

	return out
}

// reduce runs largest differencing over sorted (descending) values. When
// trace is non-nil, every intermediate multiset is appended to it.
//
// Complexity: O(n log n), or O(n² log n) with trace.
func reduce(sorted []float64, trace *[][]float64) reduction {
	var (
		n = len(sorted)
		r = reduction{
			values: make([]float64, n, 2*n),
			merges: make([]merge, 0, n),
			last:   -1,
		}
		h = &tokenHeap{ids: make([]int, n), values: &r.values}
	)
	copy(r.values, sorted)
	for i := 0; i < n; i++ {
		h.ids[i] = i
	}
	heap.Init(h)
	if trace != nil {
		*trace = append(*trace, slices.Clone(sorted))
	}

	for h.Len() > 1 {
		hi := heap.Pop(h).(int)
		lo := heap.Pop(h).(int)
		d := r.values[hi] - r.values[lo]

		m := merge{hi: hi, lo: lo, out: -1}
		if d != 0 {
			m.out = len(r.values)
			r.values = append(r.values, d)
			heap.Push(h, m.out)
		}
		r.merges = append(r.merges, m)
		if trace != nil {
			*trace = append(*trace, h.snapshot())
		}
	}
	if h.Len() == 1 {
		r.last = h.ids[0]
	}

	return r
}

// Accumulator sides.
const (
	unset int8 = iota
	sideA
	sideB
)

func opposite(s int8) int8 {
	if s == sideA {
		return sideB
	}

	return sideA
}

// assign replays the merges in reverse and returns the side of every input
// token (indices 0..n-1).
//
// Root tokens (the final remainder and both halves of a dropped pair) go to
// the accumulator with the smaller running sum, ties to B. A merged token is
// expanded in place: the larger operand takes its side, the smaller operand
// the other. Expansion keeps the difference of the running sums unchanged,
// so running sums stay meaningful while only partly expanded.
func (r *reduction) assign(n int) []int8 {
	var (
		side = make([]int8, len(r.values))
		sum  [3]float64
	)
	place := func(id int) {
		s := sideB
		if sum[sideA] < sum[sideB] {
			s = sideA
		}
		side[id] = s
		sum[s] += r.values[id]
	}

	if r.last >= 0 {
		place(r.last)
	}
	for i := len(r.merges) - 1; i >= 0; i-- {
		m := r.merges[i]
		if m.out < 0 {
			place(m.hi)
			place(m.lo)

			continue
		}
		s := side[m.out]
		o := opposite(s)
		side[m.hi] = s
		side[m.lo] = o
		sum[s] += r.values[m.hi] - r.values[m.out]
		sum[o] += r.values[m.lo]
	}

	return side[:n]
}
