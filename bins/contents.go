package bins

import (
	"fmt"
	"slices"
	"sort"
)

// Contents keeps the sum and the items of every bin.
//
// Invariant: for every i, the values passed with the items of bin i add up
// to Sum(i). Contents never inspects items; identity is up to the caller and
// duplicates are kept as given.
type Contents[T any] struct {
	sums  []float64
	items [][]T
}

// Compile-time assertion that *Contents implements Bins.
var _ Bins[int] = (*Contents[int])(nil)

// NewContents returns n empty bins. Panics if n < 0.
func NewContents[T any](n int) *Contents[T] {
	checkCount(n)

	return &Contents[T]{
		sums:  make([]float64, n),
		items: make([][]T, n),
	}
}

// Len returns the number of bins.
func (c *Contents[T]) Len() int { return len(c.sums) }

// Sum returns the sum of bin i. Panics if i is out of range.
func (c *Contents[T]) Sum(i int) float64 {
	checkIndex(i, len(c.sums))

	return c.sums[i]
}

// Sums returns a copy of the bin sums.
func (c *Contents[T]) Sums() []float64 { return slices.Clone(c.sums) }

// Contents returns a copy of the items of bin i, in insertion order.
func (c *Contents[T]) Contents(i int) []T {
	checkIndex(i, len(c.sums))

	return slices.Clone(c.items[i])
}

// All returns a copy of every bin's items.
func (c *Contents[T]) All() [][]T {
	out := make([][]T, len(c.items))
	for i := range c.items {
		out[i] = slices.Clone(c.items[i])
	}

	return out
}

// AddItem appends item to bin i and adds value to its sum.
//
// The copy made for inplace=false shares the untouched item slices with the
// receiver but clips their capacity, so an append on either side reallocates
// instead of writing into the other's backing array.
//
// Complexity: amortized O(1) in place, O(Len + |bin i|) for a copy.
func (c *Contents[T]) AddItem(item T, value float64, i int, inplace bool) Bins[T] {
	checkIndex(i, len(c.sums))
	if inplace {
		c.sums[i] += value
		c.items[i] = append(c.items[i], item)

		return c
	}
	out := c.shallowCopy()
	out.sums[i] += value
	grown := make([]T, len(c.items[i]), len(c.items[i])+1)
	copy(grown, c.items[i])
	out.items[i] = append(grown, item)

	return out
}

// AddEmptyBins appends n empty bins. Panics if n < 0.
func (c *Contents[T]) AddEmptyBins(n int) Bins[T] {
	checkCount(n)
	c.sums = append(c.sums, make([]float64, n)...)
	c.items = append(c.items, make([][]T, n)...)

	return c
}

// Sort orders bins by ascending sum, breaking ties by ascending item count.
// Sums and items move together. The sort is stable.
func (c *Contents[T]) Sort() Bins[T] {
	sort.Stable(byLoad[T]{c})

	return c
}

// byLoad orders the bins of a Contents by (sum, item count).
type byLoad[T any] struct{ c *Contents[T] }

func (b byLoad[T]) Len() int { return len(b.c.sums) }
func (b byLoad[T]) Less(i, j int) bool {
	if b.c.sums[i] != b.c.sums[j] {
		return b.c.sums[i] < b.c.sums[j]
	}

	return len(b.c.items[i]) < len(b.c.items[j])
}
func (b byLoad[T]) Swap(i, j int) {
	b.c.sums[i], b.c.sums[j] = b.c.sums[j], b.c.sums[i]
	b.c.items[i], b.c.items[j] = b.c.items[j], b.c.items[i]
}

// Clone returns an independent copy.
func (c *Contents[T]) Clone() Bins[T] { return c.shallowCopy() }

// shallowCopy copies the sums and the outer item slice; inner slices are
// shared with their capacity clipped to their length.
func (c *Contents[T]) shallowCopy() *Contents[T] {
	out := &Contents[T]{
		sums:  slices.Clone(c.sums),
		items: make([][]T, len(c.items)),
	}
	for i := range c.items {
		out.items[i] = slices.Clip(c.items[i])
	}

	return out
}

// Render returns "<items>, sum=<value>" for bin i, e.g. "[a b], sum=9.0".
func (c *Contents[T]) Render(i int) string {
	checkIndex(i, len(c.sums))
	items := c.items[i]
	if items == nil {
		items = []T{}
	}

	return fmt.Sprintf("%v, sum=%s", items, formatSum(c.sums[i]))
}

// String renders every bin on its own line.
func (c *Contents[T]) String() string { return render[T](c) }
