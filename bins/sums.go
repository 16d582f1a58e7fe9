package bins

import (
	"slices"
)

// Sums keeps only the running sum of every bin. Items passed to AddItem are
// ignored; only their values count.
type Sums[T any] struct {
	sums []float64
}

// Compile-time assertion that *Sums implements Bins.
var _ Bins[int] = (*Sums[int])(nil)

// NewSums returns n zero bins. Panics if n < 0.
func NewSums[T any](n int) *Sums[T] {
	checkCount(n)

	return &Sums[T]{sums: make([]float64, n)}
}

// Len returns the number of bins.
func (s *Sums[T]) Len() int { return len(s.sums) }

// Sum returns the sum of bin i. Panics if i is out of range.
func (s *Sums[T]) Sum(i int) float64 {
	checkIndex(i, len(s.sums))

	return s.sums[i]
}

// Sums returns a copy of the bin sums.
func (s *Sums[T]) Sums() []float64 { return slices.Clone(s.sums) }

// AddItem adds value to bin i.
//
// Complexity: O(1) in place, O(Len) for a copy.
func (s *Sums[T]) AddItem(_ T, value float64, i int, inplace bool) Bins[T] {
	checkIndex(i, len(s.sums))
	if inplace {
		s.sums[i] += value

		return s
	}
	out := &Sums[T]{sums: slices.Clone(s.sums)}
	out.sums[i] += value

	return out
}

// AddEmptyBins appends n zero sums. Panics if n < 0.
func (s *Sums[T]) AddEmptyBins(n int) Bins[T] {
	checkCount(n)
	s.sums = append(s.sums, make([]float64, n)...)

	return s
}

// Sort orders the sums ascending.
func (s *Sums[T]) Sort() Bins[T] {
	slices.Sort(s.sums)

	return s
}

// Clone returns an independent copy.
func (s *Sums[T]) Clone() Bins[T] {
	return &Sums[T]{sums: slices.Clone(s.sums)}
}

// Render returns "sum=<value>" for bin i.
func (s *Sums[T]) Render(i int) string {
	checkIndex(i, len(s.sums))

	return "sum=" + formatSum(s.sums[i])
}

// String renders every bin on its own line.
func (s *Sums[T]) String() string { return render[T](s) }
