package bins

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrBinIndexOutOfRange indicates a bin index outside [0, Len()).
	ErrBinIndexOutOfRange = errors.New("bins: bin index out of range")

	// ErrNegativeBinCount indicates a negative bin count at construction or growth.
	ErrNegativeBinCount = errors.New("bins: negative bin count")
)

// Bins is the common contract of both fidelity levels.
//
// Methods returning Bins return the receiver when they mutate in place, so
// calls can be chained:
//
//	b.AddEmptyBins(1).AddItem("x", 3, 2, true)
type Bins[T any] interface {
	// Len returns the number of bins.
	Len() int

	// Sum returns the sum of bin i.
	Sum(i int) float64

	// Sums returns a copy of all bin sums, index-aligned to bins.
	Sums() []float64

	// AddItem adds value to bin i (and records item when contents are kept).
	// With inplace=false the receiver is left unchanged and a new state is returned.
	AddItem(item T, value float64, i int, inplace bool) Bins[T]

	// AddEmptyBins appends n empty bins in place and returns the receiver.
	AddEmptyBins(n int) Bins[T]

	// Sort reorders bins by ascending sum in place and returns the receiver.
	Sort() Bins[T]

	// Clone returns an independent copy.
	Clone() Bins[T]

	// Render returns a one-line summary of bin i.
	Render(i int) string

	// String renders every bin, one "Bin #i: ..." line per bin.
	String() string
}

// checkIndex panics when i is not a valid bin index for n bins.
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(errors.Wrapf(ErrBinIndexOutOfRange, "index %d, bins %d", i, n))
	}
}

// checkCount panics when n is negative.
func checkCount(n int) {
	if n < 0 {
		panic(errors.Wrapf(ErrNegativeBinCount, "count %d", n))
	}
}

// formatSum renders a sum the way it reads in tables: integral values keep
// one decimal ("3.0"), everything else uses the shortest exact form.
func formatSum(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}

	return s
}

// render joins the per-bin lines of a state.
func render[T any](b Bins[T]) string {
	var sb strings.Builder
	for i := 0; i < b.Len(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("Bin #")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(b.Render(i))
	}

	return sb.String()
}
