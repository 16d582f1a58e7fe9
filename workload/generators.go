package workload

import (
	"math"

	"github.com/pkg/errors"
)

// Uniform returns n values drawn uniformly from [lo, hi).
//
// Complexity: O(n).
func Uniform(n int, lo, hi float64, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrBadSize, "Uniform: n=%d", n)
	}
	if !finite(lo) || !finite(hi) || lo > hi {
		return nil, errors.Wrapf(ErrBadRange, "Uniform: [%g, %g)", lo, hi)
	}
	cfg := newConfig(opts...)

	out := make([]float64, n)
	for i := range out {
		out[i] = lo + cfg.rng.Float64()*(hi-lo)
	}

	return out, nil
}

// Integers returns n integral values drawn uniformly from [lo, hi].
// Integral values keep every sum exact in float64, which makes them the
// default choice for tests comparing partition sums.
//
// Complexity: O(n).
func Integers(n int, lo, hi int64, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrBadSize, "Integers: n=%d", n)
	}
	if lo > hi {
		return nil, errors.Wrapf(ErrBadRange, "Integers: [%d, %d]", lo, hi)
	}
	cfg := newConfig(opts...)

	var (
		span = hi - lo + 1
		out  = make([]float64, n)
	)
	for i := range out {
		out[i] = float64(lo + cfg.rng.Int63n(span))
	}

	return out, nil
}

// Normal returns n values drawn from N(mean, sigma²), clamped at zero so
// that every value is a valid item weight.
//
// Complexity: O(n).
func Normal(n int, mean, sigma float64, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrBadSize, "Normal: n=%d", n)
	}
	if !finite(mean) || !finite(sigma) || sigma < 0 {
		return nil, errors.Wrapf(ErrBadRange, "Normal: mean=%g sigma=%g", mean, sigma)
	}
	cfg := newConfig(opts...)

	out := make([]float64, n)
	for i := range out {
		out[i] = math.Max(0, mean+cfg.rng.NormFloat64()*sigma)
	}

	return out, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
