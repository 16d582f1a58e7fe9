// Package workload generates deterministic item values for tests, examples
// and benchmarks of the partitioning solvers.
//
// Every generator takes a size, its distribution parameters and functional
// options. Output is a pure function of (arguments, seed): the same call
// returns the same slice on every platform.
//
//	vals, err := workload.Integers(40, 1, 1000, workload.WithSeed(7))
//
// Options:
//
//   - WithSeed(s) — seed a private math/rand stream (s == 0 uses a fixed default).
//   - WithRand(r) — draw from a caller-owned *rand.Rand (not goroutine-safe).
//
// Option constructors panic on meaningless input (nil rand); generators
// return ErrBadSize / ErrBadRange for invalid sizes and parameters.
package workload
