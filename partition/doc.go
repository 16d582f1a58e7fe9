// Package partition is the single entry point over the numpart solvers.
//
// Solve takes float64 item values and an Options value and routes to:
//
//   - KarmarkarKarp      ("kk")             — two-way largest differencing (package kk).
//   - FirstFitDecreasing ("ffd")            — greedy capacity packing (package packing).
//   - BinCompletion      ("bin_completion") — exact minimum-bin packing (package packing).
//
// Options can be built in code (start from DefaultOptions) or decoded from
// YAML with LoadOptions:
//
//	algo: bin_completion
//	capacity: 100
//	keepContents: true
//	timeLimit: 2s
//
// Fields missing from the document keep their default values. Logger and
// Recorder are code-only.
//
// Errors:
//
//   - ErrUnsupportedAlgorithm — unknown Algo value or name.
//   - ErrBadBinCount          — KarmarkarKarp with Bins != 2.
//   - ErrBadCapacity          — packing algorithm without a positive finite capacity.
//   - ErrNegativeTimeLimit    — TimeLimit < 0.
//
// Errors of the underlying solvers (packing.ErrItemTooLarge,
// packing.ErrSearchAborted, ...) are returned unchanged.
package partition
