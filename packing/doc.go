// Package packing solves the capacity variant of number partitioning: pack
// items into bins of a fixed capacity using as few bins as possible.
//
// Contents:
//
//   - FirstFit / FirstFitDecreasing — greedy packers. FFD is the
//     initial-solution provider of the exact search.
//   - L1LowerBound / L2LowerBound   — pure lower bounds on the bin count
//     (L2 is the Martello–Toth bound and never below L1).
//   - BinCompletion                 — exact minimum bin count (Korf 2002,
//     "A New Algorithm for Optimal Bin Packing").
//
// Bin completion in short:
//
//	Start from the FFD packing as the incumbent. If it meets the L2 bound it
//	is optimal. Otherwise search depth-first: the largest unpacked item opens
//	a new bin; the subsets of the remaining items that fit beside it are
//	enumerated with a subset.Tree (upper bound = free space); only maximal
//	completions (no further item fits) are tried, fullest first. A branch is
//	cut when bins used + ceil(remaining sum / capacity) cannot beat the
//	incumbent; the search stops as soon as the incumbent meets the L2 bound.
//
// Sums are compared exactly (value <= free space); use integral or
// otherwise exactly representable values when the capacity is tight.
//
// Errors:
//
//   - ErrNilBins, ErrNilValueFunc — missing arguments.
//   - ErrBadCapacity              — capacity is not a positive finite number.
//   - ErrNegativeValue            — negative or non-finite item value.
//   - ErrItemTooLarge             — an item exceeds the capacity.
//   - ErrSearchAborted            — the context ended before the search did;
//     it also matches the context error (context.Canceled, ...).
package packing
