// Package bins holds the incremental state of a candidate partition: one
// running sum per bin and, optionally, the items placed in each bin.
//
// What is a Bins state?
//
//	A fixed-order sequence of bins identified by stable indices [0, Len()).
//	Solvers add items to bins one at a time, either in place or
//	copy-on-write, and grow the sequence with empty bins when needed.
//
// Two fidelity levels share one contract (the Bins[T] interface):
//
//   - Sums[T]     — keeps only the per-bin sums. Cheap; use it when only the
//     balance of the partition matters.
//   - Contents[T] — keeps the sums and the items of every bin. Use it when the
//     assignment itself is the deliverable. Invariant: the values of
//     Contents(i) add up to Sum(i).
//
// Mutation policy:
//
//   - AddItem(item, value, bin, inplace=true)  mutates and returns the receiver.
//   - AddItem(item, value, bin, inplace=false) returns an independent copy and
//     leaves the receiver untouched (safe fan-out over snapshots).
//   - AddEmptyBins appends zero bins; existing indices never move.
//   - Sort permutes bins by ascending sum; it is a canonicalization step for
//     display and tests and does not preserve bin identity.
//
// Errors:
//
//	Out-of-range bin indices and negative counts are programmer errors: the
//	methods panic with an error wrapping ErrBinIndexOutOfRange or
//	ErrNegativeBinCount (use errors.Is on the recovered value).
//
// Concurrency:
//
//	A Bins value is owned by one goroutine. Give each worker its own copy
//	(Clone or a non-inplace AddItem) instead of sharing one state.
package bins
