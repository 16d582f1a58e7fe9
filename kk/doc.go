// Package kk splits items into two bins with the Karmarkar–Karp largest
// differencing method (Korf 2011, "A Hybrid Recursive Multi-Way Number
// Partitioning Algorithm", §2.2).
//
// 🚀 How it works
//
//  1. Sort the items by descending value (stable).
//  2. Repeatedly replace the two largest values by their difference. This
//     commits the pair to opposite bins. A zero difference drops the pair.
//     Differences(values) exposes the intermediate multisets.
//  3. Replay the merges in reverse to recover a concrete assignment.
//     Each value is tagged with a token (its position, or a fresh id for a
//     difference), so equal-valued items never get confused.
//  4. The heavier side goes to bin 0.
//
// Guarantees:
//
//   - Every item lands in exactly one of the two bins.
//   - |Sum(0) − Sum(1)| is at most the last value of the difference trace
//     (zero when the trace ends empty) and Sum(0) >= Sum(1).
//   - Deterministic: identical input order and values give identical bins.
//
// Errors:
//
//   - ErrNilBins, ErrNilValueFunc — missing arguments.
//   - ErrUnsupportedBinCount      — the bins state does not have exactly 2 bins.
//
// Complexity: O(n log n) time, O(n) space.
//
// Example:
//
//	b, err := kk.Partition[float64](bins.NewContents[float64](2), items, kk.Identity)
package kk
