// Package subset enumerates the sub-selections of an item sequence whose
// value sum lies within caller-supplied bounds.
//
// What is the inclusion/exclusion tree?
//
//	Items are sorted by descending value. Level d of the binary tree decides
//	item d: the right child includes it, the left child excludes it. A node
//	carries the running sum of the included items and the sum of the items
//	not yet decided. Leaves (depth == len(items)) are complete subsets.
//
// Pruning (both bounds inclusive):
//
//   - sum > upper             — no completion can come back under the cap.
//   - sum + remaining < lower — no completion can reach the floor.
//
// Descending order makes the upper bound bite early: large items overflow
// the cap near the root.
//
// Usage:
//
//	t, err := subset.NewTree(items, valueOf, 10, 7)
//	if err != nil { ... }
//	for s := range t.All() {
//		// s is a fresh slice owned by the caller
//	}
//
// Behavior:
//
//   - Lazy: the tree is never materialized; memory is O(len(items)) for the
//     current root-to-node path.
//   - Restartable: every All() call enumerates from the root again and
//     produces the same subsets in the same order (include-first DFS).
//   - Cooperative cancellation: break out of the range loop to stop.
//   - An empty enumeration is a valid result, not an error.
//   - A Tree holds no mutable state; concurrent All() calls are safe.
//
// Complexity: worst case O(2ⁿ) leaves when the bounds are loose; tight bounds
// prune most of the tree.
package subset
