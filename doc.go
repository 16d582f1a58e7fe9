// Package numpart splits collections of weighted items into bins: two-way
// balanced partitions, greedy and exact capacity packing, and the building
// blocks those solvers share.
//
// What is inside?
//
//	bins/      — bin state: per-bin sums only (Sums) or sums plus items (Contents),
//	             in-place or copy-on-write updates
//	kk/        — Karmarkar–Karp largest differencing, two bins
//	subset/    — bounded inclusion/exclusion tree: lazily yields every subset
//	             whose sum lies in [lower, upper]
//	packing/   — first-fit (decreasing), L1/L2 lower bounds, exact bin completion
//	partition/ — one Solve entry point plus YAML-decodable Options
//	workload/  — seeded item generators for tests and benchmarks
//	metrics/   — search/solve event recorder, no-op or Prometheus
//
// Quick example (two bins, equal sums):
//
//	res, _ := partition.Solve(ctx, []float64{3, 1, 1, 2, 2, 1}, partition.DefaultOptions())
//	fmt.Println(res.Bins)
//	// Bin #0: [3 1 1], sum=5.0
//	// Bin #1: [2 2 1], sum=5.0
//
// Items can be any type: every solver takes a value function, and the
// generic entry points (kk.Partition, packing.BinCompletion, subset.NewTree)
// keep item identity, so equal-valued items are never merged.
//
//	go get github.com/katalvlaran/numpart
package numpart
