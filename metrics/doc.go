// Package metrics records search statistics of the numpart solvers.
//
// Every solver accepts a Recorder. The default is NopRecorder, which discards
// everything; Prometheus exports the same events as Prometheus collectors
// registered on a caller-supplied Registerer.
//
// Events:
//
//   - RecordNode   — one search node expanded (enumeration tree, bin completion).
//   - RecordPrune  — a subtree cut, labelled with the bound that fired.
//   - RecordYield  — a result produced (subset, incumbent, merge).
//   - RecordSolve  — one finished solve: wall time in seconds and bins used.
//
// Implementations must be safe for concurrent use: one Recorder may be shared
// by many independent searches running in parallel.
package metrics
