package metrics

// Search labels used by the solvers in this module.
const (
	SearchSubset     = "subset"
	SearchCompletion = "bin_completion"
	SearchKK         = "kk"
)

// Prune reasons.
const (
	PruneUpper = "upper"
	PruneLower = "lower"
)

// Recorder receives search and solve events.
type Recorder interface {
	// RecordNode records the expansion of one search node.
	RecordNode(search string)

	// RecordPrune records a pruned subtree together with the bound that fired.
	RecordPrune(search, reason string)

	// RecordYield records one produced result (subset, merge or incumbent).
	RecordYield(search string)

	// RecordSolve records a finished solve.
	//
	// Parameters:
	//   - algo: algorithm name ("kk", "ffd", "bin_completion")
	//   - seconds: wall time of the solve
	//   - bins: number of bins in the returned state
	RecordSolve(algo string, seconds float64, bins int)
}

// NopRecorder discards all events.
type NopRecorder struct{}

// Compile-time assertion that NopRecorder implements Recorder.
var _ Recorder = (*NopRecorder)(nil)

// NewNop returns a Recorder that discards everything.
func NewNop() *NopRecorder {
	return &NopRecorder{}
}

// RecordNode discards the event.
func (n *NopRecorder) RecordNode(_ /* search */ string) {}

// RecordPrune discards the event.
func (n *NopRecorder) RecordPrune(_ /* search */, _ /* reason */ string) {}

// RecordYield discards the event.
func (n *NopRecorder) RecordYield(_ /* search */ string) {}

// RecordSolve discards the event.
func (n *NopRecorder) RecordSolve(_ /* algo */ string, _ /* seconds */ float64, _ /* bins */ int) {}
