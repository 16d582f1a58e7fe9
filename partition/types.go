package partition

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/numpart/bins"
	"github.com/katalvlaran/numpart/metrics"
)

// Algo selects the solver used by Solve.
type Algo int

const (
	// KarmarkarKarp splits items into two bins of near-equal sum.
	KarmarkarKarp Algo = iota

	// FirstFitDecreasing packs items into bins of Options.Capacity greedily.
	FirstFitDecreasing

	// BinCompletion packs items into the fewest bins of Options.Capacity.
	BinCompletion
)

var algoNames = [...]string{
	KarmarkarKarp:      "kk",
	FirstFitDecreasing: "ffd",
	BinCompletion:      "bin_completion",
}

var (
	// ErrUnsupportedAlgorithm indicates an unknown Algo value or name.
	ErrUnsupportedAlgorithm = errors.New("partition: unsupported algorithm")

	// ErrBadBinCount indicates a bin count the selected algorithm cannot use.
	ErrBadBinCount = errors.New("partition: unsupported bin count")

	// ErrBadCapacity indicates a missing or invalid capacity for a packing algorithm.
	ErrBadCapacity = errors.New("partition: capacity must be positive and finite")

	// ErrNegativeTimeLimit indicates TimeLimit < 0.
	ErrNegativeTimeLimit = errors.New("partition: negative time limit")
)

// String returns the configuration name of a, or "Algo(n)" when unknown.
func (a Algo) String() string {
	if a.valid() {
		return algoNames[a]
	}

	return "Algo(" + strconv.Itoa(int(a)) + ")"
}

// MarshalText implements encoding.TextMarshaler (used by YAML encoding).
func (a Algo) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, errors.Wrapf(ErrUnsupportedAlgorithm, "value %d", int(a))
	}

	return []byte(algoNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by YAML decoding).
func (a *Algo) UnmarshalText(text []byte) error {
	for i, name := range algoNames {
		if name == string(text) {
			*a = Algo(i)

			return nil
		}
	}

	return errors.Wrapf(ErrUnsupportedAlgorithm, "%q", text)
}

func (a Algo) valid() bool { return a >= 0 && int(a) < len(algoNames) }

// Options configures Solve.
type Options struct {
	// Algo selects the solver.
	Algo Algo `yaml:"algo"`

	// Bins is the number of bins for KarmarkarKarp; it must be 2.
	// Packing algorithms open as many bins as they need and ignore it.
	Bins int `yaml:"bins"`

	// Capacity is the bin capacity of the packing algorithms.
	Capacity float64 `yaml:"capacity"`

	// KeepContents returns bins with their items; otherwise only sums.
	KeepContents bool `yaml:"keepContents"`

	// TimeLimit bounds the run when positive. Only BinCompletion can
	// run long enough to hit it.
	TimeLimit time.Duration `yaml:"timeLimit"`

	// Logger receives solver summaries. Nil discards them.
	Logger logrus.FieldLogger `yaml:"-"`

	// Recorder receives solver events. Nil discards them.
	Recorder metrics.Recorder `yaml:"-"`
}

// DefaultOptions returns two-bin Karmarkar–Karp keeping contents, with no
// time limit.
func DefaultOptions() Options {
	return Options{
		Algo:         KarmarkarKarp,
		Bins:         2,
		KeepContents: true,
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Bins holds the final bins: *bins.Contents[float64] when
	// KeepContents was set, *bins.Sums[float64] otherwise.
	Bins bins.Bins[float64]

	// Algo is the solver that produced Bins.
	Algo Algo

	// Spread is the largest bin sum minus the smallest (0 without bins).
	Spread float64
}
