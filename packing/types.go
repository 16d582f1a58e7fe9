package packing

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/numpart/internal/logging"
	"github.com/katalvlaran/numpart/metrics"
)

var (
	// ErrNilBins indicates a nil bins state.
	ErrNilBins = errors.New("packing: bins state is nil")

	// ErrNilValueFunc indicates that no value function was supplied.
	ErrNilValueFunc = errors.New("packing: value function is nil")

	// ErrBadCapacity indicates a capacity that is not a positive finite number.
	ErrBadCapacity = errors.New("packing: capacity must be positive and finite")

	// ErrNegativeValue indicates a negative, NaN or infinite item value.
	ErrNegativeValue = errors.New("packing: item value must be finite and non-negative")

	// ErrItemTooLarge indicates an item that does not fit into an empty bin.
	ErrItemTooLarge = errors.New("packing: item exceeds bin capacity")

	// ErrSearchAborted indicates that the context was done before the exact
	// search finished.
	ErrSearchAborted = errors.New("packing: search aborted")
)

// ceilTol absorbs float noise in sum/capacity ratios (e.g. 3.0000000000004).
const ceilTol = 1e-9

// checkEvery is the node interval between context checks in the exact search.
const checkEvery = 1024

// Option configures BinCompletion.
type Option func(*options)

type options struct {
	logger   logrus.FieldLogger
	recorder metrics.Recorder
}

func newOptions(opts ...Option) options {
	o := options{
		logger:   logging.Discard(),
		recorder: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sends search summaries to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("packing: WithLogger(nil)")
	}

	return func(o *options) {
		o.logger = l
	}
}

// WithRecorder reports search events to r. Panics on nil.
func WithRecorder(r metrics.Recorder) Option {
	if r == nil {
		panic("packing: WithRecorder(nil)")
	}

	return func(o *options) {
		o.recorder = r
	}
}

func validCapacity(c float64) bool {
	return c > 0 && !math.IsInf(c, 0) && !math.IsNaN(c)
}

func validValue(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
