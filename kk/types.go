package kk

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/numpart/internal/logging"
	"github.com/katalvlaran/numpart/metrics"
)

var (
	// ErrNilBins indicates a nil bins state.
	ErrNilBins = errors.New("kk: bins state is nil")

	// ErrNilValueFunc indicates that no value function was supplied.
	ErrNilValueFunc = errors.New("kk: value function is nil")

	// ErrUnsupportedBinCount indicates a bins state without exactly two bins.
	ErrUnsupportedBinCount = errors.New("kk: largest differencing needs exactly 2 bins")
)

// Identity is the value function for plain numeric items.
func Identity(v float64) float64 { return v }

// Option configures Partition.
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

// WithLogger logs a debug summary of every partition to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("kk: WithLogger(nil)")
	}

	return func(o *options) {
		o.logger = l
	}
}

// WithRecorder reports merges and solve time to r. Panics on nil.
func WithRecorder(r metrics.Recorder) Option {
	if r == nil {
		panic("kk: WithRecorder(nil)")
	}

	return func(o *options) {
		o.recorder = r
	}
}
