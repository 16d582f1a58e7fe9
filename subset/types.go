package subset

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/numpart/metrics"
)

var (
	// ErrNilValueFunc indicates that no value function was supplied.
	ErrNilValueFunc = errors.New("subset: value function is nil")

	// ErrBadBounds indicates a NaN upper or lower bound.
	ErrBadBounds = errors.New("subset: bounds must not be NaN")
)

// Option configures a Tree.
type Option func(*options)

type options struct {
	distinct bool
	recorder metrics.Recorder
	ctx      context.Context
}

// checkEvery is the node interval between context checks of an enumeration.
const checkEvery = 1024

func defaultOptions() options {
	return options{recorder: metrics.NewNop()}
}

// WithDistinctValues makes an enumeration skip subsets whose value sequence
// was already produced by the same enumeration. Two subsets built from
// different items of equal values count as one.
func WithDistinctValues() Option {
	return func(o *options) {
		o.distinct = true
	}
}

// WithRecorder sends node, prune and yield events to r. Panics on nil.
func WithRecorder(r metrics.Recorder) Option {
	if r == nil {
		panic("subset: WithRecorder(nil)")
	}

	return func(o *options) {
		o.recorder = r
	}
}

// WithContext ends every enumeration early once ctx is done. The context is
// polled every 1024 visited nodes. An early end looks like a normal end of
// the sequence; callers tell them apart with ctx.Err(). Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("subset: WithContext(nil)")
	}

	return func(o *options) {
		o.ctx = ctx
	}
}
