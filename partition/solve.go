package partition

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/numpart/bins"
	"github.com/katalvlaran/numpart/internal/logging"
	"github.com/katalvlaran/numpart/kk"
	"github.com/katalvlaran/numpart/metrics"
	"github.com/katalvlaran/numpart/packing"
)

// Solve validates opts and runs the selected algorithm over values. The
// values slice is not modified.
//
// A positive opts.TimeLimit bounds ctx; a done context before the solver
// starts returns ctx.Err().
//
// Errors: see Options.Validate and the package documentation.
func Solve(ctx context.Context, values []float64, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var (
		logger   logrus.FieldLogger = logging.Discard()
		recorder metrics.Recorder   = metrics.NewNop()
	)
	if opts.Logger != nil {
		logger = opts.Logger
	}
	if opts.Recorder != nil {
		recorder = opts.Recorder
	}

	var (
		out   bins.Bins[float64]
		err   error
		start = time.Now()
	)
	switch opts.Algo {
	case KarmarkarKarp:
		out, err = kk.Partition(newState(opts.KeepContents, opts.Bins), values, kk.Identity,
			kk.WithLogger(logger), kk.WithRecorder(recorder))

	case FirstFitDecreasing:
		out, err = packing.FirstFitDecreasing(newState(opts.KeepContents, 0), opts.Capacity, values, kk.Identity)
		if err == nil {
			recorder.RecordSolve(opts.Algo.String(), time.Since(start).Seconds(), out.Len())
		}

	case BinCompletion:
		var c *bins.Contents[float64]
		c, err = packing.BinCompletion(ctx, opts.Capacity, values, kk.Identity,
			packing.WithLogger(logger), packing.WithRecorder(recorder))
		if err == nil {
			out = c
			if !opts.KeepContents {
				out = sumsOf(c)
			}
		}
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{Bins: out, Algo: opts.Algo, Spread: spread(out.Sums())}
	logger.WithFields(logrus.Fields{
		"algo":    opts.Algo,
		"items":   len(values),
		"bins":    out.Len(),
		"spread":  res.Spread,
		"elapsed": time.Since(start),
	}).Info("partition: solved")

	return res, nil
}

func newState(keepContents bool, n int) bins.Bins[float64] {
	if keepContents {
		return bins.NewContents[float64](n)
	}

	return bins.NewSums[float64](n)
}

// sumsOf drops the contents of c.
func sumsOf(c *bins.Contents[float64]) *bins.Sums[float64] {
	s := bins.NewSums[float64](c.Len())
	for i := 0; i < c.Len(); i++ {
		s.AddItem(0, c.Sum(i), i, true)
	}

	return s
}

// spread returns max(sums) - min(sums), or 0 for no sums.
func spread(sums []float64) float64 {
	if len(sums) == 0 {
		return 0
	}
	lo, hi := sums[0], sums[0]
	for _, s := range sums[1:] {
		lo = min(lo, s)
		hi = max(hi, s)
	}

	return hi - lo
}
