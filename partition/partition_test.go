package partition_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numpart/bins"
	"github.com/katalvlaran/numpart/internal/logging"
	"github.com/katalvlaran/numpart/metrics"
	"github.com/katalvlaran/numpart/packing"
	"github.com/katalvlaran/numpart/partition"
)

func TestAlgo_TextNames(t *testing.T) {
	for _, a := range []partition.Algo{partition.KarmarkarKarp, partition.FirstFitDecreasing, partition.BinCompletion} {
		text, err := a.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, a.String(), string(text))

		var back partition.Algo
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, a, back)
	}
	assert.Equal(t, "bin_completion", partition.BinCompletion.String())
	assert.Equal(t, "Algo(7)", partition.Algo(7).String())

	_, err := partition.Algo(-1).MarshalText()
	assert.True(t, errors.Is(err, partition.ErrUnsupportedAlgorithm))

	var a partition.Algo
	assert.True(t, errors.Is(a.UnmarshalText([]byte("greedy")), partition.ErrUnsupportedAlgorithm))
}

func TestLoadOptions(t *testing.T) {
	opts, err := partition.LoadOptions([]byte(`
algo: bin_completion
capacity: 100
keepContents: false
timeLimit: 2s
`))
	require.NoError(t, err)
	assert.Equal(t, partition.BinCompletion, opts.Algo)
	assert.Equal(t, 100.0, opts.Capacity)
	assert.False(t, opts.KeepContents)
	assert.Equal(t, 2*time.Second, opts.TimeLimit)
	assert.Equal(t, 2, opts.Bins, "default kept")
}

func TestLoadOptions_DefaultsWithEmptyDocument(t *testing.T) {
	opts, err := partition.LoadOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, partition.DefaultOptions(), opts)
}

func TestLoadOptions_Errors(t *testing.T) {
	_, err := partition.LoadOptions([]byte("algo: greedy\n"))
	assert.True(t, errors.Is(err, partition.ErrUnsupportedAlgorithm))

	_, err = partition.LoadOptions([]byte("algo: ffd\n"))
	assert.True(t, errors.Is(err, partition.ErrBadCapacity))

	_, err = partition.LoadOptions([]byte("bins: 3\n"))
	assert.True(t, errors.Is(err, partition.ErrBadBinCount))

	_, err = partition.LoadOptions([]byte("timeLimit: -1s\n"))
	assert.True(t, errors.Is(err, partition.ErrNegativeTimeLimit))

	_, err = partition.LoadOptions([]byte("capacity: [1, 2]\n"))
	assert.Error(t, err)
}

func TestOptions_YAMLEncoding(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.Algo = partition.FirstFitDecreasing
	opts.Capacity = 10

	out, err := yaml.Marshal(opts)
	require.NoError(t, err)
	assert.Contains(t, string(out), "algo: ffd")

	back, err := partition.LoadOptions(out)
	require.NoError(t, err)
	assert.Equal(t, opts, back)
}

func TestSolve_KarmarkarKarp(t *testing.T) {
	res, err := partition.Solve(context.Background(), []float64{1, 6, 2, 3, 7, 4, 5, 8}, partition.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, partition.KarmarkarKarp, res.Algo)
	assert.Equal(t, 0.0, res.Spread)
	c, ok := res.Bins.(*bins.Contents[float64])
	require.True(t, ok)
	assert.Equal(t, [][]float64{{8, 5, 4, 1}, {7, 6, 3, 2}}, c.All())
}

func TestSolve_SumsOnly(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.KeepContents = false

	res, err := partition.Solve(context.Background(), []float64{4, 5, 6, 7, 8}, opts)
	require.NoError(t, err)
	_, ok := res.Bins.(*bins.Sums[float64])
	assert.True(t, ok)
	assert.Equal(t, []float64{16, 14}, res.Bins.Sums())
	assert.Equal(t, 2.0, res.Spread)
}

func TestSolve_Packing(t *testing.T) {
	items := []float64{4, 4, 3, 3, 2, 2}

	res, err := partition.Solve(context.Background(), items, partition.Options{Algo: partition.FirstFitDecreasing, Capacity: 9, KeepContents: true})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Bins.Len())
	assert.Equal(t, []float64{8, 8, 2}, res.Bins.Sums())
	assert.Equal(t, 6.0, res.Spread)

	res, err = partition.Solve(context.Background(), items, partition.Options{Algo: partition.BinCompletion, Capacity: 9})
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 9}, res.Bins.Sums())
	_, ok := res.Bins.(*bins.Sums[float64])
	assert.True(t, ok, "contents dropped")
}

func TestSolve_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := partition.Solve(ctx, nil, partition.Options{Algo: partition.Algo(9), Bins: 2})
	assert.True(t, errors.Is(err, partition.ErrUnsupportedAlgorithm))

	_, err = partition.Solve(ctx, nil, partition.Options{Algo: partition.KarmarkarKarp, Bins: 4})
	assert.True(t, errors.Is(err, partition.ErrBadBinCount))

	_, err = partition.Solve(ctx, nil, partition.Options{Algo: partition.BinCompletion, Capacity: math.Inf(1)})
	assert.True(t, errors.Is(err, partition.ErrBadCapacity))

	_, err = partition.Solve(ctx, nil, partition.Options{Algo: partition.KarmarkarKarp, Bins: 2, TimeLimit: -time.Second})
	assert.True(t, errors.Is(err, partition.ErrNegativeTimeLimit))

	_, err = partition.Solve(ctx, []float64{5, 20}, partition.Options{Algo: partition.FirstFitDecreasing, Capacity: 10})
	assert.True(t, errors.Is(err, packing.ErrItemTooLarge))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = partition.Solve(cancelled, []float64{1}, partition.DefaultOptions())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSolve_LogsAndRecords(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheus(reg, "test")

	opts := partition.DefaultOptions()
	opts.Algo = partition.BinCompletion
	opts.Capacity = 9
	opts.Logger = logging.New(&buf, logrus.InfoLevel)
	opts.Recorder = rec

	_, err := partition.Solve(context.Background(), []float64{4, 4, 3, 3, 2, 2}, opts)
	require.NoError(t, err)
	require.NoError(t, rec.Err())

	assert.Contains(t, buf.String(), "partition: solved")
	assert.Contains(t, buf.String(), "algo=bin_completion")
	assert.Contains(t, buf.String(), "bins=2")

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "test_solve_duration_seconds")
	assert.Contains(t, names, "test_search_nodes_total")
}

func TestSolve_TimeLimitStopsBinCompletion(t *testing.T) {
	// No three of these fit in a bin, so 20 bins are optimal while L2 is 17
	// and the exact search cannot finish in time.
	items := make([]float64, 40)
	for i := range items {
		items[i] = float64(34 + i%16)
	}
	opts := partition.Options{Algo: partition.BinCompletion, Capacity: 100, TimeLimit: 50 * time.Millisecond}

	start := time.Now()
	_, err := partition.Solve(context.Background(), items, opts)

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.True(t, errors.Is(err, packing.ErrSearchAborted), "err = %v", err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "err = %v", err)
}
