package subset_test

import (
	"context"
	"errors"
	"math"
	"slices"
	"sort"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numpart/metrics"
	"github.com/katalvlaran/numpart/subset"
	"github.com/katalvlaran/numpart/workload"
)

func identity(x float64) float64 { return x }

func mustTree(t *testing.T, items []float64, upper, lower float64, opts ...subset.Option) *subset.Tree[float64] {
	t.Helper()
	tr, err := subset.NewTree(items, identity, upper, lower, opts...)
	require.NoError(t, err)

	return tr
}

// bruteForce lists every subset (as descending value slices) whose sum is
// within [lower, upper], sorted for comparison.
func bruteForce(items []float64, upper, lower float64) [][]float64 {
	sorted := slices.Clone(items)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var out [][]float64
	for mask := 0; mask < 1<<len(sorted); mask++ {
		var (
			s   []float64
			sum float64
		)
		for i, v := range sorted {
			if mask&(1<<i) != 0 {
				s = append(s, v)
				sum += v
			}
		}
		if sum >= lower && sum <= upper {
			if s == nil {
				s = []float64{}
			}
			out = append(out, s)
		}
	}

	return canonical(out)
}

// canonical sorts a list of subsets lexicographically.
func canonical(in [][]float64) [][]float64 {
	sort.Slice(in, func(i, j int) bool { return slices.Compare(in[i], in[j]) < 0 })

	return in
}

func TestTree_ThreeValueExample(t *testing.T) {
	tr := mustTree(t, []float64{5, 4, 3}, 7, 4)

	got := tr.Collect()
	assert.Equal(t, [][]float64{{5}, {4, 3}, {4}}, got, "include-first DFS order")
}

func TestTree_LowerAboveTotalIsEmpty(t *testing.T) {
	tr := mustTree(t, []float64{5, 4, 3}, 100, 13)

	var n int
	for range tr.All() {
		n++
	}
	assert.Zero(t, n)
	assert.Nil(t, tr.Collect())
}

func TestTree_UpperBelowLowerIsEmpty(t *testing.T) {
	tr := mustTree(t, []float64{1, 2, 3}, 2, 4)
	assert.Empty(t, tr.Collect())
}

func TestTree_EmptyItems(t *testing.T) {
	tr := mustTree(t, nil, 5, 0)
	assert.Equal(t, [][]float64{{}}, tr.Collect(), "only the empty subset")

	tr = mustTree(t, nil, 5, 1)
	assert.Empty(t, tr.Collect())
}

func TestTree_SortsDescendingStable(t *testing.T) {
	type item struct {
		name string
		v    float64
	}
	items := []item{{"a", 1}, {"b", 3}, {"c", 3}, {"d", 2}}
	tr, err := subset.NewTree(items, func(i item) float64 { return i.v }, 10, 0)
	require.NoError(t, err)

	var names []string
	for _, it := range tr.Items() {
		names = append(names, it.name)
	}
	assert.Equal(t, []string{"b", "c", "d", "a"}, names)
	assert.Equal(t, 9.0, tr.Total())
	assert.Equal(t, []item{{"a", 1}, {"b", 3}, {"c", 3}, {"d", 2}}, items, "input untouched")
}

// TestTree_MatchesBruteForce checks soundness and completeness against
// exhaustive enumeration on random instances.
func TestTree_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		items, err := workload.Integers(10, 1, 20, workload.WithSeed(seed))
		require.NoError(t, err)
		total := 0.0
		for _, v := range items {
			total += v
		}
		for _, bounds := range [][2]float64{{total, 0}, {total / 2, total / 3}, {25, 20}, {7, 7}} {
			tr := mustTree(t, items, bounds[0], bounds[1])
			got := canonical(tr.Collect())
			want := bruteForce(items, bounds[0], bounds[1])
			if len(want) == 0 {
				assert.Empty(t, got, "seed %d bounds %v", seed, bounds)

				continue
			}
			assert.Equal(t, want, got, "seed %d bounds %v", seed, bounds)
		}
	}
}

func TestTree_RestartableAndIdempotent(t *testing.T) {
	items, err := workload.Integers(12, 1, 30, workload.WithSeed(5))
	require.NoError(t, err)
	tr := mustTree(t, items, 60, 40)

	first := tr.Collect()
	require.NotEmpty(t, first)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, tr.Collect(), "run %d", i)
	}
}

func TestTree_EarlyStop(t *testing.T) {
	tr := mustTree(t, []float64{1, 1, 1, 1, 1, 1}, 6, 0)

	var taken [][]float64
	for s := range tr.All() {
		taken = append(taken, s)
		if len(taken) == 3 {
			break
		}
	}
	assert.Len(t, taken, 3)
	assert.Len(t, tr.Collect(), 64, "a stopped enumeration does not affect the next one")
}

func TestTree_YieldedSlicesAreIndependent(t *testing.T) {
	tr := mustTree(t, []float64{3, 2, 1}, 6, 0)
	got := tr.Collect()
	require.NotEmpty(t, got)
	got[0][0] = 99
	assert.Equal(t, 3.0, tr.Collect()[0][0])
}

func TestTree_DistinctValues(t *testing.T) {
	items := []float64{2, 2, 2, 1}

	plain := mustTree(t, items, 4, 4).Collect()
	assert.Len(t, plain, 3, "three ways to pick two 2s")

	distinct := mustTree(t, items, 4, 4, subset.WithDistinctValues()).Collect()
	assert.Equal(t, [][]float64{{2, 2}}, distinct)

	// Distinct mode keeps every distinct value multiset.
	all := mustTree(t, items, 10, 0, subset.WithDistinctValues()).Collect()
	assert.Len(t, all, 8, "{0..3 twos} x {with, without the 1}")
}

func TestTree_ConcurrentEnumerations(t *testing.T) {
	items, err := workload.Integers(14, 1, 50, workload.WithSeed(11))
	require.NoError(t, err)
	tr := mustTree(t, items, 120, 100, subset.WithDistinctValues())
	want := tr.Collect()

	var wg sync.WaitGroup
	results := make([][][]float64, 4)
	for w := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[w] = tr.Collect()
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestNewTree_Errors(t *testing.T) {
	_, err := subset.NewTree([]float64{1}, nil, 1, 0)
	assert.True(t, errors.Is(err, subset.ErrNilValueFunc))

	_, err = subset.NewTree([]float64{1}, identity, math.NaN(), 0)
	assert.True(t, errors.Is(err, subset.ErrBadBounds))

	_, err = subset.NewTree([]float64{1}, identity, 1, math.NaN())
	assert.True(t, errors.Is(err, subset.ErrBadBounds))

	assert.Panics(t, func() { subset.WithRecorder(nil) })
	assert.Panics(t, func() { subset.WithContext(nil) })
}

func TestTree_RecordsSearchEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheus(reg, "subset")
	tr := mustTree(t, []float64{5, 4, 3}, 7, 4, subset.WithRecorder(rec))
	require.Len(t, tr.Collect(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "reason" {
					key += "/" + lp.GetValue()
				}
			}
			counts[key] += m.GetCounter().GetValue()
		}
	}
	// Walk of the example: 11 nodes, 2 upper cuts, 1 lower cut, 3 leaves.
	assert.Equal(t, 11.0, counts["subset_search_nodes_total"])
	assert.Equal(t, 3.0, counts["subset_search_yields_total"])
	assert.Equal(t, 2.0, counts["subset_search_prunes_total/upper"])
	assert.Equal(t, 1.0, counts["subset_search_prunes_total/lower"])
}

// TestTree_WithContextStopsEnumeration cancels an enumeration of 2^40 leaves
// after a few subsets; it must end within one polling interval.
func TestTree_WithContextStopsEnumeration(t *testing.T) {
	items := make([]float64, 40)
	for i := range items {
		items[i] = float64(i + 1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tr := mustTree(t, items, math.Inf(1), math.Inf(-1), subset.WithContext(ctx))

	n := 0
	for range tr.All() {
		n++
		if n == 10 {
			cancel()
		}
	}
	assert.GreaterOrEqual(t, n, 10)
	assert.LessOrEqual(t, n, 10+1024, "stops at the next poll")
	assert.Error(t, ctx.Err())
}

func TestTree_WithContextLiveMatchesPlain(t *testing.T) {
	items := []float64{9, 7, 5, 4, 3, 2, 2, 1}
	plain := mustTree(t, items, 12, 6).Collect()
	withCtx := mustTree(t, items, 12, 6, subset.WithContext(context.Background())).Collect()
	assert.Equal(t, plain, withCtx)
}
