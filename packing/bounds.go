package packing

import (
	"math"
	"slices"
)

// L1LowerBound returns ceil(sum(values) / capacity), the number of bins
// needed if items could be split freely. It returns 0 for an invalid
// capacity.
//
// Complexity: O(n).
func L1LowerBound(capacity float64, values []float64) int {
	if !validCapacity(capacity) {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}

	return ceilDiv(sum, capacity)
}

// L2LowerBound returns the Martello–Toth L2 bound:
//
//	L2 = max over K in {0} ∪ {v : v <= C/2} of
//	     |N1| + |N2| + max(0, ceil((Σ N3 − (|N2|·C − Σ N2)) / C))
//
// where N1 = {v > C−K}, N2 = {C/2 < v <= C−K}, N3 = {K <= v <= C/2}.
// Items of N1 and N2 each need their own bin; N3 items can only use the
// space left in N2 bins or new bins. It returns 0 for an invalid capacity.
//
// Complexity: O(n·d) for d distinct values not above C/2.
func L2LowerBound(capacity float64, values []float64) int {
	if !validCapacity(capacity) {
		return 0
	}
	var (
		half  = capacity / 2
		ks    = []float64{0}
		best  int
		k     float64
		v     float64
		n1    int
		n2    int
		s2    float64
		s3    float64
		bound int
	)
	for _, v = range values {
		if v <= half {
			ks = append(ks, v)
		}
	}
	slices.Sort(ks)
	ks = slices.Compact(ks)

	for _, k = range ks {
		n1, n2, s2, s3 = 0, 0, 0, 0
		for _, v = range values {
			switch {
			case v > capacity-k:
				n1++
			case v > half:
				n2++
				s2 += v
			case v >= k:
				s3 += v
			}
		}
		bound = n1 + n2
		if free := float64(n2)*capacity - s2; s3 > free {
			bound += ceilDiv(s3-free, capacity)
		}
		if bound > best {
			best = bound
		}
	}

	return best
}

// ceilDiv returns ceil(a/b) for non-negative a, tolerating float noise.
func ceilDiv(a, b float64) int {
	if a <= 0 {
		return 0
	}

	return int(math.Ceil(a/b - ceilTol))
}
