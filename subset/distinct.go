package subset

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/zeebo/xxh3"
)

// fingerprints remembers the value sequences produced so far. Sequences are
// bucketed by their xxh3 hash and compared exactly inside a bucket, so a
// hash collision never hides a distinct subset.
type fingerprints struct {
	buf  []byte
	seen map[uint64][][]float64
}

func newFingerprints() *fingerprints {
	return &fingerprints{seen: make(map[uint64][][]float64)}
}

// add records vals and reports whether it was new.
func (f *fingerprints) add(vals []float64) bool {
	f.buf = f.buf[:0]
	for _, v := range vals {
		if v == 0 {
			v = 0 // fold -0 into +0
		}
		f.buf = binary.LittleEndian.AppendUint64(f.buf, math.Float64bits(v))
	}
	h := xxh3.Hash(f.buf)
	for _, prev := range f.seen[h] {
		if slices.Equal(prev, vals) {
			return false
		}
	}
	f.seen[h] = append(f.seen[h], slices.Clone(vals))

	return true
}
