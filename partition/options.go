package partition

import (
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadOptions decodes a YAML document over DefaultOptions and validates the
// result.
func LoadOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, errors.Wrap(err, "partition: decode options")
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

// Validate reports the first inconsistency in o.
func (o Options) Validate() error {
	if !o.Algo.valid() {
		return errors.Wrapf(ErrUnsupportedAlgorithm, "value %d", int(o.Algo))
	}
	if o.TimeLimit < 0 {
		return errors.Wrapf(ErrNegativeTimeLimit, "%v", o.TimeLimit)
	}
	switch o.Algo {
	case KarmarkarKarp:
		if o.Bins != 2 {
			return errors.Wrapf(ErrBadBinCount, "%s needs 2 bins, got %d", o.Algo, o.Bins)
		}
	case FirstFitDecreasing, BinCompletion:
		if o.Capacity <= 0 || math.IsInf(o.Capacity, 0) || math.IsNaN(o.Capacity) {
			return errors.Wrapf(ErrBadCapacity, "%s: capacity %g", o.Algo, o.Capacity)
		}
	}

	return nil
}
