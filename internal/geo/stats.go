package geo

import "math"

// Stats is a mean/min/max aggregate over a sequence of values.
type Stats struct {
	Mean float64 `json:"mean" yaml:"mean"`
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
}

// SummaryStats returns nil for an empty slice. A NaN anywhere in values
// makes every field NaN.
func SummaryStats(values []float64) *Stats {
	if len(values) == 0 {
		return nil
	}

	var sum float64
	lo, hi := values[0], values[0]
	for _, v := range values {
		sum += v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return &Stats{
		Mean: sum / float64(len(values)),
		Min:  lo,
		Max:  hi,
	}
}
