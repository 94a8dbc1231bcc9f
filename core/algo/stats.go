package algo

import (
	"sort"

	"github.com/shriyae/ladderboard/schema"
)

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Quantile returns the q-quantile (0 <= q <= 1) of values using linear
// interpolation between closest ranks. Returns 0 for an empty slice.
func Quantile(values []float64, q float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}
	pos := q * float64(n-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= n {
		return sorted[n-1]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// TercileCuts returns the 1/3 and 2/3 quantile cut points of values.
func TercileCuts(values []float64) (lower, upper float64) {
	return Quantile(values, 1.0/3.0), Quantile(values, 2.0/3.0)
}

// TercileOf places a value into Low/Average/High given the two cut points.
func TercileOf(v, lower, upper float64) schema.Tercile {
	switch {
	case v <= lower:
		return schema.LowTercile
	case v <= upper:
		return schema.AverageTercile
	default:
		return schema.HighTercile
	}
}
