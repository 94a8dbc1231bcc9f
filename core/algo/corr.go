package algo

import (
	"math"
	"sort"
)

// Pearson returns the Pearson correlation coefficient of two equal-length
// series. Returns 0 when the series are shorter than two points or when
// either series has zero variance.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n < 2 || len(y) != n {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var cov, varX, varY float64
	for i := range n {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// Spearman returns the Spearman rank correlation of two equal-length series.
// It is the Pearson correlation of the fractional ranks, with ties assigned
// their average rank. This matches the report's use of rank correlation to
// tolerate non-linear but monotonic factor relationships.
func Spearman(x, y []float64) float64 {
	n := len(x)
	if n < 2 || len(y) != n {
		return 0
	}
	return Pearson(fractionalRanks(x), fractionalRanks(y))
}

// fractionalRanks converts values to 1-based ranks, averaging tied groups.
func fractionalRanks(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// Average rank for the tied group [i, j].
		avg := (float64(i+1) + float64(j+1)) / 2
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}
