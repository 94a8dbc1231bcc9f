package algo

// OLSFit holds an ordinary least squares fit of y on x.
type OLSFit struct {
	Slope     float64
	Intercept float64
	R2        float64
}

// OLS fits y = intercept + slope*x by least squares. Returns a zero fit for
// series shorter than two points or with zero variance in x.
func OLS(x, y []float64) OLSFit {
	n := len(x)
	if n < 2 || len(y) != n {
		return OLSFit{}
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var cov, varX float64
	for i := range n {
		cov += (x[i] - meanX) * (y[i] - meanY)
		varX += (x[i] - meanX) * (x[i] - meanX)
	}
	if varX == 0 {
		return OLSFit{}
	}

	slope := cov / varX
	intercept := meanY - slope*meanX

	// R2 from residual and total sums of squares.
	var ssRes, ssTot float64
	for i := range n {
		pred := intercept + slope*x[i]
		ssRes += (y[i] - pred) * (y[i] - pred)
		ssTot += (y[i] - meanY) * (y[i] - meanY)
	}
	fit := OLSFit{Slope: slope, Intercept: intercept}
	if ssTot > 0 {
		fit.R2 = 1 - ssRes/ssTot
	}
	return fit
}
