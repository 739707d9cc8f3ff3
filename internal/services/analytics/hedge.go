package analytics

import (
	"fmt"
	"math"

	"StockLens/internal/domain/models"
)

// AnalyzeHedge computes the pairwise hedge relationship between two
// closing-price series already aligned on common trading dates: the OLS
// hedge ratio (beta of p1 on p2), Pearson correlation, and the mean/std
// and latest z-score of the hedged spread p1 - beta*p2.
func AnalyzeHedge(ticker1, ticker2 string, p1, p2 []float64) (models.HedgeAnalysis, error) {
	n := len(p1)
	if n != len(p2) {
		return models.HedgeAnalysis{}, fmt.Errorf("series length mismatch: %d vs %d", n, len(p2))
	}
	if n < 2 {
		return models.HedgeAnalysis{}, fmt.Errorf("hedge analysis needs >= 2 overlapping days, got %d: %w", n, ErrInsufficientData)
	}

	mean1 := mean(p1)
	mean2 := mean(p2)

	var cov, var1, var2 float64
	for i := 0; i < n; i++ {
		d1 := p1[i] - mean1
		d2 := p2[i] - mean2
		cov += d1 * d2
		var1 += d1 * d1
		var2 += d2 * d2
	}

	if var2 == 0 {
		return models.HedgeAnalysis{}, fmt.Errorf("%s has constant price, hedge ratio undefined", ticker2)
	}
	beta := cov / var2

	corr := 0.0
	if var1 > 0 {
		corr = cov / math.Sqrt(var1*var2)
	}

	spread := make([]float64, n)
	for i := 0; i < n; i++ {
		spread[i] = p1[i] - beta*p2[i]
	}
	spreadMean := mean(spread)
	spreadStd := sampleStd(spread, spreadMean)

	z := 0.0
	if spreadStd > 0 {
		z = (spread[n-1] - spreadMean) / spreadStd
	}

	return models.HedgeAnalysis{
		Ticker1:      ticker1,
		Ticker2:      ticker2,
		HedgeRatio:   beta,
		Correlation:  corr,
		SpreadMean:   spreadMean,
		SpreadStd:    spreadStd,
		SpreadZScore: z,
		Observations: n,
	}, nil
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func sampleStd(xs []float64, m float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
