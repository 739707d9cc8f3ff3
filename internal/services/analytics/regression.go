package analytics

import (
	"errors"
	"fmt"
	"math"

	"StockLens/internal/domain/models"
)

// ErrInsufficientData is returned when a computation needs more
// observations than the series holds.
var ErrInsufficientData = errors.New("insufficient observations")

// FitTrend fits an ordinary least-squares line of closing price against
// the zero-based day index 0..n-1. The index is standardized before
// fitting (zero mean, unit variance) for numerical conditioning, then the
// coefficients are converted back to unscaled price-per-day units:
//
//	slope' = slope / std,  intercept' = intercept - slope*mean/std
//
// with mean = (n-1)/2 and std = sqrt((n-1)(n+1)/12), the moments of a
// uniform 0..n-1 integer sequence. A single observation has zero index
// variance, so n < 2 is rejected rather than dividing by zero.
func FitTrend(closes []float64) (models.TrendFit, error) {
	n := len(closes)
	if n < 2 {
		return models.TrendFit{}, fmt.Errorf("trend fit needs >= 2 points, got %d: %w", n, ErrInsufficientData)
	}

	fn := float64(n)
	meanIdx := (fn - 1) / 2
	stdIdx := math.Sqrt((fn - 1) * (fn + 1) / 12)

	var meanY float64
	for _, y := range closes {
		meanY += y
	}
	meanY /= fn

	// OLS on the standardized index. The standardized x has zero mean by
	// construction, so the intercept is the mean of y.
	var sxy, sxx float64
	for i, y := range closes {
		x := (float64(i) - meanIdx) / stdIdx
		sxy += x * (y - meanY)
		sxx += x * x
	}
	slopeScaled := sxy / sxx
	interceptScaled := meanY

	fitted := make([]float64, n)
	for i := range closes {
		x := (float64(i) - meanIdx) / stdIdx
		fitted[i] = interceptScaled + slopeScaled*x
	}

	slope := slopeScaled / stdIdx
	intercept := interceptScaled - slopeScaled*meanIdx/stdIdx

	return models.TrendFit{
		Slope:     slope,
		Intercept: intercept,
		Fitted:    fitted,
		Formula:   FormatTrendFormula(slope, intercept),
	}, nil
}

// FormatTrendFormula renders the fitted line as a human-readable string,
// slope with 4 decimal digits and intercept with 2.
func FormatTrendFormula(slope, intercept float64) string {
	return fmt.Sprintf("price = %.4f * days + %.2f", slope, intercept)
}
