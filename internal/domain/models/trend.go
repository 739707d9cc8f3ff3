package models

// TrendFit holds the least-squares line fitted against a zero-based day
// index, expressed in unscaled price-per-day units, plus the per-date
// predicted values.
type TrendFit struct {
	Slope     float64
	Intercept float64
	Fitted    []float64
	Formula   string
}
