package models

// HedgeAnalysis describes the statistical relationship between two
// instruments' closing-price series, used to size an offsetting position.
type HedgeAnalysis struct {
	Ticker1      string  `json:"ticker1"`
	Ticker2      string  `json:"ticker2"`
	HedgeRatio   float64 `json:"hedge_ratio"`
	Correlation  float64 `json:"correlation"`
	SpreadMean   float64 `json:"spread_mean"`
	SpreadStd    float64 `json:"spread_std"`
	SpreadZScore float64 `json:"spread_zscore"`
	Observations int     `json:"observations"`
}
