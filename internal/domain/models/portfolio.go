package models

// FrontierPoint is one sampled portfolio on the risk/return plane.
type FrontierPoint struct {
	Volatility float64 `json:"volatility"`
	Return     float64 `json:"return"`
	Sharpe     float64 `json:"sharpe_ratio"`
}

// PortfolioMetrics is the result of the Monte-Carlo efficient-frontier
// sweep: the max-Sharpe portfolio plus every sampled frontier point.
// Weights are ordered like the requested ticker list.
type PortfolioMetrics struct {
	Weights    []float64       `json:"final_weights"`
	Return     float64         `json:"final_return"`
	Volatility float64         `json:"final_volatility"`
	Sharpe     float64         `json:"final_sharpe_ratio"`
	Data       []FrontierPoint `json:"data"`
}
