package analytics

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"StockLens/internal/domain/models"
)

// tradingDaysPerYear annualizes daily return moments.
const tradingDaysPerYear = 252

// PortfolioConfig tunes the Monte-Carlo frontier sweep.
type PortfolioConfig struct {
	Portfolios   int
	RiskFreeRate float64
	Seed         int64 // 0 seeds from the clock
}

// OptimizePortfolio runs a Monte-Carlo efficient-frontier sweep over the
// given per-asset daily log-return series (all aligned to the same dates).
// It samples random long-only weight vectors, scores each by annualized
// return, volatility and Sharpe ratio, and returns the max-Sharpe sample
// together with every frontier point.
func OptimizePortfolio(returns [][]float64, cfg PortfolioConfig) (models.PortfolioMetrics, error) {
	nAssets := len(returns)
	if nAssets == 0 {
		return models.PortfolioMetrics{}, fmt.Errorf("no return series supplied")
	}
	nObs := len(returns[0])
	for i, r := range returns {
		if len(r) != nObs {
			return models.PortfolioMetrics{}, fmt.Errorf("return series %d length mismatch: %d vs %d", i, len(r), nObs)
		}
	}
	if nObs < 2 {
		return models.PortfolioMetrics{}, fmt.Errorf("portfolio optimization needs >= 2 return observations, got %d: %w", nObs, ErrInsufficientData)
	}
	if cfg.Portfolios <= 0 {
		cfg.Portfolios = 10000
	}

	// Annualized mean return per asset.
	mu := make([]float64, nAssets)
	for i, r := range returns {
		mu[i] = mean(r) * tradingDaysPerYear
	}

	// Annualized sample covariance matrix.
	cov := covarianceMatrix(returns)
	for i := range cov {
		for j := range cov[i] {
			cov[i][j] *= tradingDaysPerYear
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	best := models.PortfolioMetrics{Sharpe: math.Inf(-1)}
	points := make([]models.FrontierPoint, 0, cfg.Portfolios)
	w := make([]float64, nAssets)

	for k := 0; k < cfg.Portfolios; k++ {
		var sum float64
		for i := range w {
			w[i] = rng.Float64()
			sum += w[i]
		}
		if sum == 0 {
			k--
			continue
		}
		for i := range w {
			w[i] /= sum
		}

		ret := dot(w, mu)
		vol := math.Sqrt(quadraticForm(w, cov))
		sharpe := 0.0
		if vol > 0 {
			sharpe = (ret - cfg.RiskFreeRate) / vol
		}

		points = append(points, models.FrontierPoint{
			Volatility: vol,
			Return:     ret,
			Sharpe:     sharpe,
		})

		if sharpe > best.Sharpe {
			best.Weights = append(best.Weights[:0], w...)
			best.Return = ret
			best.Volatility = vol
			best.Sharpe = sharpe
		}
	}

	best.Data = points
	return best, nil
}

// LogReturns computes daily log returns r_t = ln(C_t / C_{t-1}). It
// returns a slice of length len(closes)-1, or nil when there are fewer
// than two closes.
func LogReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		cur := closes[i]
		if prev <= 0 || cur <= 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, math.Log(cur/prev))
	}
	return out
}

func covarianceMatrix(returns [][]float64) [][]float64 {
	n := len(returns)
	t := len(returns[0])
	means := make([]float64, n)
	for i, r := range returns {
		means[i] = mean(r)
	}

	cov := make([][]float64, n)
	for i := range cov {
		cov[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var s float64
			for k := 0; k < t; k++ {
				s += (returns[i][k] - means[i]) * (returns[j][k] - means[j])
			}
			c := s / float64(t-1)
			cov[i][j] = c
			cov[j][i] = c
		}
	}
	return cov
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func quadraticForm(w []float64, m [][]float64) float64 {
	var s float64
	for i := range w {
		for j := range w {
			s += w[i] * m[i][j] * w[j]
		}
	}
	if s < 0 {
		s = 0
	}
	return s
}
