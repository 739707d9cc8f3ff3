package analytics

import (
	"math"
	"testing"
)

func TestOptimizePortfolioProperties(t *testing.T) {
	// Two assets: one strong performer, one flat and noisy.
	r1 := make([]float64, 120)
	r2 := make([]float64, 120)
	for i := range r1 {
		r1[i] = 0.002 + 0.001*math.Sin(float64(i))
		r2[i] = 0.0001 * math.Cos(float64(i)*1.3)
	}

	cfg := PortfolioConfig{Portfolios: 500, RiskFreeRate: 0.01, Seed: 7}
	res, err := OptimizePortfolio([][]float64{r1, r2}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Weights) != 2 {
		t.Fatalf("weights = %v, want 2 entries", res.Weights)
	}
	var sum float64
	for _, w := range res.Weights {
		if w < 0 {
			t.Fatalf("negative weight %v", w)
		}
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("weights sum = %v, want 1", sum)
	}

	if len(res.Data) != cfg.Portfolios {
		t.Fatalf("frontier points = %d, want %d", len(res.Data), cfg.Portfolios)
	}
	for _, p := range res.Data {
		if p.Volatility < 0 {
			t.Fatalf("negative volatility %v", p.Volatility)
		}
		if p.Volatility > 0 {
			want := (p.Return - cfg.RiskFreeRate) / p.Volatility
			if math.Abs(p.Sharpe-want) > 1e-9 {
				t.Fatalf("sharpe = %v, want %v", p.Sharpe, want)
			}
		}
		if p.Sharpe > res.Sharpe+1e-12 {
			t.Fatalf("point sharpe %v exceeds reported best %v", p.Sharpe, res.Sharpe)
		}
	}

	if res.Volatility > 0 {
		want := (res.Return - cfg.RiskFreeRate) / res.Volatility
		if math.Abs(res.Sharpe-want) > 1e-9 {
			t.Fatalf("best sharpe = %v, want %v", res.Sharpe, want)
		}
	}

	// the better asset should dominate the max-Sharpe portfolio
	if res.Weights[0] < res.Weights[1] {
		t.Fatalf("expected weight on the stronger asset, got %v", res.Weights)
	}
}

func TestOptimizePortfolioDeterministicWithSeed(t *testing.T) {
	r := [][]float64{{0.01, -0.005, 0.007, 0.002}, {0.002, 0.001, -0.001, 0.003}}
	cfg := PortfolioConfig{Portfolios: 50, Seed: 42}

	a, err := OptimizePortfolio(r, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := OptimizePortfolio(r, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Sharpe != b.Sharpe || a.Return != b.Return || a.Volatility != b.Volatility {
		t.Fatal("same seed must reproduce the same optimum")
	}
}

func TestOptimizePortfolioErrors(t *testing.T) {
	if _, err := OptimizePortfolio(nil, PortfolioConfig{}); err == nil {
		t.Fatal("expected error for no series")
	}
	if _, err := OptimizePortfolio([][]float64{{0.01}}, PortfolioConfig{}); err == nil {
		t.Fatal("expected error for single observation")
	}
	if _, err := OptimizePortfolio([][]float64{{0.01, 0.02}, {0.01}}, PortfolioConfig{}); err == nil {
		t.Fatal("expected error for ragged series")
	}
}

func TestLogReturns(t *testing.T) {
	closes := []float64{100, 110, 99}
	rets := LogReturns(closes)
	if len(rets) != 2 {
		t.Fatalf("returns = %d, want 2", len(rets))
	}
	if math.Abs(rets[0]-math.Log(1.1)) > 1e-12 {
		t.Fatalf("rets[0] = %v", rets[0])
	}
	if LogReturns([]float64{5}) != nil {
		t.Fatal("single close yields nil returns")
	}
}
