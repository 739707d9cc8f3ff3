package usecase

import (
	"context"
	"fmt"

	"StockLens/internal/domain/models"
	"StockLens/internal/services/analytics"
)

// Portfolio fetches every ticker, aligns the series on common trading
// dates, and runs the Monte-Carlo efficient-frontier sweep. Weights in
// the result follow the order of tickers. Errors propagate: this is the
// one endpoint that surfaces failures instead of degrading.
func (a *MarketAnalytics) Portfolio(ctx context.Context, tickers []string, startStr, endStr string) (models.PortfolioMetrics, error) {
	if len(tickers) == 0 {
		return models.PortfolioMetrics{}, fmt.Errorf("at least one ticker is required")
	}

	histories := make([]*models.History, 0, len(tickers))
	for _, t := range tickers {
		h, err := a.fetchHistory(ctx, t, startStr, endStr)
		if err != nil {
			return models.PortfolioMetrics{}, fmt.Errorf("fetch %s: %w", t, err)
		}
		histories = append(histories, h)
	}

	dates, series := analytics.AlignCloses(histories...)
	if len(dates) < 3 {
		return models.PortfolioMetrics{}, fmt.Errorf("only %d overlapping trading days for %v: %w",
			len(dates), tickers, analytics.ErrInsufficientData)
	}

	returns := make([][]float64, len(series))
	for i, closes := range series {
		returns[i] = analytics.LogReturns(closes)
	}

	res, err := analytics.OptimizePortfolio(returns, analytics.PortfolioConfig{
		Portfolios:   a.cfg.Portfolios,
		RiskFreeRate: a.cfg.RiskFreeRate,
		Seed:         a.cfg.Seed,
	})
	if err != nil {
		return models.PortfolioMetrics{}, fmt.Errorf("optimize %v: %w", tickers, err)
	}
	return res, nil
}
