package usecase

import (
	"context"
	"fmt"

	"StockLens/internal/domain/models"
	"StockLens/internal/services/analytics"
)

// Hedge fetches both tickers over the same range, aligns them on common
// trading dates, and computes the hedge relationship. Unlike the series
// path, failures here propagate to the caller.
func (a *MarketAnalytics) Hedge(ctx context.Context, ticker1, ticker2, startStr, endStr string) (models.HedgeAnalysis, error) {
	h1, err := a.fetchHistory(ctx, ticker1, startStr, endStr)
	if err != nil {
		return models.HedgeAnalysis{}, fmt.Errorf("fetch %s: %w", ticker1, err)
	}
	h2, err := a.fetchHistory(ctx, ticker2, startStr, endStr)
	if err != nil {
		return models.HedgeAnalysis{}, fmt.Errorf("fetch %s: %w", ticker2, err)
	}

	_, series := analytics.AlignCloses(h1, h2)
	res, err := analytics.AnalyzeHedge(ticker1, ticker2, series[0], series[1])
	if err != nil {
		return models.HedgeAnalysis{}, fmt.Errorf("hedge %s/%s: %w", ticker1, ticker2, err)
	}
	return res, nil
}
