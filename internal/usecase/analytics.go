package usecase

import (
	"context"
	"errors"
	"time"

	"StockLens/internal/domain/models"
	drepo "StockLens/internal/domain/repository"
	"StockLens/internal/services/analytics"
	applogger "StockLens/pkg/logger"
	"StockLens/pkg/util"
)

// defaultFormula is the placeholder served when no trend could be fitted.
const defaultFormula = "price = 0 * days + 0"

// Config carries the analytics tunables from the application config.
type Config struct {
	ProviderName string
	WindowDays   int
	NameTTL      time.Duration
	Portfolios   int
	RiskFreeRate float64
	Seed         int64
}

// MarketAnalytics aggregates the price-series, hedge, and portfolio use
// cases over one quote provider. It holds no per-request state.
type MarketAnalytics struct {
	provider drepo.QuoteProvider
	names    drepo.NameCache
	metrics  drepo.Metrics
	logger   *applogger.Logger
	cfg      Config
}

func NewMarketAnalytics(provider drepo.QuoteProvider, names drepo.NameCache, metrics drepo.Metrics, logger *applogger.Logger, cfg Config) *MarketAnalytics {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 90
	}
	return &MarketAnalytics{
		provider: provider,
		names:    names,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
	}
}

// SeriesResult is the /get-data payload without regression.
type SeriesResult struct {
	Prices      map[string]float64 `json:"prices"`
	CompanyName string             `json:"companyName"`
}

// TrendResult is the /get-data payload with regression fields.
type TrendResult struct {
	Prices      map[string]float64 `json:"prices"`
	Regression  map[string]float64 `json:"regression"`
	CompanyName string             `json:"companyName"`
	Slope       float64            `json:"slope"`
	Intercept   float64            `json:"intercept"`
	Formula     string             `json:"formula"`
}

func emptySeriesResult(ticker string) *SeriesResult {
	return &SeriesResult{Prices: map[string]float64{}, CompanyName: ticker}
}

func emptyTrendResult(ticker string) *TrendResult {
	return &TrendResult{
		Prices:      map[string]float64{},
		Regression:  map[string]float64{},
		CompanyName: ticker,
		Formula:     defaultFormula,
	}
}

// fetchHistory resolves the date range and pulls history from the
// provider, recording metrics and refreshing the issuer-name cache.
func (a *MarketAnalytics) fetchHistory(ctx context.Context, symbol, startStr, endStr string) (*models.History, error) {
	from, to, err := util.ResolveRange(startStr, endStr, time.Now(), a.cfg.WindowDays)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	h, err := a.provider.History(ctx, symbol, from, to)
	if a.metrics != nil {
		a.metrics.RecordLatency("history_fetch", time.Since(start).Seconds())
	}
	if err != nil {
		if a.metrics != nil {
			if errors.Is(err, drepo.ErrNoData) {
				a.metrics.RecordError("no_data")
			} else {
				a.metrics.RecordError("provider")
			}
		}
		return nil, err
	}

	if a.metrics != nil {
		a.metrics.RecordFetch(a.cfg.ProviderName, symbol)
		if n := len(h.Bars); n > 0 {
			a.metrics.RecordLastClose(symbol, h.Bars[n-1].Close)
		}
	}

	if a.names != nil {
		if h.CompanyName == symbol {
			// provider meta had no display name, try the cache
			if cached, ok := a.names.GetName(symbol); ok {
				h.CompanyName = cached
			}
		} else {
			a.names.SetName(symbol, h.CompanyName, a.cfg.NameTTL)
		}
	}

	return h, nil
}

// logFetchFailure logs a swallowed fetch error at a level matching its
// kind: no-data is expected operation, anything else is a provider fault.
func (a *MarketAnalytics) logFetchFailure(symbol string, err error) {
	if a.logger == nil {
		return
	}
	if errors.Is(err, drepo.ErrNoData) {
		a.logger.Warn("no data for symbol", applogger.String("symbol", symbol), applogger.Error(err))
		return
	}
	a.logger.Error("history fetch failed", applogger.String("symbol", symbol), applogger.Error(err))
}

// Series returns the plain closing-price series for the ticker. All fetch
// failures degrade to an empty payload; the caller always gets a result.
func (a *MarketAnalytics) Series(ctx context.Context, ticker, startStr, endStr string) *SeriesResult {
	h, err := a.fetchHistory(ctx, ticker, startStr, endStr)
	if err != nil {
		a.logFetchFailure(ticker, err)
		return emptySeriesResult(ticker)
	}
	return &SeriesResult{
		Prices:      h.PriceMap(),
		CompanyName: h.CompanyName,
	}
}

// SeriesWithTrend returns the series plus a fitted trend line. Fetch or
// fit failures (including a sub-two-point series) degrade to the zeroed
// payload, matching the plain-series policy.
func (a *MarketAnalytics) SeriesWithTrend(ctx context.Context, ticker, startStr, endStr string) *TrendResult {
	h, err := a.fetchHistory(ctx, ticker, startStr, endStr)
	if err != nil {
		a.logFetchFailure(ticker, err)
		return emptyTrendResult(ticker)
	}

	fit, err := analytics.FitTrend(h.Closes())
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("trend fit skipped",
				applogger.String("symbol", ticker),
				applogger.Int("points", len(h.Bars)),
				applogger.Error(err),
			)
		}
		return emptyTrendResult(ticker)
	}

	dates := h.Dates()
	regression := make(map[string]float64, len(dates))
	for i, d := range dates {
		regression[d] = fit.Fitted[i]
	}

	return &TrendResult{
		Prices:      h.PriceMap(),
		Regression:  regression,
		CompanyName: h.CompanyName,
		Slope:       fit.Slope,
		Intercept:   fit.Intercept,
		Formula:     fit.Formula,
	}
}
