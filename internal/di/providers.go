package di

import (
	"fmt"

	"StockLens/internal/domain/repository"
	"StockLens/internal/handler/api"
	icache "StockLens/internal/service/cache"
	"StockLens/internal/service/yahoo"
	"StockLens/internal/usecase"
	"StockLens/pkg/config"
	applogger "StockLens/pkg/logger"
	pkgmetrics "StockLens/pkg/metrics"
	"StockLens/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return pkgmetrics.New()
}

// ProvideQuoteProvider creates the Yahoo Finance chart client.
func ProvideQuoteProvider(cfg *config.Config) repository.QuoteProvider {
	return yahoo.New(cfg.MarketData.BaseURL, cfg.MarketData.UserAgent, cfg.MarketData.Timeout)
}

// ProvideNameCache creates the issuer-name cache: Redis when configured,
// an in-process TTL map otherwise.
func ProvideNameCache(cfg *config.Config) repository.NameCache {
	if cfg.NameCache.Redis.Enabled {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.NameCache.Redis.Addr,
			Password: cfg.NameCache.Redis.Password,
			DB:       cfg.NameCache.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvideMarketAnalytics creates the analytics use-case aggregator.
func ProvideMarketAnalytics(
	provider repository.QuoteProvider,
	names repository.NameCache,
	metrics repository.Metrics,
	logger *applogger.Logger,
	cfg *config.Config,
) *usecase.MarketAnalytics {
	return usecase.NewMarketAnalytics(provider, names, metrics, logger, usecase.Config{
		ProviderName: yahoo.ProviderName,
		WindowDays:   cfg.Analytics.WindowDays,
		NameTTL:      cfg.NameCache.TTL,
		Portfolios:   cfg.Analytics.Portfolios,
		RiskFreeRate: cfg.Analytics.RiskFreeRate,
		Seed:         cfg.Analytics.Seed,
	})
}

// ProvideMarketHandler creates the Echo handler for the analytics endpoints.
func ProvideMarketHandler(logger *applogger.Logger, agg *usecase.MarketAnalytics) *api.MarketHandler {
	return api.NewMarketHandler(logger, agg)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	handler *api.MarketHandler,
	names repository.NameCache,
) *server.App {
	return server.New(cfg, logger, handler, names)
}
