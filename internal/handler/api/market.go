package api

import (
	"time"

	"StockLens/internal/domain/models"
	"StockLens/internal/service/metrics"
	"StockLens/internal/usecase"
	xhttp "StockLens/pkg/http"
	applogger "StockLens/pkg/logger"
	"StockLens/pkg/util"

	"github.com/labstack/echo/v4"
)

// MarketHandler exposes the analytics endpoints over Echo.
type MarketHandler struct {
	logger *applogger.Logger
	agg    *usecase.MarketAnalytics
}

func NewMarketHandler(logger *applogger.Logger, agg *usecase.MarketAnalytics) *MarketHandler {
	metrics.Register()
	return &MarketHandler{logger: logger, agg: agg}
}

func (h *MarketHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/get-data", h.GetData)
	e.GET("/analyze-hedge", h.AnalyzeHedge)
	e.GET("/portfolio-metrics", h.PortfolioMetrics)
}

// GetData serves the closing-price series, optionally with a fitted trend
// line. It always answers 200: fetch failures degrade to an empty payload
// inside the use case.
func (h *MarketHandler) GetData(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.EndpointLatency.WithLabelValues("get_data").Observe(time.Since(start).Seconds()) }()

	req := &models.GetDataRequest{}
	if msg := xhttp.ReadAndValidateRequest(c, req); msg != "" {
		return xhttp.BadRequestResponse(c, msg)
	}

	if util.ParseBoolDefault(req.Regression, false) {
		return xhttp.OKResponse(c, h.agg.SeriesWithTrend(c.Request().Context(), req.Ticker, req.StartDate, req.EndDate))
	}
	return xhttp.OKResponse(c, h.agg.Series(c.Request().Context(), req.Ticker, req.StartDate, req.EndDate))
}

// AnalyzeHedge serves the pairwise hedge relationship between two tickers.
func (h *MarketHandler) AnalyzeHedge(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.EndpointLatency.WithLabelValues("analyze_hedge").Observe(time.Since(start).Seconds()) }()

	req := &models.HedgeRequest{}
	if msg := xhttp.ReadAndValidateRequest(c, req); msg != "" {
		return xhttp.BadRequestResponse(c, msg)
	}
	if req.Ticker1 == "" || req.Ticker2 == "" {
		return xhttp.BadRequestResponse(c, "Both tickers are required")
	}

	res, err := h.agg.Hedge(c.Request().Context(), req.Ticker1, req.Ticker2, req.StartDate, req.EndDate)
	if err != nil {
		metrics.EndpointErrors.WithLabelValues("analyze_hedge").Inc()
		if h.logger != nil {
			h.logger.Error("hedge analysis error", applogger.Error(err))
		}
		return xhttp.InternalErrorResponse(c, err)
	}
	return xhttp.OKResponse(c, res)
}

// PortfolioMetrics serves the Monte-Carlo efficient-frontier optimization
// for a comma-separated ticker list.
func (h *MarketHandler) PortfolioMetrics(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.EndpointLatency.WithLabelValues("portfolio_metrics").Observe(time.Since(start).Seconds())
	}()

	req := &models.PortfolioRequest{}
	if msg := xhttp.ReadAndValidateRequest(c, req); msg != "" {
		return xhttp.BadRequestResponse(c, msg)
	}
	tickers := util.SplitSymbols(req.Tickers)
	if len(tickers) == 0 {
		return xhttp.BadRequestResponse(c, "At least one ticker is required")
	}

	res, err := h.agg.Portfolio(c.Request().Context(), tickers, req.StartDate, req.EndDate)
	if err != nil {
		metrics.EndpointErrors.WithLabelValues("portfolio_metrics").Inc()
		if h.logger != nil {
			h.logger.Error("portfolio metrics error", applogger.Error(err))
		}
		return xhttp.InternalErrorResponse(c, err)
	}
	return xhttp.OKResponse(c, res)
}
