package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StockLens/internal/domain/models"
	drepo "StockLens/internal/domain/repository"
	"StockLens/internal/usecase"

	"github.com/labstack/echo/v4"
)

type stubProvider struct {
	histories map[string]*models.History
	errs      map[string]error
	calls     []string
}

func (s *stubProvider) History(_ context.Context, symbol string, _, _ time.Time) (*models.History, error) {
	s.calls = append(s.calls, symbol)
	if err, ok := s.errs[symbol]; ok {
		return nil, err
	}
	if h, ok := s.histories[symbol]; ok {
		return h, nil
	}
	return nil, drepo.ErrNoData
}

func linearHistory(symbol, name string, start time.Time, closes ...float64) *models.History {
	h := &models.History{Symbol: symbol, CompanyName: name}
	for i, c := range closes {
		h.Bars = append(h.Bars, models.Bar{Date: start.AddDate(0, 0, i), Close: c})
	}
	return h
}

func newTestServer(p drepo.QuoteProvider) (*echo.Echo, *stubProvider) {
	sp, _ := p.(*stubProvider)
	agg := usecase.NewMarketAnalytics(p, nil, nil, nil, usecase.Config{
		ProviderName: "stub",
		WindowDays:   90,
		Portfolios:   150,
		Seed:         7,
	})
	e := echo.New()
	NewMarketHandler(nil, agg).RegisterRoutes(e)
	return e, sp
}

func do(t *testing.T, e *echo.Echo, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return rec, body
}

func TestGetDataDefaultsToAAPL(t *testing.T) {
	base := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	p := &stubProvider{histories: map[string]*models.History{
		"AAPL": linearHistory("AAPL", "Apple Inc.", base, 180, 181.5, 179),
	}}
	e, sp := newTestServer(p)

	rec, body := do(t, e, "/get-data")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(sp.calls) != 1 || sp.calls[0] != "AAPL" {
		t.Fatalf("provider calls = %v, want [AAPL]", sp.calls)
	}
	if body["companyName"] != "Apple Inc." {
		t.Fatalf("companyName = %v", body["companyName"])
	}
	prices := body["prices"].(map[string]any)
	if prices["2024-05-07"].(float64) != 181.5 {
		t.Fatalf("prices = %v", prices)
	}
	if _, ok := body["regression"]; ok {
		t.Fatal("regression must be absent without the flag")
	}
}

func TestGetDataAlwaysOKOnFailure(t *testing.T) {
	p := &stubProvider{errs: map[string]error{"ZZZZ": errors.New("connection refused")}}
	e, _ := newTestServer(p)

	rec, body := do(t, e, "/get-data?ticker=ZZZZ")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even on provider failure", rec.Code)
	}
	if body["companyName"] != "ZZZZ" {
		t.Fatalf("companyName = %v, want ticker echoed", body["companyName"])
	}
	if len(body["prices"].(map[string]any)) != 0 {
		t.Fatalf("prices = %v, want empty", body["prices"])
	}
}

func TestGetDataWithRegression(t *testing.T) {
	base := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	closes := make([]float64, 8)
	for i := range closes {
		closes[i] = 50 + 3*float64(i)
	}
	p := &stubProvider{histories: map[string]*models.History{
		"MSFT": linearHistory("MSFT", "Microsoft Corporation", base, closes...),
	}}
	e, _ := newTestServer(p)

	rec, body := do(t, e, "/get-data?ticker=MSFT&regression=true")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["formula"] != "price = 3.0000 * days + 50.00" {
		t.Fatalf("formula = %v", body["formula"])
	}
	if len(body["regression"].(map[string]any)) != len(closes) {
		t.Fatalf("regression = %v", body["regression"])
	}
}

func TestGetDataRegressionFlagOffByGarbage(t *testing.T) {
	base := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	p := &stubProvider{histories: map[string]*models.History{
		"AAPL": linearHistory("AAPL", "Apple Inc.", base, 1, 2, 3),
	}}
	e, _ := newTestServer(p)

	_, body := do(t, e, "/get-data?regression=yes")
	if _, ok := body["regression"]; ok {
		t.Fatal("only the literal \"true\" should enable regression")
	}
}

func TestAnalyzeHedgeRequiresBothTickers(t *testing.T) {
	e, _ := newTestServer(&stubProvider{})

	for _, target := range []string{
		"/analyze-hedge",
		"/analyze-hedge?ticker1=AAPL",
		"/analyze-hedge?ticker2=MSFT",
	} {
		rec, body := do(t, e, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
		if body["error"] != "Both tickers are required" {
			t.Fatalf("%s: error = %v", target, body["error"])
		}
	}
}

func TestAnalyzeHedgeReturnsAnalysis(t *testing.T) {
	base := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	p := &stubProvider{histories: map[string]*models.History{
		"AAAA": linearHistory("AAAA", "A Corp", base, 110, 112, 116, 114),
		"BBBB": linearHistory("BBBB", "B Corp", base, 50, 51, 53, 52),
	}}
	e, _ := newTestServer(p)

	rec, body := do(t, e, "/analyze-hedge?ticker1=AAAA&ticker2=BBBB")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", rec.Code, body)
	}
	if body["ticker1"] != "AAAA" || body["ticker2"] != "BBBB" {
		t.Fatalf("tickers = %v / %v", body["ticker1"], body["ticker2"])
	}
	if got := body["hedge_ratio"].(float64); got < 1.999 || got > 2.001 {
		t.Fatalf("hedge_ratio = %v, want 2", got)
	}
	if body["observations"].(float64) != 4 {
		t.Fatalf("observations = %v", body["observations"])
	}
}

func TestAnalyzeHedgeSurfacesFetchFailure(t *testing.T) {
	p := &stubProvider{errs: map[string]error{"BBBB": errors.New("boom")}}
	base := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	p.histories = map[string]*models.History{
		"AAAA": linearHistory("AAAA", "A Corp", base, 1, 2, 3),
	}
	e, _ := newTestServer(p)

	rec, body := do(t, e, "/analyze-hedge?ticker1=AAAA&ticker2=BBBB")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body["error"] == "" {
		t.Fatal("expected an error message")
	}
}

func TestPortfolioMetricsRequiresTickers(t *testing.T) {
	e, _ := newTestServer(&stubProvider{})

	for _, target := range []string{
		"/portfolio-metrics",
		"/portfolio-metrics?tickers=",
		"/portfolio-metrics?tickers=%2C%2C", // only commas
	} {
		rec, body := do(t, e, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
		if body["error"] != "At least one ticker is required" {
			t.Fatalf("%s: error = %v", target, body["error"])
		}
	}
}

func TestPortfolioMetricsSplitsTickerList(t *testing.T) {
	base := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	p := &stubProvider{histories: map[string]*models.History{
		"AAPL": linearHistory("AAPL", "Apple Inc.", base, 100, 101, 103, 102, 104, 105),
		"MSFT": linearHistory("MSFT", "Microsoft", base, 400, 402, 399, 405, 407, 406),
	}}
	e, sp := newTestServer(p)

	rec, body := do(t, e, "/portfolio-metrics?tickers=aapl,%20msft")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", rec.Code, body)
	}
	if len(sp.calls) != 2 || sp.calls[0] != "AAPL" || sp.calls[1] != "MSFT" {
		t.Fatalf("provider calls = %v", sp.calls)
	}
	weights := body["final_weights"].([]any)
	if len(weights) != 2 {
		t.Fatalf("final_weights = %v", weights)
	}
	var sum float64
	for _, w := range weights {
		sum += w.(float64)
	}
	if sum < 0.999 || sum > 1.001 {
		t.Fatalf("weights sum = %v", sum)
	}
	if len(body["data"].([]any)) != 150 {
		t.Fatalf("data = %d points, want 150", len(body["data"].([]any)))
	}
}

func TestPortfolioMetricsSurfacesFailure(t *testing.T) {
	p := &stubProvider{errs: map[string]error{"ZZZZ": drepo.ErrNoData}}
	e, _ := newTestServer(p)

	rec, body := do(t, e, "/portfolio-metrics?tickers=ZZZZ")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body["error"] == "" {
		t.Fatal("expected an error message")
	}
}
