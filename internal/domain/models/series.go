package models

import "time"

// Bar represents one daily OHLCV record for a traded instrument.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// History is the closing-price series for one ticker over a date range,
// plus the issuer's display name. Dates carry trading days only; no
// contiguity is guaranteed.
type History struct {
	Symbol      string
	CompanyName string
	Bars        []Bar
}

// Closes returns the closing prices in date order.
func (h *History) Closes() []float64 {
	out := make([]float64, len(h.Bars))
	for i, b := range h.Bars {
		out[i] = b.Close
	}
	return out
}

// Dates returns the trading dates in ISO YYYY-MM-DD form, in order.
func (h *History) Dates() []string {
	out := make([]string, len(h.Bars))
	for i, b := range h.Bars {
		out[i] = b.Date.Format("2006-01-02")
	}
	return out
}

// PriceMap shapes the series into the {date: close} mapping the API serves.
func (h *History) PriceMap() map[string]float64 {
	out := make(map[string]float64, len(h.Bars))
	for _, b := range h.Bars {
		out[b.Date.Format("2006-01-02")] = b.Close
	}
	return out
}
