package repository

import (
	"context"
	"errors"
	"time"

	"StockLens/internal/domain/models"
)

// ErrNoData signals that the provider answered but had no rows for the
// ticker and range (unknown symbol, no trading days). It is distinct from
// transport or decode failures so callers can tell "no data" apart from
// "provider unavailable".
var ErrNoData = errors.New("no data for symbol in range")

// QuoteProvider fetches daily OHLC history plus issuer metadata from an
// external market-data source.
type QuoteProvider interface {
	// History returns daily bars for symbol over [from, to], sorted by
	// date ascending, together with the issuer display name. Returns an
	// error wrapping ErrNoData when the range holds no trading days.
	History(ctx context.Context, symbol string, from, to time.Time) (*models.History, error)
}

// NameCache caches issuer display names. Price series are never cached.
type NameCache interface {
	GetName(symbol string) (string, bool)
	SetName(symbol, name string, ttl time.Duration)
}

// Metrics records operational counters for the service.
type Metrics interface {
	RecordFetch(provider, symbol string)
	RecordError(kind string)
	RecordLastClose(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
