package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"StockLens/internal/domain/models"
	drepo "StockLens/internal/domain/repository"
	xhttp "StockLens/pkg/http"
)

// ProviderName labels this provider in logs and metrics.
const ProviderName = "yahoo"

// Client implements QuoteProvider backed by the Yahoo Finance v8 chart API.
type Client struct {
	baseURL   string
	userAgent string
	client    *xhttp.Client
}

// New creates a new Yahoo Finance quote provider.
func New(baseURL, userAgent string, timeout time.Duration) *Client {
	if userAgent == "" {
		userAgent = "Mozilla/5.0"
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// chartResponse is the response structure from the Yahoo chart API.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string `json:"symbol"`
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func at(xs []*float64, i int) float64 {
	if i >= len(xs) {
		return 0
	}
	return deref(xs[i])
}

// History fetches daily bars for symbol over [from, to].
func (c *Client) History(ctx context.Context, symbol string, from, to time.Time) (*models.History, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol))

	var chart chartResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: "GET",
		URL:    u,
		Headers: map[string]string{
			"User-Agent": c.userAgent,
		},
		QueryParams: map[string][]string{
			"interval": {"1d"},
			"period1":  {strconv.FormatInt(from.Unix(), 10)},
			// period2 is exclusive of the last second; push it past the
			// end date so [from, to] is covered inclusively.
			"period2": {strconv.FormatInt(to.AddDate(0, 0, 1).Unix(), 10)},
			"events":  {"history"},
		},
	}, &chart)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}

	if chart.Chart.Error != nil {
		if chart.Chart.Error.Code == "Not Found" {
			return nil, fmt.Errorf("yahoo %s: %w", symbol, drepo.ErrNoData)
		}
		return nil, fmt.Errorf("yahoo api error for %s: %s", symbol, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, drepo.ErrNoData)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, drepo.ErrNoData)
	}
	quote := result.Indicators.Quote[0]

	bars := make([]models.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := at(quote.Open, i)
		h := at(quote.High, i)
		l := at(quote.Low, i)
		cl := at(quote.Close, i)
		if o == 0 && h == 0 && l == 0 && cl == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, models.Bar{
			Date:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  cl,
			Volume: at(quote.Volume, i),
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, drepo.ErrNoData)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	name := result.Meta.LongName
	if name == "" {
		name = result.Meta.ShortName
	}
	if name == "" {
		name = symbol
	}

	return &models.History{
		Symbol:      symbol,
		CompanyName: name,
		Bars:        bars,
	}, nil
}

var _ drepo.QuoteProvider = (*Client)(nil)
