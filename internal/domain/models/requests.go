package models

// Requests for the analytics HTTP endpoints. Defined in domain for
// consistency and reuse.

type GetDataRequest struct {
	Ticker     string `query:"ticker" json:"ticker" default:"AAPL"`
	StartDate  string `query:"start_date" json:"start_date"`
	EndDate    string `query:"end_date" json:"end_date"`
	Regression string `query:"regression" json:"regression" default:"false"`
}

type HedgeRequest struct {
	Ticker1   string `query:"ticker1" json:"ticker1"`
	Ticker2   string `query:"ticker2" json:"ticker2"`
	StartDate string `query:"start_date" json:"start_date"`
	EndDate   string `query:"end_date" json:"end_date"`
}

type PortfolioRequest struct {
	Tickers   string `query:"tickers" json:"tickers"`
	StartDate string `query:"start_date" json:"start_date"`
	EndDate   string `query:"end_date" json:"end_date"`
}
