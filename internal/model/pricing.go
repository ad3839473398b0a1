package model

// PriceQuote holds the cached market data for one supported symbol.
// PriceChange24h is a percentage and stays zero when the market-data source
// does not report a 24h change for the asset.
type PriceQuote struct {
	Symbol         string  `json:"symbol"`
	CurrentPrice   float64 `json:"currentPrice"`
	PriceChange24h float64 `json:"priceChange24h"`
}

// ProfitLossResult contains the derived profit/loss figures for one position.
//
// ProfitLoss24hDelta is the change in unrealized profit/loss over the last
// 24 hours, not the absolute profit/loss as it stood 24 hours ago.
// ProfitLoss24hPercentage is that delta relative to the capital invested.
type ProfitLossResult struct {
	CurrentProfitLoss           float64 `json:"currentProfitLoss"`
	CurrentProfitLossPercentage float64 `json:"currentProfitLossPercentage"`
	ProfitLoss24hDelta          float64 `json:"profitLoss24hDelta"`
	ProfitLoss24hPercentage     float64 `json:"profitLoss24hPercentage"`
}

// PositionReport joins one position with its live quote and profit/loss figures.
type PositionReport struct {
	Position
	CurrentPrice   float64 `json:"currentPrice"`
	PriceChange24h float64 `json:"priceChange24h"`
	TotalHoldings  float64 `json:"totalHoldings"` // currentPrice * totalQuantity
	ProfitLossResult
}

// PortfolioStatus is the full valuation of a portfolio at request time.
// Grand totals are derived from the summed holdings and invested amounts,
// never from averaging per-position percentages.
type PortfolioStatus struct {
	Positions                      []PositionReport `json:"positions"`
	GrandTotalHoldings             float64          `json:"grandTotalHoldings"`
	GrandTotalInvested             float64          `json:"grandTotalInvested"`
	GrandTotalProfitLoss           float64          `json:"grandTotalProfitLoss"`
	GrandTotalProfitLossPercentage float64          `json:"grandTotalProfitLossPercentage"`
}
