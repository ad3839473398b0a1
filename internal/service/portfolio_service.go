package service

import (
	"context"
	"sort"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
)

// PortfolioService computes portfolio valuations. It joins aggregated
// positions with cached price quotes and derives per-position and grand
// total profit/loss figures, all recomputed on every request.
type PortfolioService struct {
	purchaseService *PurchaseService
	priceService    *PriceService
}

// NewPortfolioService creates a new PortfolioService with the provided service dependencies.
func NewPortfolioService(purchaseService *PurchaseService, priceService *PriceService) *PortfolioService {
	return &PortfolioService{
		purchaseService: purchaseService,
		priceService:    priceService,
	}
}

// GetStatus values the portfolio against live prices. An empty ownerID covers
// all owners. Positions come back sorted by invested value, largest first.
//
// An empty portfolio returns an all-zero status without contacting the
// market-data source. A price fetch failure propagates as
// apperrors.ErrPriceFetchFailed; retrying is the caller's decision.
func (s *PortfolioService) GetStatus(ctx context.Context, ownerID string) (model.PortfolioStatus, error) {
	purchases, err := s.purchaseService.GetPurchases(ctx, ownerID)
	if err != nil {
		return model.PortfolioStatus{}, err
	}

	positions, err := AggregatePositions(purchases)
	if err != nil {
		return model.PortfolioStatus{}, err
	}

	status := model.PortfolioStatus{Positions: make([]model.PositionReport, 0, len(positions))}
	if len(positions) == 0 {
		return status, nil
	}

	quotes, err := s.priceService.GetPrices(ctx)
	if err != nil {
		return model.PortfolioStatus{}, err
	}

	quotesBySymbol := make(map[string]model.PriceQuote, len(quotes))
	for _, quote := range quotes {
		quotesBySymbol[quote.Symbol] = quote
	}

	sort.Slice(positions, func(i, j int) bool {
		return positions[i].TotalValue > positions[j].TotalValue
	})

	for _, position := range positions {
		// Symbols missing from the batch fall back to a zero quote
		quote := quotesBySymbol[position.Symbol]

		report := model.PositionReport{
			Position:         position,
			CurrentPrice:     quote.CurrentPrice,
			PriceChange24h:   quote.PriceChange24h,
			TotalHoldings:    quote.CurrentPrice * position.TotalQuantity,
			ProfitLossResult: ComputeProfitLoss(quote, position),
		}
		status.Positions = append(status.Positions, report)

		status.GrandTotalHoldings += report.TotalHoldings
		status.GrandTotalInvested += position.TotalValue
	}

	status.GrandTotalProfitLoss = status.GrandTotalHoldings - status.GrandTotalInvested
	if status.GrandTotalInvested > 0 {
		status.GrandTotalProfitLossPercentage = status.GrandTotalProfitLoss / status.GrandTotalInvested * 100
	}

	return status, nil
}
