package service

import (
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
)

// ComputeProfitLoss derives the profit/loss figures for one position against
// its live quote.
//
// The 24h figures are deltas: the change in unrealized profit/loss over the
// last day, derived by backing out the price 24 hours ago from the quote's
// 24h percentage change. They are not the absolute profit/loss as it stood
// 24 hours ago. A zero PriceChange24h means the source reported no change
// data, so the delta is zero.
//
// Percentage denominators that are zero or negative yield zero instead of
// propagating NaN or Infinity.
func ComputeProfitLoss(quote model.PriceQuote, position model.Position) model.ProfitLossResult {
	currentProfitLoss := (quote.CurrentPrice - position.AveragePrice) * position.TotalQuantity

	var currentPct float64
	if position.AveragePrice > 0 {
		currentPct = (quote.CurrentPrice - position.AveragePrice) / position.AveragePrice * 100
	}

	var delta24h float64
	if factor := 1 + quote.PriceChange24h/100; quote.PriceChange24h != 0 && factor > 0 {
		priceThen := quote.CurrentPrice / factor
		profitLossThen := (priceThen - position.AveragePrice) * position.TotalQuantity
		delta24h = currentProfitLoss - profitLossThen
	}

	var delta24hPct float64
	if invested := position.AveragePrice * position.TotalQuantity; invested > 0 {
		delta24hPct = delta24h / invested * 100
	}

	return model.ProfitLossResult{
		CurrentProfitLoss:           currentProfitLoss,
		CurrentProfitLossPercentage: currentPct,
		ProfitLoss24hDelta:          delta24h,
		ProfitLoss24hPercentage:     delta24hPct,
	}
}
