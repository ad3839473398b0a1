package service

import (
	"fmt"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
)

// AggregatePositions folds purchase records into one position per distinct
// symbol, accumulating total quantity and cost basis. The average price is
// computed in a second pass once all quantities are summed, so it is the
// quantity-weighted average and never a partially-accumulated one.
//
// Output order is unspecified; ordering is a presentation concern.
func AggregatePositions(purchases []model.Purchase) ([]model.Position, error) {
	grouped := make(map[string]*model.Position)
	order := make([]string, 0)

	for _, purchase := range purchases {
		pos, ok := grouped[purchase.Symbol]
		if !ok {
			pos = &model.Position{Symbol: purchase.Symbol}
			grouped[purchase.Symbol] = pos
			order = append(order, purchase.Symbol)
		}
		pos.TotalQuantity += purchase.Quantity
		pos.TotalValue += purchase.Price * purchase.Quantity
		pos.Purchases = append(pos.Purchases, purchase)
	}

	positions := make([]model.Position, 0, len(order))
	for _, symbol := range order {
		pos := grouped[symbol]
		// Write-time validation guarantees positive quantities. Guard the
		// division anyway so a corrupt store surfaces an error, not NaN.
		if pos.TotalQuantity <= 0 {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDegenerateQuantity, symbol)
		}
		pos.AveragePrice = pos.TotalValue / pos.TotalQuantity
		positions = append(positions, *pos)
	}

	return positions, nil
}
