package model

// Position represents the aggregated holding of one symbol for one owner.
// It is recomputed from purchases on every query and never persisted.
type Position struct {
	Symbol        string     `json:"symbol"`
	TotalQuantity float64    `json:"totalQuantity"` // Sum of constituent purchase quantities
	TotalValue    float64    `json:"totalValue"`    // Cost basis: sum of totalSpent
	AveragePrice  float64    `json:"averagePrice"`  // Quantity-weighted: totalValue / totalQuantity
	Purchases     []Purchase `json:"purchases"`
}
