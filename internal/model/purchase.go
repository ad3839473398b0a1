package model

import "time"

// Purchase represents a single recorded cryptocurrency buy.
// Records are immutable once created. Symbol is stored uppercased and Price
// is derived from TotalSpent / Quantity at write time, never at read time.
type Purchase struct {
	ID         string    `json:"id"`
	Symbol     string    `json:"symbol"`
	Price      float64   `json:"price"`      // Cost per coin, derived at creation
	Quantity   float64   `json:"quantity"`   // Coins received, always > 0
	TotalSpent float64   `json:"totalSpent"` // Capital spent in the display currency
	Date       time.Time `json:"date"`
	OwnerID    string    `json:"ownerId"`
}
