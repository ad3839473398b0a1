package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
)

// PurchaseBuilder provides a fluent interface for creating test purchases.
//
// Example usage:
//
//	// Simple creation with defaults
//	purchase := testutil.NewPurchase().Build(t, db)
//
//	// Customized purchase
//	purchase := testutil.NewPurchase().
//	    WithSymbol("ETH").
//	    WithSpend(500, 0.25).
//	    WithOwner("owner-2").
//	    Build(t, db)
type PurchaseBuilder struct {
	ID         string
	Symbol     string
	TotalSpent float64
	Quantity   float64
	Date       time.Time
	OwnerID    string
}

// NewPurchase creates a PurchaseBuilder with sensible defaults.
func NewPurchase() *PurchaseBuilder {
	return &PurchaseBuilder{
		ID:         MakeID(),
		Symbol:     "BTC",
		TotalSpent: 1000,
		Quantity:   0.02,
		Date:       time.Now().UTC().Truncate(time.Second),
		OwnerID:    "owner-1",
	}
}

// WithID sets a custom ID.
func (b *PurchaseBuilder) WithID(id string) *PurchaseBuilder {
	b.ID = id
	return b
}

// WithSymbol sets a custom symbol.
func (b *PurchaseBuilder) WithSymbol(symbol string) *PurchaseBuilder {
	b.Symbol = symbol
	return b
}

// WithSpend sets the amount spent and the quantity received.
func (b *PurchaseBuilder) WithSpend(totalSpent, quantity float64) *PurchaseBuilder {
	b.TotalSpent = totalSpent
	b.Quantity = quantity
	return b
}

// WithDate sets a custom purchase date.
func (b *PurchaseBuilder) WithDate(date time.Time) *PurchaseBuilder {
	b.Date = date
	return b
}

// WithOwner sets a custom owner ID.
func (b *PurchaseBuilder) WithOwner(ownerID string) *PurchaseBuilder {
	b.OwnerID = ownerID
	return b
}

// Build creates the purchase in the database and returns it.
// The per-coin price is derived from TotalSpent / Quantity, as the
// purchase service would at write time.
func (b *PurchaseBuilder) Build(t *testing.T, db *sql.DB) model.Purchase {
	t.Helper()

	price := b.TotalSpent / b.Quantity

	query := `
		INSERT INTO purchase (id, symbol, price, quantity, total_spent, date, owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Symbol, price, b.Quantity, b.TotalSpent,
		b.Date.Format(time.RFC3339), b.OwnerID)
	if err != nil {
		t.Fatalf("Failed to create test purchase: %v", err)
	}

	return model.Purchase{
		ID:         b.ID,
		Symbol:     b.Symbol,
		Price:      price,
		Quantity:   b.Quantity,
		TotalSpent: b.TotalSpent,
		Date:       b.Date,
		OwnerID:    b.OwnerID,
	}
}
