package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
)

// PurchaseRepository provides data access methods for the purchase table.
// The collection is append-only: purchases are never updated or deleted.
type PurchaseRepository struct {
	db *sql.DB
}

// NewPurchaseRepository creates a new PurchaseRepository with the provided database connection.
func NewPurchaseRepository(db *sql.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Append inserts a purchase record. The single INSERT is durable before the
// call returns, so a subsequent ListAll on the same connection pool observes
// the new record.
func (r *PurchaseRepository) Append(ctx context.Context, p model.Purchase) error {
	query := `
		INSERT INTO purchase (id, symbol, price, quantity, total_spent, date, owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Symbol,
		p.Price,
		p.Quantity,
		p.TotalSpent,
		p.Date.UTC().Format(time.RFC3339),
		p.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}

	return nil
}

// ListAll retrieves all purchases in chronological order, optionally filtered
// to one owner. An empty ownerID returns every owner's purchases.
func (r *PurchaseRepository) ListAll(ctx context.Context, ownerID string) ([]model.Purchase, error) {
	query := `
		SELECT id, symbol, price, quantity, total_spent, date, owner_id
		FROM purchase
	`
	args := []any{}
	if ownerID != "" {
		query += ` WHERE owner_id = ?`
		args = append(args, ownerID)
	}
	query += ` ORDER BY date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase table: %w", err)
	}
	defer rows.Close()

	purchases := make([]model.Purchase, 0)
	for rows.Next() {
		var p model.Purchase
		var dateStr string

		err := rows.Scan(
			&p.ID,
			&p.Symbol,
			&p.Price,
			&p.Quantity,
			&p.TotalSpent,
			&dateStr,
			&p.OwnerID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase table results: %w", err)
		}

		p.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse purchase date: %w", err)
		}

		purchases = append(purchases, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase table: %w", err)
	}

	return purchases, nil
}
