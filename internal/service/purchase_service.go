package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/repository"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/symbols"
)

// PurchaseService handles recording and listing cryptocurrency purchases.
// All input validation happens here, before the store is touched.
type PurchaseService struct {
	purchaseRepo *repository.PurchaseRepository
}

// NewPurchaseService creates a new PurchaseService with the provided repository dependency.
func NewPurchaseService(purchaseRepo *repository.PurchaseRepository) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
	}
}

// AddPurchase validates, normalizes and persists a new purchase.
// The symbol is uppercased and the per-coin price derived from
// totalSpent / quantity before the record is stored. Invalid input is
// rejected without mutating the store.
func (s *PurchaseService) AddPurchase(ctx context.Context, symbol string, totalSpent, quantity float64, ownerID string) (model.Purchase, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if !symbols.IsSupported(symbol) {
		return model.Purchase{}, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedSymbol, symbol)
	}
	if quantity <= 0 {
		return model.Purchase{}, apperrors.ErrNonPositiveQuantity
	}
	if totalSpent <= 0 {
		return model.Purchase{}, apperrors.ErrNonPositiveSpend
	}
	if strings.TrimSpace(ownerID) == "" {
		return model.Purchase{}, apperrors.ErrMissingOwner
	}

	purchase := model.Purchase{
		ID:         uuid.New().String(),
		Symbol:     symbol,
		Price:      totalSpent / quantity,
		Quantity:   quantity,
		TotalSpent: totalSpent,
		Date:       time.Now().UTC(),
		OwnerID:    ownerID,
	}

	if err := s.purchaseRepo.Append(ctx, purchase); err != nil {
		return model.Purchase{}, fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
	}

	return purchase, nil
}

// GetPurchases lists purchases in chronological order, optionally filtered
// to one owner. An empty ownerID lists every owner's purchases.
func (s *PurchaseService) GetPurchases(ctx context.Context, ownerID string) ([]model.Purchase, error) {
	purchases, err := s.purchaseRepo.ListAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
	}
	return purchases, nil
}
