package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/repository"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/service"
)

// NewTestPurchaseService creates a PurchaseService backed by the given test database.
func NewTestPurchaseService(t *testing.T, db *sql.DB) *service.PurchaseService {
	t.Helper()

	purchaseRepo := repository.NewPurchaseRepository(db)

	return service.NewPurchaseService(purchaseRepo)
}

// NewTestPriceService creates a PriceService backed by the given mock source,
// quoting in USD with an hour-long TTL so cached data never expires mid-test.
func NewTestPriceService(t *testing.T, source service.PriceSource) *service.PriceService {
	t.Helper()

	return service.NewPriceService(source, "usd", time.Hour)
}

// NewTestPortfolioService creates a PortfolioService over the given test
// database and mock price source.
func NewTestPortfolioService(t *testing.T, db *sql.DB, source service.PriceSource) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		NewTestPurchaseService(t, db),
		NewTestPriceService(t, source),
	)
}

// NewTestSettingService creates a SettingService backed by the given test
// database. fernetKey may be empty for plaintext storage.
func NewTestSettingService(t *testing.T, db *sql.DB, fernetKey string) *service.SettingService {
	t.Helper()

	settingRepo := repository.NewSettingRepository(db)

	settingService, err := service.NewSettingService(settingRepo, fernetKey)
	if err != nil {
		t.Fatalf("Failed to create setting service: %v", err)
	}
	return settingService
}

// NewTestSystemService creates a SystemService backed by the given test database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}
