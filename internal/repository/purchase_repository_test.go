package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/repository"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/testutil"
)

func TestPurchaseRepository_AppendAndList(t *testing.T) {
	t.Run("append is visible to a following list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPurchaseRepository(db)

		purchase := model.Purchase{
			ID:         testutil.MakeID(),
			Symbol:     "BTC",
			Price:      50000,
			Quantity:   0.02,
			TotalSpent: 1000,
			Date:       time.Now().UTC().Truncate(time.Second),
			OwnerID:    "owner-1",
		}

		if err := repo.Append(context.Background(), purchase); err != nil {
			t.Fatalf("Append() returned unexpected error: %v", err)
		}

		purchases, err := repo.ListAll(context.Background(), "")
		if err != nil {
			t.Fatalf("ListAll() returned unexpected error: %v", err)
		}

		if len(purchases) != 1 {
			t.Fatalf("Expected 1 purchase, got %d", len(purchases))
		}

		got := purchases[0]
		if got.ID != purchase.ID || got.Symbol != "BTC" || got.Price != 50000 ||
			got.Quantity != 0.02 || got.TotalSpent != 1000 || got.OwnerID != "owner-1" {
			t.Errorf("Listed purchase %+v does not match appended %+v", got, purchase)
		}
		if !got.Date.Equal(purchase.Date) {
			t.Errorf("Expected date %v, got %v", purchase.Date, got.Date)
		}
	})

	t.Run("returns empty slice when no purchases exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPurchaseRepository(db)

		purchases, err := repo.ListAll(context.Background(), "")
		if err != nil {
			t.Fatalf("ListAll() returned unexpected error: %v", err)
		}

		if purchases == nil {
			t.Error("Expected non-nil slice, got nil")
		}
		if len(purchases) != 0 {
			t.Errorf("Expected empty slice, got %d purchases", len(purchases))
		}
	})

	t.Run("filters by owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPurchaseRepository(db)

		testutil.NewPurchase().WithOwner("owner-1").Build(t, db)
		testutil.NewPurchase().WithOwner("owner-1").WithSymbol("ETH").Build(t, db)
		testutil.NewPurchase().WithOwner("owner-2").Build(t, db)

		mine, err := repo.ListAll(context.Background(), "owner-1")
		if err != nil {
			t.Fatalf("ListAll() returned unexpected error: %v", err)
		}
		if len(mine) != 2 {
			t.Errorf("Expected 2 purchases for owner-1, got %d", len(mine))
		}
		for _, p := range mine {
			if p.OwnerID != "owner-1" {
				t.Errorf("Expected only owner-1 purchases, got one for %s", p.OwnerID)
			}
		}

		all, err := repo.ListAll(context.Background(), "")
		if err != nil {
			t.Fatalf("ListAll() returned unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("Expected 3 purchases for all owners, got %d", len(all))
		}
	})

	t.Run("lists in chronological order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPurchaseRepository(db)

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		testutil.NewPurchase().WithDate(base.AddDate(0, 0, 2)).Build(t, db)
		testutil.NewPurchase().WithDate(base).Build(t, db)
		testutil.NewPurchase().WithDate(base.AddDate(0, 0, 1)).Build(t, db)

		purchases, err := repo.ListAll(context.Background(), "")
		if err != nil {
			t.Fatalf("ListAll() returned unexpected error: %v", err)
		}

		if len(purchases) != 3 {
			t.Fatalf("Expected 3 purchases, got %d", len(purchases))
		}
		for i := 1; i < len(purchases); i++ {
			if purchases[i-1].Date.After(purchases[i].Date) {
				t.Errorf("Purchases out of order: %v after %v", purchases[i-1].Date, purchases[i].Date)
			}
		}
	})
}
