package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/api/handlers"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/testutil"
)

// TestPurchaseHandler_CreatePurchase tests the POST /api/purchase endpoint.
//
// WHY: This is the only write path into the system. Everything downstream
// (positions, valuations) assumes a purchase row is normalized at write time,
// so the contract here has to hold.
func TestPurchaseHandler_CreatePurchase(t *testing.T) {
	t.Run("POST /api/purchase returns 201 with the stored purchase", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPurchaseService(t, db)
		handler := handlers.NewPurchaseHandler(svc)

		body := `{"symbol": "btc", "totalSpent": 1000, "quantity": 0.02, "ownerId": "owner-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchase", strings.NewReader(body))
		w := httptest.NewRecorder()

		// Execute
		handler.CreatePurchase(w, req)

		// Assert
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Purchase
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.Symbol != "BTC" {
			t.Errorf("Expected normalized symbol 'BTC', got '%s'", response.Symbol)
		}
		if response.Price != 50000 {
			t.Errorf("Expected derived price 50000, got %f", response.Price)
		}
		if response.ID == "" {
			t.Error("Expected a generated purchase ID")
		}
	})

	t.Run("POST /api/purchase returns 400 for malformed JSON", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPurchaseService(t, db)
		handler := handlers.NewPurchaseHandler(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/purchase", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("POST /api/purchase returns 400 for an unsupported symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPurchaseService(t, db)
		handler := handlers.NewPurchaseHandler(svc)

		body := `{"symbol": "NOTACOIN", "totalSpent": 100, "quantity": 1, "ownerId": "owner-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchase", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}

		// Nothing should have been stored
		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM purchase`).Scan(&count); err != nil {
			t.Fatalf("Failed to count purchases: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected no stored purchases after rejection, got %d", count)
		}
	})

	t.Run("POST /api/purchase returns 400 for a zero quantity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPurchaseService(t, db)
		handler := handlers.NewPurchaseHandler(svc)

		body := `{"symbol": "BTC", "totalSpent": 100, "quantity": 0, "ownerId": "owner-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchase", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("POST /api/purchase returns 400 for a missing owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPurchaseService(t, db)
		handler := handlers.NewPurchaseHandler(svc)

		body := `{"symbol": "BTC", "totalSpent": 100, "quantity": 1}`
		req := httptest.NewRequest(http.MethodPost, "/api/purchase", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreatePurchase(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestPurchaseHandler_ListPurchases(t *testing.T) {
	t.Run("GET /api/purchase returns 200 with empty array", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPurchaseService(t, db)
		handler := handlers.NewPurchaseHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/purchase", nil)
		w := httptest.NewRecorder()

		handler.ListPurchases(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response []model.Purchase
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d items", len(response))
		}
	})

	t.Run("GET /api/purchase returns all recorded purchases", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPurchaseService(t, db)
		handler := handlers.NewPurchaseHandler(svc)

		p1 := testutil.NewPurchase().WithSymbol("BTC").Build(t, db)
		p2 := testutil.NewPurchase().WithSymbol("ETH").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/purchase", nil)
		w := httptest.NewRecorder()

		handler.ListPurchases(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response []model.Purchase
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 2 {
			t.Fatalf("Expected 2 purchases, got %d", len(response))
		}

		got := map[string]bool{response[0].ID: true, response[1].ID: true}
		if !got[p1.ID] || !got[p2.ID] {
			t.Errorf("Expected purchases %s and %s, got %+v", p1.ID, p2.ID, response)
		}
	})

	t.Run("GET /api/purchase?owner= filters by owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPurchaseService(t, db)
		handler := handlers.NewPurchaseHandler(svc)

		testutil.NewPurchase().WithOwner("owner-1").Build(t, db)
		testutil.NewPurchase().WithOwner("owner-2").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/purchase?owner=owner-2", nil)
		w := httptest.NewRecorder()

		handler.ListPurchases(w, req)

		var response []model.Purchase
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 1 || response[0].OwnerID != "owner-2" {
			t.Errorf("Expected only owner-2's purchase, got %+v", response)
		}
	})
}
