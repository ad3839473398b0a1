package handlers

import (
	"errors"
	"net/http"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/api/request"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/api/response"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/service"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/validation"
)

// PurchaseHandler handles HTTP requests for purchase endpoints.
// It parses requests and delegates business logic to the purchaseService.
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler with the provided service dependency.
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// CreatePurchase handles POST requests to record a new purchase.
//
// Endpoint: POST /api/purchase
// Request Body: CreatePurchaseRequest (symbol, totalSpent, quantity, ownerId)
// Response: 201 Created with the stored Purchase, including its derived price
// Error: 400 Bad Request if the body is invalid or validation fails
// Error: 500 Internal Server Error if persisting fails
func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePurchaseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePurchase(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	purchase, err := h.purchaseService.AddPurchase(r.Context(), req.Symbol, req.TotalSpent, req.Quantity, req.OwnerID)
	if err != nil {
		if isInvalidInput(err) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to record purchase", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, purchase)
}

// ListPurchases handles GET requests to list recorded purchases.
//
// Endpoint: GET /api/purchase?owner={ownerId}
// Response: 200 OK with array of Purchase; owner is optional
// Error: 500 Internal Server Error if retrieval fails
func (h *PurchaseHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner")

	purchases, err := h.purchaseService.GetPurchases(r.Context(), ownerID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve purchases", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, purchases)
}

// isInvalidInput reports whether err is one of the user-input rejections.
func isInvalidInput(err error) bool {
	return errors.Is(err, apperrors.ErrUnsupportedSymbol) ||
		errors.Is(err, apperrors.ErrNonPositiveQuantity) ||
		errors.Is(err, apperrors.ErrNonPositiveSpend) ||
		errors.Is(err, apperrors.ErrMissingOwner)
}
