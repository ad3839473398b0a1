package handlers

import (
	"errors"
	"net/http"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/api/response"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio valuation endpoints.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Status handles GET requests for the live portfolio valuation.
// Positions are returned sorted by invested value with per-position and
// grand total profit/loss figures.
//
// Endpoint: GET /api/portfolio/status?owner={ownerId}
// Response: 200 OK with PortfolioStatus; owner is optional
// Error: 502 Bad Gateway if the market-data source failed; retryable, any
// previously cached prices remain valid for later requests
// Error: 500 Internal Server Error on storage or calculation failures
func (h *PortfolioHandler) Status(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner")

	status, err := h.portfolioService.GetStatus(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPriceFetchFailed) {
			response.RespondError(w, http.StatusBadGateway, apperrors.ErrPriceFetchFailed.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to compute portfolio status", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, status)
}
