package handlers

import (
	"net/http"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/api/response"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/symbols"
)

// SymbolsHandler handles HTTP requests for the supported symbol set.
type SymbolsHandler struct{}

// NewSymbolsHandler creates a new SymbolsHandler.
func NewSymbolsHandler() *SymbolsHandler {
	return &SymbolsHandler{}
}

// SymbolResponse is one supported ticker and its market-data identifier.
type SymbolResponse struct {
	Symbol string `json:"symbol"`
	CoinID string `json:"coinId"`
}

// List handles GET requests for the supported symbols.
//
// Endpoint: GET /api/symbols
// Response: 200 OK with array of SymbolResponse in alphabetical order
func (h *SymbolsHandler) List(w http.ResponseWriter, _ *http.Request) {
	tickers := symbols.Tickers()

	result := make([]SymbolResponse, 0, len(tickers))
	for _, ticker := range tickers {
		coinID, _ := symbols.CoinID(ticker)
		result = append(result, SymbolResponse{Symbol: ticker, CoinID: coinID})
	}

	response.RespondJSON(w, http.StatusOK, result)
}
