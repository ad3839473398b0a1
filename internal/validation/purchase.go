package validation

import (
	"fmt"
	"strings"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/api/request"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/symbols"
)

// ValidateCreatePurchase validates a purchase creation request.
//
// Required fields:
//   - symbol: must be one of the supported tickers (case-insensitive)
//   - totalSpent: must be positive
//   - quantity: must be positive (a zero quantity would make the derived
//     per-coin price non-finite)
//   - ownerId: must be non-empty
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateCreatePurchase(req request.CreatePurchaseRequest) error {
	errors := make(map[string]string)

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		errors["symbol"] = "symbol is required"
	} else if !symbols.IsSupported(symbol) {
		errors["symbol"] = fmt.Sprintf("unsupported symbol: %s", req.Symbol)
	}

	if req.TotalSpent <= 0 {
		errors["totalSpent"] = "totalSpent must be positive"
	}

	if req.Quantity <= 0 {
		errors["quantity"] = "quantity must be positive"
	}

	if strings.TrimSpace(req.OwnerID) == "" {
		errors["ownerId"] = "ownerId is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
