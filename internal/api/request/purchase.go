package request

// CreatePurchaseRequest is the payload for recording a new purchase.
type CreatePurchaseRequest struct {
	Symbol     string  `json:"symbol"`
	TotalSpent float64 `json:"totalSpent"`
	Quantity   float64 `json:"quantity"`
	OwnerID    string  `json:"ownerId"`
}
