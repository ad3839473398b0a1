package request

// SetMarketAPIKeyRequest is the payload for storing the market-data API key.
type SetMarketAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}
