// Package coingecko provides a client for the CoinGecko simple-price API,
// the external market-data source for current prices and 24h changes.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/symbols"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// Client fetches price data from the CoinGecko API. All price requests are
// batched: one GET covers every requested coin id.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu     sync.RWMutex
	apiKey string
}

// NewClient creates a CoinGecko client. The HTTP timeout bounds how long a
// cache-miss fetch can stall a caller; the API itself sets none.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// WithBaseURL overrides the API base URL. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// SetAPIKey sets the optional CoinGecko API key sent with every request.
// Safe for concurrent use.
func (c *Client) SetAPIKey(apiKey string) {
	c.mu.Lock()
	c.apiKey = apiKey
	c.mu.Unlock()
}

// SimplePrice fetches current prices and 24h percentage changes for the
// given coin ids in one batch request, quoted in the given fiat currency.
// Any transport failure or non-200 status reports ErrPriceFetchFailed.
func (c *Client) SimplePrice(ctx context.Context, ids []string, currency string) (SimplePriceResponse, error) {
	values := url.Values{}
	values.Set("ids", strings.Join(ids, ","))
	values.Set("vs_currencies", currency)
	values.Set("include_24hr_change", "true")
	endpoint := c.baseURL + "/simple/price?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", apperrors.ErrPriceFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	c.mu.RLock()
	apiKey := c.apiKey
	c.mu.RUnlock()
	if apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPriceFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s",
			apperrors.ErrPriceFetchFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload SimplePriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", apperrors.ErrPriceFetchFailed, err)
	}

	return payload, nil
}

// Quotes converts a simple-price payload into one quote per supported
// ticker, in ticker order. Coins absent from the payload, or payloads
// missing the 24h-change field, produce zero values for those fields
// rather than failing the batch.
func Quotes(payload SimplePriceResponse, currency string) []model.PriceQuote {
	quotes := make([]model.PriceQuote, 0, len(symbols.Tickers()))
	for _, ticker := range symbols.Tickers() {
		coinID, _ := symbols.CoinID(ticker)
		entry, ok := payload[coinID]
		if !ok {
			quotes = append(quotes, model.PriceQuote{Symbol: ticker})
			continue
		}
		quotes = append(quotes, model.PriceQuote{
			Symbol:         ticker,
			CurrentPrice:   entry[currency],
			PriceChange24h: entry[currency+"_24h_change"],
		})
	}
	return quotes
}
