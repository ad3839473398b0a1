package testutil

import (
	"context"
	"sync"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/coingecko"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/symbols"
)

// MockPriceSource is a mock implementation of service.PriceSource for
// testing. It returns predefined payloads instead of calling the API and
// counts how often it was asked.
type MockPriceSource struct {
	mu sync.Mutex

	// MockResponse is the payload to return from SimplePrice
	MockResponse coingecko.SimplePriceResponse
	// MockError is the error to return from SimplePrice
	MockError error
	// Calls tracks how many times SimplePrice was called
	Calls int
}

// NewMockPriceSource creates a mock price source with an empty payload.
func NewMockPriceSource() *MockPriceSource {
	return &MockPriceSource{
		MockResponse: coingecko.SimplePriceResponse{},
	}
}

// SimplePrice returns the configured payload or error.
func (m *MockPriceSource) SimplePrice(_ context.Context, _ []string, _ string) (coingecko.SimplePriceResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.MockResponse, nil
}

// CallCount returns how many times SimplePrice was called.
func (m *MockPriceSource) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// WithError configures the mock to return the specified error.
func (m *MockPriceSource) WithError(err error) *MockPriceSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MockError = err
	return m
}

// WithResponse configures the mock to return the specified payload.
func (m *MockPriceSource) WithResponse(resp coingecko.SimplePriceResponse) *MockPriceSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MockError = nil
	m.MockResponse = resp
	return m
}

// WithPrice adds one ticker's price and 24h change to the mock payload,
// keyed the way the real API keys it.
func (m *MockPriceSource) WithPrice(ticker, currency string, price, change24h float64) *MockPriceSource {
	coinID, ok := symbols.CoinID(ticker)
	if !ok {
		coinID = ticker
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.MockError = nil
	if m.MockResponse == nil {
		m.MockResponse = coingecko.SimplePriceResponse{}
	}
	m.MockResponse[coinID] = map[string]float64{
		currency:                 price,
		currency + "_24h_change": change24h,
	}
	return m
}
