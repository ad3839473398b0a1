package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/coingecko"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/symbols"
)

// PriceSource is the external market-data dependency of the price cache.
// Implemented by coingecko.Client; tests substitute a mock.
type PriceSource interface {
	SimplePrice(ctx context.Context, ids []string, currency string) (coingecko.SimplePriceResponse, error)
}

// PriceService caches quotes for all supported symbols, refreshed in one
// batch request when the cache is older than the TTL. It is the only piece
// of shared mutable state in the process and is safe for concurrent use:
// reads take the mutex briefly, and concurrent cache misses converge on a
// single upstream request via singleflight. A failed refresh never replaces
// previously cached quotes.
type PriceService struct {
	source   PriceSource
	currency string
	ttl      time.Duration

	mu        sync.Mutex
	quotes    []model.PriceQuote
	fetchedAt time.Time

	group singleflight.Group
}

// NewPriceService creates a PriceService quoting in the given fiat currency,
// caching results for ttl.
func NewPriceService(source PriceSource, currency string, ttl time.Duration) *PriceService {
	return &PriceService{
		source:   source,
		currency: currency,
		ttl:      ttl,
	}
}

// GetPrices returns a quote for every supported symbol. While the last
// successful fetch is younger than the TTL the cached batch is returned
// as-is; callers must treat the slice as read-only.
func (s *PriceService) GetPrices(ctx context.Context) ([]model.PriceQuote, error) {
	s.mu.Lock()
	if s.quotes != nil && time.Since(s.fetchedAt) < s.ttl {
		quotes := s.quotes
		s.mu.Unlock()
		return quotes, nil
	}
	s.mu.Unlock()

	return s.refresh(ctx)
}

// Refresh fetches a fresh batch regardless of cache age. Used by the
// scheduled cache warmer.
func (s *PriceService) Refresh(ctx context.Context) ([]model.PriceQuote, error) {
	return s.refresh(ctx)
}

func (s *PriceService) refresh(ctx context.Context) ([]model.PriceQuote, error) {
	v, err, _ := s.group.Do("prices", func() (any, error) {
		payload, err := s.source.SimplePrice(ctx, symbols.CoinIDs(), s.currency)
		if err != nil {
			// Leave the previous cache untouched
			return nil, err
		}

		quotes := coingecko.Quotes(payload, s.currency)

		s.mu.Lock()
		s.quotes = quotes
		s.fetchedAt = time.Now()
		s.mu.Unlock()

		return quotes, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]model.PriceQuote), nil
}
