package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// PriceRefreshScheduler keeps the price cache warm by force-refreshing it on
// a cron schedule, so interactive requests rarely pay for an upstream fetch.
// The TTL-based cache stays correct without it; this is an optimization.
type PriceRefreshScheduler struct {
	cron *cron.Cron
}

// NewPriceRefreshScheduler builds a scheduler that refreshes the given price
// service per the cron expression (e.g. "*/15 * * * *").
func NewPriceRefreshScheduler(priceService *PriceService, schedule string) (*PriceRefreshScheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := priceService.Refresh(ctx); err != nil {
			log.Printf("Scheduled price refresh failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid price refresh schedule %q: %w", schedule, err)
	}

	return &PriceRefreshScheduler{cron: c}, nil
}

// Start begins running the schedule in its own goroutine.
func (s *PriceRefreshScheduler) Start() {
	s.cron.Start()
}

// Stop stops the schedule; running jobs complete.
func (s *PriceRefreshScheduler) Stop() {
	s.cron.Stop()
}
