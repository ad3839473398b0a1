package service_test

import (
	"math"
	"testing"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/service"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s = %f; want %f", name, got, want)
	}
}

func TestComputeProfitLoss(t *testing.T) {
	t.Run("derives current and 24h figures", func(t *testing.T) {
		// Bought 2 coins at an average of 100; now at 150 after rising 10%
		// over the day. The price a day ago was 150/1.10 = 136.36, so the
		// 24h figure is the day's change in profit, 100 - 72.73 = 27.27.
		position := model.Position{Symbol: "BTC", AveragePrice: 100, TotalQuantity: 2, TotalValue: 200}
		quote := model.PriceQuote{Symbol: "BTC", CurrentPrice: 150, PriceChange24h: 10}

		result := service.ComputeProfitLoss(quote, position)

		approx(t, "CurrentProfitLoss", result.CurrentProfitLoss, 100)
		approx(t, "CurrentProfitLossPercentage", result.CurrentProfitLossPercentage, 50)
		approx(t, "ProfitLoss24hDelta", result.ProfitLoss24hDelta, 27.27)
		approx(t, "ProfitLoss24hPercentage", result.ProfitLoss24hPercentage, 13.64)
	})

	t.Run("24h delta differs from the 24h-ago absolute profit", func(t *testing.T) {
		position := model.Position{AveragePrice: 100, TotalQuantity: 2}
		quote := model.PriceQuote{CurrentPrice: 150, PriceChange24h: 10}

		result := service.ComputeProfitLoss(quote, position)

		// The profit as of 24h ago was about 72.73; the delta must not be that
		if math.Abs(result.ProfitLoss24hDelta-72.73) < 0.01 {
			t.Error("ProfitLoss24hDelta equals the 24h-ago absolute profit; want the day's change instead")
		}
	})

	t.Run("negative change yields negative delta", func(t *testing.T) {
		position := model.Position{AveragePrice: 100, TotalQuantity: 1}
		quote := model.PriceQuote{CurrentPrice: 90, PriceChange24h: -10}

		result := service.ComputeProfitLoss(quote, position)

		// Price a day ago was 90/0.9 = 100, so the day lost 10 per coin
		approx(t, "CurrentProfitLoss", result.CurrentProfitLoss, -10)
		approx(t, "ProfitLoss24hDelta", result.ProfitLoss24hDelta, -10)
		approx(t, "ProfitLoss24hPercentage", result.ProfitLoss24hPercentage, -10)
	})

	t.Run("absent 24h change treats delta as zero", func(t *testing.T) {
		position := model.Position{AveragePrice: 100, TotalQuantity: 2}
		quote := model.PriceQuote{CurrentPrice: 150} // source reported no change

		result := service.ComputeProfitLoss(quote, position)

		if result.ProfitLoss24hDelta != 0 {
			t.Errorf("Expected zero 24h delta, got %f", result.ProfitLoss24hDelta)
		}
		if result.ProfitLoss24hPercentage != 0 {
			t.Errorf("Expected zero 24h percentage, got %f", result.ProfitLoss24hPercentage)
		}
		approx(t, "CurrentProfitLoss", result.CurrentProfitLoss, 100)
	})

	t.Run("zero average price never divides", func(t *testing.T) {
		position := model.Position{AveragePrice: 0, TotalQuantity: 2}
		quote := model.PriceQuote{CurrentPrice: 150, PriceChange24h: 10}

		result := service.ComputeProfitLoss(quote, position)

		if result.CurrentProfitLossPercentage != 0 {
			t.Errorf("Expected zero percentage for zero average price, got %f", result.CurrentProfitLossPercentage)
		}
		if result.ProfitLoss24hPercentage != 0 {
			t.Errorf("Expected zero 24h percentage for zero invested, got %f", result.ProfitLoss24hPercentage)
		}
		for name, v := range map[string]float64{
			"CurrentProfitLoss":           result.CurrentProfitLoss,
			"CurrentProfitLossPercentage": result.CurrentProfitLossPercentage,
			"ProfitLoss24hDelta":          result.ProfitLoss24hDelta,
			"ProfitLoss24hPercentage":     result.ProfitLoss24hPercentage,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%s is non-finite: %f", name, v)
			}
		}
	})

	t.Run("a -100%% change cannot divide by zero", func(t *testing.T) {
		position := model.Position{AveragePrice: 100, TotalQuantity: 1}
		quote := model.PriceQuote{CurrentPrice: 0, PriceChange24h: -100}

		result := service.ComputeProfitLoss(quote, position)

		if math.IsNaN(result.ProfitLoss24hDelta) || math.IsInf(result.ProfitLoss24hDelta, 0) {
			t.Errorf("ProfitLoss24hDelta is non-finite: %f", result.ProfitLoss24hDelta)
		}
	})
}
