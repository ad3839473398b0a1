package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/api"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/coingecko"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/config"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/database"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/repository"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	purchaseRepo := repository.NewPurchaseRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	settingService, err := service.NewSettingService(settingRepo, cfg.Market.FernetKey)
	if err != nil {
		log.Fatalf("Failed to create setting service: %v", err)
	}
	purchaseService := service.NewPurchaseService(purchaseRepo)

	// Market-data client, with the stored API key when one is configured
	priceClient := coingecko.NewClient()
	if apiKey, err := settingService.MarketAPIKey(context.Background()); err != nil {
		log.Printf("Could not load market api key: %v", err)
	} else if apiKey != "" {
		priceClient.SetAPIKey(apiKey)
	}

	priceService := service.NewPriceService(priceClient, cfg.Market.Currency, cfg.Market.CacheTTL)
	portfolioService := service.NewPortfolioService(purchaseService, priceService)

	// Optional background cache warmer
	if cfg.Market.RefreshSchedule != "" {
		scheduler, err := service.NewPriceRefreshScheduler(priceService, cfg.Market.RefreshSchedule)
		if err != nil {
			log.Fatalf("Failed to create price refresh scheduler: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Printf("Price refresh scheduled: %s", cfg.Market.RefreshSchedule)
	}

	// Create router
	router := api.NewRouter(systemService, settingService, purchaseService, portfolioService, priceClient, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
