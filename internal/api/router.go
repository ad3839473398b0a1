package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/api/middleware"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/coingecko"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/config"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	settingService *service.SettingService,
	purchaseService *service.PurchaseService,
	portfolioService *service.PortfolioService,
	priceClient *coingecko.Client,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService, settingService, priceClient)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
			r.Put("/market-api-key", systemHandler.SetMarketAPIKey)
		})

		r.Route("/purchase", func(r chi.Router) {
			purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
			r.Post("/", purchaseHandler.CreatePurchase)
			r.Get("/", purchaseHandler.ListPurchases)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/status", portfolioHandler.Status)
		})

		r.Get("/symbols", handlers.NewSymbolsHandler().List)
	})

	return r
}
