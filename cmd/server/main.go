package main

import (
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/it-techmonkey/yournextblinds-backend/app/catalog"
	"github.com/it-techmonkey/yournextblinds-backend/app/quotes"
	"github.com/it-techmonkey/yournextblinds-backend/config"
	"github.com/it-techmonkey/yournextblinds-backend/db"
	"github.com/it-techmonkey/yournextblinds-backend/models"
	"github.com/it-techmonkey/yournextblinds-backend/pricing"
	"github.com/it-techmonkey/yournextblinds-backend/storefront"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}
	gormDB, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	repo := models.NewCatalogRepository(gormDB)
	service := pricing.NewService(repo)
	resolver := storefront.NewResolver(repo, cfg.StorefrontCacheTTL, nil)

	catalogHandler := catalog.NewCatalogHandler(repo, service, resolver)
	quotesHandler := quotes.NewQuotesHandler(service, quotes.Tolerances{
		Quote:    cfg.QuoteTolerance,
		Checkout: cfg.CheckoutTolerance,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/catalog/bands", catalogHandler.HandleGetBands)
	mux.HandleFunc("GET /api/catalog/customizations", catalogHandler.HandleGetCustomizations)
	mux.HandleFunc("GET /api/catalog/products", catalogHandler.HandleGetProducts)
	mux.HandleFunc("GET /api/catalog/products/{code}", catalogHandler.HandleGetProduct)
	mux.HandleFunc("GET /api/storefront/{handle}/from-price", catalogHandler.HandleGetStorefrontPrice)
	mux.HandleFunc("POST /api/quotes", quotesHandler.HandleQuote)
	mux.HandleFunc("POST /api/quotes/validate", quotesHandler.HandleValidate)
	mux.HandleFunc("POST /api/checkout/validate", quotesHandler.HandleCheckoutValidate)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, requestLogger(logger, mux)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}
