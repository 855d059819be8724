package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds everything the server reads from the environment. Price
// tolerances live here so no handler ever hardcodes one.
type Config struct {
	Addr               string
	DatabaseURL        string
	QuoteTolerance     decimal.Decimal
	CheckoutTolerance  decimal.Decimal
	StorefrontCacheTTL time.Duration
}

// Load reads configuration from the environment, loading a .env file first
// when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/yournextblinds?sslmode=disable"),
	}

	var err error
	if cfg.QuoteTolerance, err = decimalEnv("QUOTE_TOLERANCE", "0.01"); err != nil {
		return Config{}, err
	}
	if cfg.CheckoutTolerance, err = decimalEnv("CHECKOUT_TOLERANCE", "0.50"); err != nil {
		return Config{}, err
	}
	if cfg.StorefrontCacheTTL, err = durationEnv("STOREFRONT_CACHE_TTL", "5m"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func decimalEnv(key, def string) (decimal.Decimal, error) {
	raw := getEnv(key, def)
	val, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return val, nil
}

func durationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return val, nil
}
