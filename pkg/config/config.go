package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// PivotCurrency is the abbreviation of the intermediate currency used to
	// compose rates when no direct provider rate exists.
	PivotCurrency string
	// PivotCacheTTL bounds how long the pivot currency record is served from
	// cache. Long by default since the record changes rarely.
	PivotCacheTTL time.Duration
	// CurrencyCacheTTL and CurrencyCacheSize bound the currency-by-id lookup
	// cache used during evaluation bursts.
	CurrencyCacheTTL  time.Duration
	CurrencyCacheSize int

	// RateLimit is an ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PIVOT_CURRENCY", "USD")
	viper.SetDefault("PIVOT_CACHE_TTL", "1h")
	viper.SetDefault("CURRENCY_CACHE_TTL", "30s")
	viper.SetDefault("CURRENCY_CACHE_SIZE", 256)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.PivotCurrency = viper.GetString("PIVOT_CURRENCY")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CurrencyCacheSize = viper.GetInt("CURRENCY_CACHE_SIZE")

	pivotTTL, err := time.ParseDuration(viper.GetString("PIVOT_CACHE_TTL"))
	if err != nil {
		pivotTTL = time.Hour
		log.Printf("Warning: Invalid value for PIVOT_CACHE_TTL ('%s'). Defaulting to %s.\n", viper.GetString("PIVOT_CACHE_TTL"), pivotTTL)
	}
	cfg.PivotCacheTTL = pivotTTL

	currencyTTL, err := time.ParseDuration(viper.GetString("CURRENCY_CACHE_TTL"))
	if err != nil {
		currencyTTL = 30 * time.Second
		log.Printf("Warning: Invalid value for CURRENCY_CACHE_TTL ('%s'). Defaulting to %s.\n", viper.GetString("CURRENCY_CACHE_TTL"), currencyTTL)
	}
	cfg.CurrencyCacheTTL = currencyTTL

	return cfg, nil
}
