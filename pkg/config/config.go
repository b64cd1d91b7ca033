package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	CurrenciesFile string // Path to the flat currency store
	RatesFile      string // Path to the flat rate store
	RateLimit      string // limiter formatted rate, e.g. "60-M"
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. The store paths default to hidden files in the user's home
// directory; they are configurable defaults, not a hard contract.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: could not resolve home directory (%v). Store files default to the working directory.\n", err)
		home = "."
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CURRENCIES_FILE", filepath.Join(home, ".currencies.txt"))
	viper.SetDefault("RATES_FILE", filepath.Join(home, ".rates.txt"))
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		CurrenciesFile: viper.GetString("CURRENCIES_FILE"),
		RatesFile:      viper.GetString("RATES_FILE"),
		RateLimit:      viper.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	return cfg, nil
}
