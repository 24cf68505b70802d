package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StorageDriver string
	LedgerPath    string
	SQLitePath    string
	DatabaseURL   string
	ChartPath     string
	RateLimit     string
	CORSOrigins   []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_DRIVER", DriverFile)
	viper.SetDefault("LEDGER_PATH", "data/ledger.json")
	viper.SetDefault("SQLITE_PATH", "data/ledger.db")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("CHART_PATH", "")
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		StorageDriver: viper.GetString("STORAGE_DRIVER"),
		LedgerPath:    viper.GetString("LEDGER_PATH"),
		SQLitePath:    viper.GetString("SQLITE_PATH"),
		DatabaseURL:   viper.GetString("PGSQL_URL"),
		ChartPath:     viper.GetString("CHART_PATH"),
		RateLimit:     viper.GetString("RATE_LIMIT"),
		CORSOrigins:   viper.GetStringSlice("CORS_ORIGINS"),
	}

	switch cfg.StorageDriver {
	case DriverFile, DriverSQLite, DriverPostgres, DriverMemory:
	default:
		log.Printf("Warning: unknown STORAGE_DRIVER %q, falling back to %q.\n", cfg.StorageDriver, DriverFile)
		cfg.StorageDriver = DriverFile
	}

	if cfg.StorageDriver == DriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: STORAGE_DRIVER is postgres but PGSQL_URL is not set.")
	}
	if cfg.StorageDriver == DriverMemory {
		log.Println("Warning: STORAGE_DRIVER is memory; the ledger will not survive a restart.")
	}

	return cfg, nil
}
