package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/ports"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
	"github.com/SahajKhata/sahaj_khata_app/internal/handlers"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
	"github.com/SahajKhata/sahaj_khata_app/internal/platform/chart"
	"github.com/SahajKhata/sahaj_khata_app/internal/platform/config"
	"github.com/SahajKhata/sahaj_khata_app/internal/repositories/storage/filestore"
	"github.com/SahajKhata/sahaj_khata_app/internal/repositories/storage/memstore"
	"github.com/SahajKhata/sahaj_khata_app/internal/repositories/storage/pgstore"
	"github.com/SahajKhata/sahaj_khata_app/internal/repositories/storage/sqlitestore"
	"github.com/SahajKhata/sahaj_khata_app/pkg/database"
)

// @title Sahaj Khata API
// @version 1.0
// @description Double-entry bookkeeping backend for small-business GST accounting.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, cleanup, err := openSnapshotStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to open snapshot store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	ledgerService, err := services.NewLedgerService(context.Background(), store)
	if err != nil {
		logger.Error("Failed to load ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if ledgerService.IsInitialized() {
		logger.Info("Ledger snapshot loaded", slog.String("driver", cfg.StorageDriver))
	} else {
		logger.Info("No ledger snapshot found, awaiting firm setup", slog.String("driver", cfg.StorageDriver))
	}

	chartAccounts, err := chart.Load(cfg.ChartPath)
	if err != nil {
		logger.Error("Failed to load chart of accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(corsMiddleware(cfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	r.GET("/", handlers.GetHome)

	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance))
	handlers.RegisterHandlers(v1, services.NewContainer(ledgerService), chartAccounts)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openSnapshotStore builds the persistence backend named by the
// config. The returned cleanup releases any held connections.
func openSnapshotStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.SnapshotStore, func(), error) {
	noop := func() {}
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		store, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return store, func() {
			if cerr := store.Close(); cerr != nil {
				logger.Error("Error closing sqlite store", slog.String("error", cerr.Error()))
			}
		}, nil
	case config.DriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		store, err := pgstore.New(ctx, pool)
		if err != nil {
			database.ClosePgxPool(pool)
			return nil, noop, err
		}
		return store, func() { database.ClosePgxPool(pool) }, nil
	case config.DriverMemory:
		return memstore.New(), noop, nil
	default:
		store, err := filestore.New(cfg.LedgerPath)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")
	return cors.New(corsConfig)
}
