package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/warefront/warefront-backend/api/routes"
	"github.com/warefront/warefront-backend/internal/alerts"
	"github.com/warefront/warefront-backend/internal/auth"
	"github.com/warefront/warefront-backend/internal/inventory"
	"github.com/warefront/warefront-backend/internal/mismatches"
	"github.com/warefront/warefront-backend/internal/reports"
	"github.com/warefront/warefront-backend/internal/users"
	"github.com/warefront/warefront-backend/internal/warehouses"
	"github.com/warefront/warefront-backend/pkg/auth/session"
	"github.com/warefront/warefront-backend/pkg/config"
	"github.com/warefront/warefront-backend/pkg/db"
	"github.com/warefront/warefront-backend/pkg/logger"
	"github.com/warefront/warefront-backend/pkg/metrics"
	"github.com/warefront/warefront-backend/pkg/migrate"
	"github.com/warefront/warefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	gormDB := dbClient.DB()
	userRepo := users.NewRepository(gormDB)
	itemRepo := inventory.NewRepository(gormDB)
	warehouseRepo := warehouses.NewRepository(gormDB)
	mismatchRepo := mismatches.NewRepository(gormDB)
	alertRepo := alerts.NewRepository(gormDB)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	userService, err := users.NewService(userRepo, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}

	inventoryService, err := inventory.NewService(itemRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	warehouseService, err := warehouses.NewService(warehouseRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create warehouse service", err)
		os.Exit(1)
	}

	mismatchService, err := mismatches.NewService(mismatchRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create mismatch service", err)
		os.Exit(1)
	}

	reportService, err := reports.NewService(itemRepo, warehouseRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create report service", err)
		os.Exit(1)
	}

	alertService, err := alerts.NewService(alerts.ServiceParams{
		AlertRepo:     alertRepo,
		ItemRepo:      itemRepo,
		WarehouseRepo: warehouseRepo,
		MismatchRepo:  mismatchRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create alert service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:          cfg,
			Logger:          logg,
			DB:              dbClient,
			Redis:           redisClient,
			SessionManager:  sessionManager,
			Metrics:         httpMetrics,
			MetricsGatherer: registry,

			AuthService:      authService,
			RegisterService:  registerService,
			UserService:      userService,
			InventoryService: inventoryService,
			WarehouseService: warehouseService,
			MismatchService:  mismatchService,
			ReportService:    reportService,
			AlertService:     alertService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
