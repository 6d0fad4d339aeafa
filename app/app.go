package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go-finance-api/config"
	"go-finance-api/db"
	"go-finance-api/event"
	"go-finance-api/handler"
	"go-finance-api/logger"
	"go-finance-api/repository"
	"go-finance-api/router"
	"go-finance-api/service"
)

// NewServer wires repositories, services and handlers on top of the given
// connections. cache and invalidators may be nil.
func NewServer(database *sql.DB, cache service.ICacheClient, invalidators ...service.ViewInvalidator) http.Handler {
	cfg := config.AppConfig

	var invalidator service.MultiInvalidator
	if cache != nil {
		invalidator = append(invalidator, service.NewCacheInvalidator(cache))
	}
	for _, inv := range invalidators {
		if inv != nil {
			invalidator = append(invalidator, inv)
		}
	}

	userRepo := repository.NewUserRepository(database)
	accountRepo := repository.NewAccountRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)
	budgetRepo := repository.NewBudgetRepository(database)

	authService := service.NewAuthService(cfg.JWT.SecretKey, cfg.JWT.Issuer)
	userService := service.NewUserService(userRepo)
	accountService := service.NewAccountService(database, accountRepo, transactionRepo, cache, cfg.Redis.CacheTTL, invalidator)
	transactionService := service.NewTransactionService(database, userRepo, accountRepo, transactionRepo, invalidator)
	budgetService := service.NewBudgetService(budgetRepo, accountRepo, transactionRepo, invalidator)
	dashboardService := service.NewDashboardService(accountRepo, transactionRepo, accountService, budgetService, cache, cfg.Redis.CacheTTL)

	handlers := router.Handlers{
		User:        handler.NewUserHandler(userService),
		Account:     handler.NewAccountHandler(accountService, userService),
		Transaction: handler.NewTransactionHandler(transactionService, userService),
		Dashboard:   handler.NewDashboardHandler(dashboardService, userService),
		Budget:      handler.NewBudgetHandler(budgetService, userService),
		Health:      handler.NewHealthHandler(database),
	}
	limiter := handler.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	return router.NewRouter(handlers, authService, limiter)
}

func Run() {
	if err := config.LoadConfig("."); err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.Init()
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if config.AppConfig.Database.AutoMigrate {
		if err := db.RunMigrations(database); err != nil {
			logger.Log.Fatalf("Error running migrations: %v", err)
		}
	}

	// A nil *redis.Client must not reach the service layer as a non-nil interface.
	var cache service.ICacheClient
	if config.AppConfig.Redis.Enabled {
		rdb, err := db.ConnectRedis(context.Background())
		if err != nil {
			logger.Log.Fatalf("Error connecting to redis: %v", err)
		}
		defer rdb.Close()
		cache = rdb
	}

	var invalidators []service.ViewInvalidator
	if url := config.AppConfig.AMQP.URL; url != "" {
		publisher, err := event.NewPublisher(url, config.AppConfig.AMQP.Exchange)
		if err != nil {
			logger.Log.Fatalf("Error connecting to the message broker: %v", err)
		}
		defer publisher.Close()
		invalidators = append(invalidators, publisher)
		logger.Log.WithField("exchange", config.AppConfig.AMQP.Exchange).Info("Publishing view invalidations")
	}

	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: NewServer(database, cache, invalidators...),
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), config.AppConfig.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logger.Log.Info("Server exited properly")
}
