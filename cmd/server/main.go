package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kruglovma/sklad/internal/adapters/config"
	"github.com/kruglovma/sklad/internal/adapters/http"
	"github.com/kruglovma/sklad/internal/adapters/http/controllers"
	"github.com/kruglovma/sklad/internal/adapters/postgres"
	"github.com/kruglovma/sklad/internal/adapters/postgres/repository"
	"github.com/kruglovma/sklad/internal/adapters/redis"
	"github.com/kruglovma/sklad/internal/core/logger"
	"github.com/kruglovma/sklad/internal/core/service"
)

// @title       Sklad API
// @version     1.0
// @description Inventory management API

// @host     localhost:3000
// @BasePath /

//go:generate swag init -d ../.. -g cmd/server/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database connection
	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to PostgreSQL", err, nil)
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal(ctx, "Failed to apply database schema", err, nil)
	}
	logger.Info(ctx, "Connected to PostgreSQL", nil)

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// repositories and transaction manager
	productRepository := repository.NewProductRepository(pool)
	txManager := postgres.NewTransactionManager(pool)

	// rate limiter
	rateLimiter := redis.NewRateLimiter(redisClient)

	// services
	productService := service.NewProductService(productRepository, txManager)

	// controllers
	productController := controllers.NewProductController(productService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "postgres", Check: func(ctx context.Context) error { return pool.Ping(ctx) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
	})

	// router
	router := http.NewRouter(healthController, productController, rateLimiter, cfg.RateLimit)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
