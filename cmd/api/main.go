package main

// @title BusSystem Service API
// @version 1.0.0
// @description Сервис бронирования билетов через API BusSystem. Поддерживает автобусы, поезда и авиаперелеты.
// @description
// @description Основные возможности:
// @description - Поиск рейсов между городами и станциями с пересадками
// @description - Справочники точек, свободных мест, схем салонов, скидок и багажа
// @description - Создание, резервирование, выкуп и отмена заказов
// @description - Локальное хранение заказов и билетов с PDF-бланками

// @contact.name API Support
// @contact.email support@bussystem-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/bussystem-service/docs/swagger"
	"github.com/bussystem-service/internal/config"
	httpDelivery "github.com/bussystem-service/internal/delivery/http"
	"github.com/bussystem-service/internal/delivery/http/handler"
	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/infrastructure/bussystem"
	"github.com/bussystem-service/internal/pkg/logger"
	"github.com/bussystem-service/internal/repository/cache"
	"github.com/bussystem-service/internal/repository/postgres"
	"github.com/bussystem-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting BusSystem Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("api_url", cfg.BusSystem.APIURL),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	orderRepo := postgres.NewOrderRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	busClient := bussystem.NewClient(&cfg.BusSystem, cfg.Cache, cacheRepo, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	defaults := domain.Defaults{
		Currency: cfg.BusSystem.Currency,
		Language: cfg.BusSystem.Language,
		Version:  cfg.BusSystem.Version,
	}

	searchUC := usecase.NewSearchUseCase(busClient, log, defaults)
	bookingUC := usecase.NewBookingUseCase(busClient, orderRepo, ticketRepo, log, defaults)
	orderUC := usecase.NewOrderUseCase(busClient, orderRepo, ticketRepo, log, defaults)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	searchHandler := handler.NewSearchHandler(searchUC, log)
	bookingHandler := handler.NewBookingHandler(bookingUC, log)
	orderHandler := handler.NewOrderHandler(orderUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		searchHandler,
		bookingHandler,
		orderHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
