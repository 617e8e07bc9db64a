package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/bussystem-service/internal/config"
	"github.com/bussystem-service/internal/delivery/http/handler"
	"github.com/bussystem-service/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	searchHandler  *handler.SearchHandler
	bookingHandler *handler.BookingHandler
	orderHandler   *handler.OrderHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	searchHandler *handler.SearchHandler,
	bookingHandler *handler.BookingHandler,
	orderHandler *handler.OrderHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "BusSystem Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		searchHandler:  searchHandler,
		bookingHandler: bookingHandler,
		orderHandler:   orderHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Справочники и поиск
	api.Get("/points", s.searchHandler.Points)
	api.Post("/routes/search", s.searchHandler.SearchRoutes)
	api.Get("/timetables/:id", s.searchHandler.Timetable)
	api.Get("/intervals/:id/seats", s.searchHandler.FreeSeats)
	api.Get("/intervals/:id/discounts", s.searchHandler.Discounts)
	api.Get("/intervals/:id/baggage", s.searchHandler.Baggage)
	api.Get("/plan", s.searchHandler.SeatPlan)

	// Жизненный цикл заказа
	api.Post("/orders", s.bookingHandler.CreateOrder)
	api.Get("/orders", s.orderHandler.List)
	api.Post("/orders/expire", s.orderHandler.ExpireStale)
	api.Get("/orders/reference/:reference", s.orderHandler.GetByReference)
	api.Get("/orders/:id", s.orderHandler.Get)
	api.Delete("/orders/:id", s.orderHandler.Delete)
	api.Post("/orders/:id/reserve", s.bookingHandler.Reserve)
	api.Post("/orders/:id/buy", s.bookingHandler.Buy)
	api.Post("/orders/:id/cancel", s.bookingHandler.Cancel)
	api.Post("/orders/:id/refresh", s.orderHandler.Refresh)

	// Билеты
	api.Get("/tickets/:id", s.orderHandler.GetTicket)
	api.Get("/tickets/:id/provider", s.orderHandler.GetProviderTicket)

	// Подтверждение телефона
	api.Post("/reservations/validate", s.bookingHandler.ValidateReservation)
	api.Post("/sms/validate", s.bookingHandler.ValidateSMS)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
