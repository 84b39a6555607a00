package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/medassist-pro/api/internal/config"
	"github.com/medassist-pro/api/internal/delivery/http/handler"
	"github.com/medassist-pro/api/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	hospitalHandler *handler.HospitalHandler
	medicineHandler *handler.MedicineHandler
	chatHandler     *handler.ChatHandler
}

// NewServer creates the HTTP server with middleware and routes set up.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	hospitalHandler *handler.HospitalHandler,
	medicineHandler *handler.MedicineHandler,
	chatHandler *handler.ChatHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "MedAssist API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		hospitalHandler: hospitalHandler,
		medicineHandler: medicineHandler,
		chatHandler:     chatHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

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

	// Location routes
	api.Post("/locations/geocode", s.hospitalHandler.Geocode)
	api.Post("/locations/nearby-hospitals", s.hospitalHandler.NearbyHospitals)

	// Medicine routes
	api.Get("/medicines/search", s.medicineHandler.Search)
	api.Get("/medicines", s.medicineHandler.List)
	api.Post("/medicines", s.medicineHandler.Create)
	api.Put("/medicines/:id", s.medicineHandler.Update)
	api.Delete("/medicines/:id", s.medicineHandler.Delete)
	api.Get("/prescriptions", s.medicineHandler.ListPrescriptions)

	// AI assistant
	api.Post("/ai/chat", s.chatHandler.Chat)
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

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
