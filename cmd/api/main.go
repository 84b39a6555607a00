package main

// @title MedAssist API
// @version 1.0.0
// @description Backend for the MedAssist symptom-to-medicine web application: nearby-hospital resolution (geocoding + POI search with graceful fallback), a symptom-to-medicine catalog with prescription history, and an AI assistant endpoint.

// @contact.name API Support
// @contact.email support@medassist-pro.com

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

	_ "github.com/medassist-pro/api/docs"
	"github.com/medassist-pro/api/internal/config"
	httpDelivery "github.com/medassist-pro/api/internal/delivery/http"
	"github.com/medassist-pro/api/internal/delivery/http/handler"
	"github.com/medassist-pro/api/internal/domain/repository"
	"github.com/medassist-pro/api/internal/infrastructure/googleplaces"
	"github.com/medassist-pro/api/internal/infrastructure/locationiq"
	"github.com/medassist-pro/api/internal/infrastructure/openai"
	"github.com/medassist-pro/api/internal/infrastructure/overpass"
	"github.com/medassist-pro/api/internal/pkg/logger"
	"github.com/medassist-pro/api/internal/repository/cache"
	"github.com/medassist-pro/api/internal/repository/postgres"
	"github.com/medassist-pro/api/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting MedAssist API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("geo_provider", cfg.Geo.Provider),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

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

	// 6. Initialize repositories and outbound clients
	medicineRepo := postgres.NewMedicineRepository(db)
	prescriptionRepo := postgres.NewPrescriptionRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	geocoder := locationiq.NewClient(&cfg.Geo.LocationIQ, log)

	var facilitySearch repository.FacilitySearchRepository
	switch cfg.Geo.Provider {
	case "google":
		facilitySearch = googleplaces.NewClient(&cfg.Geo.GooglePlaces, log)
	default:
		facilitySearch = overpass.NewClient(&cfg.Geo.Overpass, log)
	}

	chatClient := openai.NewClient(&cfg.OpenAI, log)

	log.Info("Repositories and clients initialized")

	// 7. Initialize use cases
	hospitalUC := usecase.NewHospitalUseCase(geocoder, facilitySearch, log)
	medicineUC := usecase.NewMedicineUseCase(
		medicineRepo,
		prescriptionRepo,
		cacheRepo,
		log,
		cfg.Cache.MedicineCacheTTL,
	)
	chatUC := usecase.NewChatUseCase(chatClient, log)

	// 8. Seed the medicine catalog on first start
	if err := medicineUC.SeedDefaults(ctx); err != nil {
		log.Warn("Failed to seed default medicines", zap.Error(err))
	}

	// 9. Initialize HTTP handlers and server
	hospitalHandler := handler.NewHospitalHandler(hospitalUC, cfg.Geo.DefaultRadiusMeters, log)
	medicineHandler := handler.NewMedicineHandler(medicineUC, log)
	chatHandler := handler.NewChatHandler(chatUC, log)

	server := httpDelivery.NewServer(
		cfg,
		log,
		hospitalHandler,
		medicineHandler,
		chatHandler,
	)

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
