package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/tourist_safety_system/internal/config"
	v1 "github.com/shenikar/tourist_safety_system/internal/handler/http/v1"
	"github.com/shenikar/tourist_safety_system/internal/repository"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/shenikar/tourist_safety_system/internal/webhook"
	"github.com/shenikar/tourist_safety_system/internal/ws"
	"github.com/shenikar/tourist_safety_system/pkg/logger"
	"github.com/shenikar/tourist_safety_system/pkg/postgres"
	redisclient "github.com/shenikar/tourist_safety_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/tourist_safety_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Tourist Safety System API
// @version 1.0
// @description Proximity alerting and dispatch API for tourist safety monitoring.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	touristRepo := repository.NewTouristRepository(dbpool)
	locationRepo := repository.NewLocationRepository(dbpool)
	zoneRepo := repository.NewRiskZoneRepository(dbpool, redisClient)
	stationRepo := repository.NewPoliceStationRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool)
	spatial := repository.NewPostgresSpatialIndex(dbpool)

	// WebSocket-хаб, рассылающий события подписчикам участков
	hub := ws.NewHub(log)

	// Инициализация сервисов
	gate := service.NewCooldownGate(cfg.PoliceAlertCooldown)
	alertService := service.NewAlertService(alertRepo, spatial, log)
	locationService := service.NewLocationService(touristRepo, locationRepo, alertService, spatial, gate, hub, webhookPublisher, log, cfg)
	panicService := service.NewPanicService(touristRepo, alertService, hub, webhookPublisher, log)
	touristService := service.NewTouristService(touristRepo, spatial, hub, log, cfg)
	zoneService := service.NewRiskZoneService(zoneRepo, log)
	stationService := service.NewPoliceStationService(stationRepo, spatial, log)

	// Фоновая уборка неактивных туристов с карт участков
	touristService.StartInactivitySweeper(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Locations: locationService,
		Panic:     panicService,
		Alerts:    alertService,
		Tourists:  touristService,
		Zones:     zoneService,
		Stations:  stationService,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// WebSocket-подписка участков на события
	router.GET("/ws", hub.ServeWS)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
