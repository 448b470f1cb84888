package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/event-console/backend"
	"github.com/Dosada05/event-console/catalog"
	"github.com/Dosada05/event-console/config"
	"github.com/Dosada05/event-console/db"
	"github.com/Dosada05/event-console/handlers"
	"github.com/Dosada05/event-console/notify"
	"github.com/Dosada05/event-console/repositories"
	"github.com/Dosada05/event-console/routes"
	"github.com/Dosada05/event-console/services"
	"github.com/Dosada05/event-console/storage"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Справочник весовых категорий: БД консоли, либо встроенная таблица
	var catalogProvider catalog.Provider
	if cfg.DatabaseURL != "" {
		dbConn, connErr := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if connErr != nil {
			logger.Error("failed to connect to catalog database", slog.Any("error", connErr))
			os.Exit(1)
		}
		defer func() {
			if closeErr := dbConn.Close(); closeErr != nil {
				logger.Error("failed to close database connection", slog.Any("error", closeErr))
			}
		}()
		catalogProvider = repositories.NewPostgresCatalogRepository(dbConn)
		logger.Info("weight class catalog loaded from database")
	} else {
		catalogProvider = catalog.NewBuiltinProvider()
		logger.Info("using built-in weight class catalog")
	}

	// Инициализация загрузчика файлов (Cloudflare R2)
	cloudflareUploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Cloudflare R2 uploader initialized")

	// Клиент API бэкенда
	backendClient := backend.NewHTTPClient(cfg.BackendBaseURL)
	logger.Info("backend client initialized", slog.String("base_url", cfg.BackendBaseURL))

	// Канал уведомлений мастера
	wsHub := notify.NewHub(logger)
	go wsHub.Run()
	logger.Info("notification hub started")

	// Хранилище черновиков и сервисы
	draftRepo := repositories.NewInMemoryDraftRepository()

	refDataService := services.NewRefDataService(draftRepo, backendClient, wsHub, logger)
	draftService := services.NewDraftService(draftRepo, refDataService, cloudflareUploader, wsHub, logger)
	weightClassService := services.NewWeightClassService(draftRepo, catalogProvider)
	matchService := services.NewMatchService(draftRepo, weightClassService)
	seatZoneService := services.NewSeatZoneService(draftRepo)
	submissionService := services.NewSubmissionService(draftRepo, backendClient, cloudflareUploader, wsHub, logger)
	logger.Info("services initialized")

	// Инициализация обработчиков HTTP
	draftHandler := handlers.NewDraftHandler(draftService)
	weightClassHandler := handlers.NewWeightClassHandler(weightClassService)
	matchHandler := handlers.NewMatchHandler(matchService)
	seatZoneHandler := handlers.NewSeatZoneHandler(seatZoneService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	referenceHandler := handlers.NewReferenceHandler(draftService, refDataService, catalogProvider, backendClient)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, draftRepo, logger)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	routes.SetupRoutes(
		router,
		cfg.JWTSecretKey,
		draftHandler,
		weightClassHandler,
		matchHandler,
		seatZoneHandler,
		submissionHandler,
		referenceHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
