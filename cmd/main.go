package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suenot/sporthub/branding"
	"github.com/suenot/sporthub/config"
	"github.com/suenot/sporthub/db"
	_ "github.com/suenot/sporthub/docs"
	"github.com/suenot/sporthub/handlers"
	"github.com/suenot/sporthub/i18n"
	"github.com/suenot/sporthub/realtime"
	"github.com/suenot/sporthub/repositories"
	api "github.com/suenot/sporthub/routes"
	"github.com/suenot/sporthub/services"
	"github.com/suenot/sporthub/storage"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("default_language", cfg.DefaultLanguage),
		slog.Duration("options_refresh_interval", cfg.OptionsRefreshInterval),
		slog.Bool("r2_enabled", cfg.R2Enabled()))

	catalog, err := i18n.NewDefaultCatalog(cfg.DefaultLanguage)
	if err != nil {
		logger.Error("failed to load translations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("translations loaded", slog.Any("languages", catalog.Languages()))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Инициализация загрузчика файлов (Cloudflare R2), если он настроен
	var uploader storage.FileUploader
	if cfg.R2Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(appCtx, storage.CloudflareR2UploaderConfig{
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
	} else {
		logger.Warn("R2 is not configured, schema publishing and event logo URLs are disabled")
	}

	// Инициализация WebSocket Hub
	wsHub := realtime.NewHub(logger)
	go wsHub.Run(appCtx)
	logger.Info("WebSocket Hub started")

	// Инициализация репозиториев
	eventRepo := repositories.NewPostgresEventRepository(dbConn)
	optionsRepo := repositories.NewPostgresFilterOptionsRepository(dbConn)

	// Инициализация сервисов
	filterService := services.NewFilterService(optionsRepo, catalog, wsHub, logger)
	eventService := services.NewEventService(eventRepo, uploader, logger)
	schemaPublisher := services.NewSchemaPublisher(filterService, uploader, wsHub, logger)
	logger.Info("Services initialized")

	// Планировщик обновления опций фильтра
	go runOptionsScheduler(appCtx, logger, cfg.OptionsRefreshInterval, filterService, schemaPublisher, uploader != nil)

	// Инициализация обработчиков HTTP
	filterHandler := handlers.NewFilterHandler(filterService, schemaPublisher, logger)
	eventHandler := handlers.NewEventHandler(eventService, logger)
	brandingHandler := handlers.NewBrandingHandler(branding.DefaultLogo(), logger)
	webSocketHandler := handlers.NewWebSocketHandler(appCtx, wsHub, originChecker(cfg.CORSAllowedOrigins), logger)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{AllowedOrigins: cfg.CORSAllowedOrigins, JWTSecret: []byte(cfg.JWTSecretKey)},
		filterHandler,
		eventHandler,
		brandingHandler,
		webSocketHandler,
	)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
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

		// Останавливаем hub и планировщик, WebSocket-клиенты получают close
		stopApp()

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

// runOptionsScheduler reloads option lists every interval and republishes schemas when they change.
func runOptionsScheduler(
	ctx context.Context,
	logger *slog.Logger,
	interval time.Duration,
	filterService services.FilterService,
	publisher services.SchemaPublisher,
	publish bool,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	logger.Info("filter options scheduler started", slog.Duration("interval", interval))

	refresh := func(initial bool) {
		_, changed, err := filterService.RefreshOptions(ctx)
		if err != nil {
			logger.Error("Scheduler: options refresh failed", slog.Any("error", err))
			return
		}
		if !publish || !(changed || initial) {
			return
		}
		if _, err := publisher.PublishSchemas(ctx); err != nil {
			logger.Error("Scheduler: schema publish failed", slog.Any("error", err))
		}
	}

	// Run once immediately at startup, then on ticker
	refresh(true)

	for {
		select {
		case <-ctx.Done():
			logger.Info("filter options scheduler stopped")
			return
		case <-ticker.C:
			refresh(false)
		}
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		return nil
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}
