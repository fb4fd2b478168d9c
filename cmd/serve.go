package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/shenikar/medical_dispatch/internal/config"
	v1 "github.com/shenikar/medical_dispatch/internal/handler/http/v1"
	"github.com/shenikar/medical_dispatch/internal/push"
	"github.com/shenikar/medical_dispatch/internal/repository"
	"github.com/shenikar/medical_dispatch/internal/service"
	"github.com/shenikar/medical_dispatch/pkg/logger"
	"github.com/shenikar/medical_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/medical_dispatch/pkg/redis"

	_ "github.com/shenikar/medical_dispatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			skipMigrations, _ := cmd.Flags().GetBool("skip-migrations")
			return runServer(skipMigrations)
		},
	}
	cmd.Flags().Bool("skip-migrations", false, "Do not apply migrations on startup")
	return cmd
}

func runServer(skipMigrations bool) error {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	if cfg.UsesDefaultSecret() {
		log.Warn("SECRET_KEY is not set, tokens are signed with the default development key")
	}

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if !skipMigrations {
		if err := runMigrations(cfg, log); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Очередь push-уведомлений и воркер доставки
	publisher := push.NewRedisPublisher(redisClient)
	pushWorker := push.NewWorker(redisClient, log, cfg)
	pushWorker.Start(ctx)

	// Инициализация репозиториев
	tx := repository.NewTransactor(dbpool)
	userRepo := repository.NewUserRepository(dbpool)
	teamRepo := repository.NewTeamRepository(dbpool)
	dispatchRepo := repository.NewDispatchRepository(dbpool)
	formRepo := repository.NewMedicalFormRepository(dbpool)
	tokenStore := repository.NewPushTokenStore(redisClient)
	attemptStore := repository.NewLoginAttemptStore(redisClient)

	// Инициализация сервисов
	notificationService := service.NewNotificationService(tokenStore, publisher, log)
	services := v1.Services{
		Auth:         service.NewAuthService(userRepo, attemptStore, log, cfg),
		Teams:        service.NewTeamService(teamRepo, log),
		Dispatches:   service.NewDispatchService(tx, dispatchRepo, teamRepo, notificationService, log),
		MedicalForms: service.NewMedicalFormService(tx, formRepo, dispatchRepo, teamRepo, log),
		Notification: notificationService,
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, log, cfg)

	// Настройка Gin роутера
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(logger.GinMiddleware(log), v1.RecoveryMiddleware(log))
	handler.RegisterRoutes(&router.RouterGroup)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server gracefully stopped")
	return nil
}
