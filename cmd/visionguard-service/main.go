package main

import (
	"fmt"
	"os"

	"visionguard-service/internal/auth"
	"visionguard-service/internal/config"
	"visionguard-service/internal/db"
	httphandler "visionguard-service/internal/http"
	"visionguard-service/internal/http/middleware"
	"visionguard-service/internal/logger"
	"visionguard-service/internal/repository"
	"visionguard-service/internal/service"
	"visionguard-service/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	files, err := storage.NewLocal(cfg.Uploads.Dir, cfg.Uploads.PublicDir)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to prepare uploads storage")
	}

	violationRepo := repository.NewViolationRepository(database)
	workerRepo := repository.NewWorkerRepository(database)
	cameraRepo := repository.NewCameraRepository(database)
	userRepo := repository.NewUserRepository(database)

	tokens := auth.NewManager(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)

	reportService := service.NewReportService(violationRepo, cfg.Reports.StrictTypes)
	violationService := service.NewViolationService(violationRepo)
	workerService := service.NewWorkerService(workerRepo, files)
	cameraService := service.NewCameraService(cameraRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, tokens)

	handler := httphandler.NewHandler(reportService, violationService, workerService, cameraService, userService, authService, appLogger)
	authMiddleware := middleware.Auth(tokens)
	router := httphandler.NewRouter(handler, authMiddleware, files, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting visionguard service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
