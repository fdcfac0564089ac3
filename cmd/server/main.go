package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rtk-backend/internal/api/routes"
	"rtk-backend/internal/config"
	"rtk-backend/internal/database"
	"rtk-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "rtk-backend/docs" // This is needed for swag
)

//	@title			RTK Reliability API
//	@version		1.0
//	@description	Reliability engineering backend: MIL-HDBK-217F hazard rate prediction and derating, Crow-AMSAA and Duane reliability growth, and exponential and Weibull life data fitting.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// .env is optional outside development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	logger.Setup(cfg.LogLevel)
	log := logger.New()

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		log.WithError(err).WithField("export_dir", cfg.ExportDir).Fatal("Failed to create export directory")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(db, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(map[string]interface{}{
			"port":            cfg.Port,
			"auth_enabled":    cfg.AuthEnabled,
			"metrics_enabled": cfg.MetricsEnabled,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shut down")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("Server stopped")
}
