package app

import (
	"context"
	"errors"
	"net/http"

	"go-checkin/internal/attendance"
	"go-checkin/internal/auth"
	"go-checkin/internal/config"
	"go-checkin/internal/messaging/kafka"
	"go-checkin/internal/middleware"
	"go-checkin/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	// 1. Setup Infrastructure
	gormDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(&auth.User{}, &attendance.PunchEvent{}); err != nil {
		return err
	}
	if err := kafka.EnsureOutboxSchema(context.Background(), sqlDB); err != nil {
		return err
	}
	logger.Info("database ready")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		return err
	}
	logger.Info("redis ready")

	// 2. Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 3. Register Modules & Routes
	return registerModules(router, cfg, sqlDB, gormDB, redisClient)
}

func connectDatabase(cfg config.Config) (*gorm.DB, error) {
	return connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		connectRetries,
	)
}
