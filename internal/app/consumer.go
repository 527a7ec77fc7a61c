package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-checkin/internal/attendance"
	"go-checkin/internal/config"
	"go-checkin/internal/events"
	"go-checkin/internal/messaging/kafka/consumer"
	"go-checkin/internal/report"
	"go-checkin/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const reportCacheGroupID = "go-checkin-report-cache"

func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	gormDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	reportService := report.NewService(
		attendance.NewRepository(gormDB),
		report.NewXLSXSink(),
		cfg.Location,
		report.WithCache(redisClient, cfg.ReportCacheTTL),
		report.WithLogger(logger),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.PunchRecordedTopic,
		GroupID:        reportCacheGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePunchRecorded(ctx, reader, reportService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
