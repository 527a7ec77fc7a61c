package consumer

import (
	"context"
	"encoding/json"

	"go-checkin/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type CacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}

// ConsumePunchRecorded drops the cached report whenever a punch is recorded.
// A message is committed only after the cache was invalidated.
func ConsumePunchRecorded(
	ctx context.Context,
	reader MessageReader,
	invalidator CacheInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.punch_recorded")
	log.Info("punch recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("punch recorded consumer stopped")
				return
			}
			log.Error("fetch punch recorded message failed", zap.Error(err))
			continue
		}

		var event events.PunchRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode punch_recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if event.EventType != events.PunchRecordedEventType {
			log.Warn("skipping unexpected event type", zap.String("event_type", event.EventType))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := invalidator.InvalidateCache(ctx); err != nil {
			log.Error("invalidate report cache failed",
				zap.String("request_id", event.RequestID),
				zap.String("punch_id", event.PunchID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit punch recorded message failed", zap.Error(err))
			continue
		}

		log.Info("report cache invalidated",
			zap.String("request_id", event.RequestID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("punch_type", event.PunchType),
		)
	}
}
