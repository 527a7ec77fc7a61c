package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-checkin/internal/events"
	"go-checkin/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	queue     []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.queue) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.queue[0]
	f.queue = f.queue[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	f.committed = append(f.committed, msgs...)
	return nil
}

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) InvalidateCache(ctx context.Context) error {
	f.calls++
	return f.err
}

func message(t *testing.T, offset int64, event events.PunchRecordedEvent) kafkago.Message {
	value, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafkago.Message{Topic: events.PunchRecordedTopic, Offset: offset, Value: value}
}

func TestConsumePunchRecorded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			message(t, 1, events.PunchRecordedEvent{EventType: events.PunchRecordedEventType, EmployeeID: "ana@example.com"}),
			{Topic: events.PunchRecordedTopic, Offset: 2, Value: []byte("{not json")},
			message(t, 3, events.PunchRecordedEvent{EventType: "something_else"}),
		},
	}
	invalidator := &fakeInvalidator{}

	consumer.ConsumePunchRecorded(ctx, reader, invalidator, zap.NewNop())

	assert.Equal(t, 1, invalidator.calls)
	assert.Len(t, reader.committed, 3)
}

func TestConsumePunchRecorded_InvalidateFailureLeavesMessageUncommitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			message(t, 1, events.PunchRecordedEvent{EventType: events.PunchRecordedEventType}),
		},
	}
	invalidator := &fakeInvalidator{err: errors.New("redis down")}

	consumer.ConsumePunchRecorded(ctx, reader, invalidator, zap.NewNop())

	assert.Equal(t, 1, invalidator.calls)
	assert.Empty(t, reader.committed)
}
