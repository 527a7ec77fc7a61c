package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-checkin/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "0b8f3c8e-3f43-4c1b-9f7e-6f1f4f5c2a11",
		RequestID:     "rid-1",
		AggregateType: "punch",
		AggregateID:   "ana@example.com",
		EventType:     "punch_recorded",
		Topic:         "attendance.punch.recorded.v1",
		Payload:       []byte(`{"punch_type":"ENTRY"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_CreateInsideTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ev := newEvent()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(ev.ID, ev.RequestID, ev.AggregateType, ev.AggregateID, ev.EventType, ev.Topic, ev.Payload, ev.Status).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), ev))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ev := newEvent()
	ev.Payload = nil

	err = kafka.NewOutboxRepository(db).Create(context.Background(), ev)
	assert.ErrorContains(t, err, "payload")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("id-1", "rid-1", "punch", "ana@example.com", "punch_recorded", "attendance.punch.recorded.v1", []byte(`{}`), "pending", 0, now)

	mock.ExpectQuery("FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "id-1", events[0].ID)
	assert.Equal(t, "ana@example.com", events[0].AggregateID)
	assert.Equal(t, now, events[0].NextRetryAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("id-1", kafka.OutboxStatusFailed, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))

	var repo kafka.OutboxRepository = kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.MarkFailed(context.Background(), "id-1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
