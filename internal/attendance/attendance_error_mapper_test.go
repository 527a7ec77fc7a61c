package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"

	attendanceerrors "go-checkin/internal/attendance/errors"
	"go-checkin/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapRepositoryError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: uniquePunchConstraint}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, mapRepositoryError(nil, PunchEntry))
	})

	t.Run("unique violation on entry", func(t *testing.T) {
		err := mapRepositoryError(fmt.Errorf("insert: %w", unique), PunchEntry)
		assert.True(t, errors.Is(err, attendanceerrors.ErrDuplicateEntry))
	})

	t.Run("unique violation on exit", func(t *testing.T) {
		err := mapRepositoryError(unique, PunchExit)
		assert.True(t, errors.Is(err, attendanceerrors.ErrOutOfOrder))
	})

	t.Run("driver message fallback", func(t *testing.T) {
		err := mapRepositoryError(errors.New(`ERROR: duplicate key value violates unique constraint "uq_punch_employee_day_type"`), PunchEntry)
		assert.True(t, errors.Is(err, attendanceerrors.ErrDuplicateEntry))
	})

	t.Run("other failures are upstream", func(t *testing.T) {
		err := mapRepositoryError(context.DeadlineExceeded, PunchEntry)
		assert.True(t, errors.Is(err, apperror.ErrUpstreamUnavailable))
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}
