package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-checkin/internal/attendance/errors"
	"go-checkin/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniquePunchConstraint = "uq_punch_employee_day_type"

// mapRepositoryError turns store failures into the client-facing taxonomy.
// A unique violation means a concurrent request won the race for the same
// punch type today.
func mapRepositoryError(err error, requested PunchType) error {
	if err == nil {
		return nil
	}

	if isUniquePunchViolation(err) {
		if requested == PunchEntry {
			return attendanceerrors.ErrDuplicateEntry
		}
		return attendanceerrors.ErrOutOfOrder.WithMessage(requested.String() + " already recorded today")
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Upstream(err)
}

func isUniquePunchViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == uniquePunchConstraint
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniquePunchConstraint)
}
