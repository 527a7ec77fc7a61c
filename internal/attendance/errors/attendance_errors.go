package attendanceerrors

import (
	"fmt"
	"math"
	"net/http"

	"go-checkin/internal/shared/apperror"
)

const (
	CodeGeofenceViolation = "GEOFENCE_VIOLATION"
	CodeCooldownActive    = "COOLDOWN_ACTIVE"
	CodeDuplicateEntry    = "DUPLICATE_ENTRY"
	CodeOutOfOrder        = "OUT_OF_ORDER"
	CodeDayComplete       = "DAY_COMPLETE"
	CodeUnknownType       = "UNKNOWN_TYPE"
	CodePunchInProgress   = "PUNCH_IN_PROGRESS"
)

var (
	ErrGeofenceViolation = apperror.New(
		CodeGeofenceViolation,
		"check-in rejected: you are outside the allowed office radius",
		http.StatusForbidden,
	)
	ErrCooldownActive = apperror.New(
		CodeCooldownActive,
		"please wait before punching again",
		http.StatusTooManyRequests,
	)
	ErrDuplicateEntry = apperror.New(
		CodeDuplicateEntry,
		"entry already recorded today",
		http.StatusConflict,
	)
	ErrOutOfOrder = apperror.New(
		CodeOutOfOrder,
		"punch is out of order",
		http.StatusConflict,
	)
	ErrDayComplete = apperror.New(
		CodeDayComplete,
		"all punches for today are already recorded",
		http.StatusConflict,
	)
	ErrUnknownType = apperror.New(
		CodeUnknownType,
		"invalid punch type",
		http.StatusBadRequest,
	)
	ErrPunchInProgress = apperror.New(
		CodePunchInProgress,
		"another punch for this employee is being processed, please retry",
		http.StatusConflict,
	)
	ErrInvalidIdentity = apperror.New(
		apperror.CodeValidation,
		"employee identity is required",
		http.StatusBadRequest,
	)
)

func GeofenceViolation(distance, radius float64) *apperror.AppError {
	// NaN cannot be encoded as JSON; it only comes from malformed coordinates.
	if math.IsNaN(distance) {
		return ErrGeofenceViolation.
			WithMessage("check-in rejected: location coordinates are invalid").
			WithDetails(map[string]float64{"radius_meters": radius})
	}
	return ErrGeofenceViolation.
		WithMessage(fmt.Sprintf("check-in rejected: you are %.0fm from the office", distance)).
		WithDetails(map[string]float64{
			"distance_meters": distance,
			"radius_meters":   radius,
		})
}

func CooldownActive(remainingMinutes int) *apperror.AppError {
	return ErrCooldownActive.
		WithMessage(fmt.Sprintf("please wait %d more minute(s) before punching again", remainingMinutes)).
		WithDetails(map[string]int{"remaining_minutes": remainingMinutes})
}

// OutOfOrder names the punch that has to be recorded before the requested one.
func OutOfOrder(requested, prerequisite, expectedNext string) *apperror.AppError {
	return ErrOutOfOrder.
		WithMessage(fmt.Sprintf("%s must be recorded before %s", prerequisite, requested)).
		WithDetails(map[string]string{
			"requested":     requested,
			"expected_next": expectedNext,
		})
}
