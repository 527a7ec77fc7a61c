package apperror

import "net/http"

var (
	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUpstreamUnavailable = New(
		CodeUpstreamUnavailable,
		"A required service is temporarily unavailable, please retry",
		http.StatusServiceUnavailable,
	)
)

func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", http.StatusBadRequest).
		WithDetails(map[string]string{"field": field})
}

func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", http.StatusBadRequest).
		WithDetails(map[string]string{"field": field})
}

// Upstream wraps a store or collaborator failure. The cause stays on Err
// for logging; clients only see the generic message.
func Upstream(err error) *AppError {
	return Wrap(err, ErrUpstreamUnavailable.Code, ErrUpstreamUnavailable.Message, ErrUpstreamUnavailable.HTTPStatus)
}

// Internal wraps an unexpected failure the same way.
func Internal(err error) *AppError {
	return Wrap(err, ErrInternal.Code, ErrInternal.Message, ErrInternal.HTTPStatus)
}
