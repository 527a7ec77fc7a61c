package apperror

const (
	// Client errors (4xx)
	CodeValidation = "VALIDATION_ERROR"
	CodeForbidden  = "FORBIDDEN"

	// Server errors (5xx)
	CodeInternalError       = "INTERNAL_ERROR"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
)
