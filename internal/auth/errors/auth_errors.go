package autherrors

import (
	"net/http"

	"go-checkin/internal/shared/apperror"
)

const CodeAuthInvalid = "AUTH_INVALID"

var (
	ErrAuthInvalid = apperror.New(
		CodeAuthInvalid,
		"invalid or expired credential",
		http.StatusUnauthorized,
	)
	ErrInvalidCredentials = apperror.New(
		CodeAuthInvalid,
		"email or password is incorrect",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.ErrForbidden
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to issue access token",
		http.StatusInternalServerError,
	)
)
