package reporterrors

import (
	"net/http"

	"go-checkin/internal/shared/apperror"
)

const CodeEmptyReport = "EMPTY_REPORT"

var ErrEmptyReport = apperror.New(
	CodeEmptyReport,
	"nothing to export",
	http.StatusNotFound,
)
