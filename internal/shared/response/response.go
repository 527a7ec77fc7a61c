package response

import (
	"net/http"

	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaginationMeta struct {
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"totalPages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// Logika pembulatan ke atas: (total + limit - 1) / limit
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

// Paginate slices items for the given page; out of range pages yield an empty slice.
func Paginate[T any](items []T, page, pageSize int) ([]T, PaginationMeta) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], NewPaginationMeta(int64(len(items)), page, pageSize)
}

type ErrorBody struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

type ApiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    any             `json:"data,omitempty"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
	Error   *ErrorBody      `json:"error,omitempty"`
}

// SuccessEnvelope builds the body Success writes, for callers that cache it.
func SuccessEnvelope(message string, data any, meta *PaginationMeta) ApiEnvelope {
	return ApiEnvelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

func Success(c *gin.Context, status int, message string, data any, meta *PaginationMeta) {
	c.JSON(status, SuccessEnvelope(message, data, meta))
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Success: false,
		Message: message,
		Error: &ErrorBody{
			Code:    errorCode,
			Details: details,
		},
	})
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, status int, errorCode string, message string, details any) {
	Error(c, status, errorCode, message, details)
	c.Abort()
}

// ServiceError maps err to its HTTP form and writes it. Server side failures
// are logged with the request-scoped logger; the client only sees the generic message.
func ServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		contextutil.GetLogger(c.Request.Context(), zap.L()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", httpErr.Code),
			zap.Error(err),
		)
	}
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
