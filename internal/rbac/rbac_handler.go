package rbac

import (
	"net/http"
	"strings"

	"go-checkin/internal/domain"
	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enforce answers whether the caller's role may perform resource:action.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ServiceError(c, apperror.MapValidationError(err))
		return
	}

	allowed, err := h.service.Enforce(domain.EnforceRequest{
		Role:     c.GetString("role"),
		Resource: strings.TrimSpace(req.Resource),
		Action:   strings.TrimSpace(req.Action),
	})
	if err != nil {
		response.ServiceError(c, apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "", domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) MyPermissions(c *gin.Context) {
	perms, err := h.service.Permissions(c.GetString("role"))
	if err != nil {
		response.ServiceError(c, apperror.Internal(err))
		return
	}

	out := make([]string, 0, len(perms))
	for _, p := range perms {
		if len(p) >= 3 {
			out = append(out, p[1]+":"+p[2])
		}
	}
	response.Success(c, http.StatusOK, "", out, nil)
}
