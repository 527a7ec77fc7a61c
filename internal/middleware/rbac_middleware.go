package middleware

import (
	"go-checkin/internal/domain"
	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/response"

	autherrors "go-checkin/internal/auth/errors"

	"github.com/gin-gonic/gin"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(domain.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			errObj := autherrors.ErrAuthInvalid
			response.AbortWithError(c, errObj.HTTPStatus, errObj.Code, "missing auth context", nil)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.ServiceError(c, apperror.Internal(err))
			c.Abort()
			return
		}

		if !allowed {
			errObj := autherrors.ErrForbidden
			response.AbortWithError(c, errObj.HTTPStatus, errObj.Code, errObj.Message, gin.H{
				"required": resource + ":" + action,
			})
			return
		}
		c.Next()
	}
}
