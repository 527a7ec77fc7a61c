package middleware

import (
	"context"
	"strings"

	autherrors "go-checkin/internal/auth/errors"
	"go-checkin/internal/domain"
	"go-checkin/internal/shared/contextutil"
	"go-checkin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdentityVerifier turns a bearer credential into a verified identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (domain.Identity, error)
}

func AuthMiddleware(verifier IdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		tokenString = strings.TrimSpace(tokenString)

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			errObj := autherrors.ErrAuthInvalid
			response.AbortWithError(c, errObj.HTTPStatus, errObj.Code, "Token not found", nil)
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			response.ServiceError(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", identity.ID)
		c.Set("role", identity.Role)

		ctx := contextutil.WithUserID(c.Request.Context(), identity.ID)
		logger := contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", identity.ID))
		ctx = contextutil.WithLogger(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		errObj := autherrors.ErrForbidden
		response.AbortWithError(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
	}
}
