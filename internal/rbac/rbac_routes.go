package rbac

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler, verifier middleware.IdentityVerifier) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(verifier))
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/permissions", handler.MyPermissions)
	}
}
