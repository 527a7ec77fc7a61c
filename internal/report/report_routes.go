package report

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, h *Handler, verifier middleware.IdentityVerifier, rbacService middleware.RBACService) {
	reports := r.Group("/report")
	reports.Use(
		middleware.AuthMiddleware(verifier),
		middleware.RateLimitByUser(1, 3),
		middleware.RBACAuthorize(rbacService, "report", "read"),
	)
	{
		reports.GET("", h.Export)
		reports.GET("/daily", h.Daily)
	}
}
