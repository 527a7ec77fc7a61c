package attendance

import (
	"go-checkin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r gin.IRouter, h *Handler, verifier middleware.IdentityVerifier, rbacService middleware.RBACService, rdb *redis.Client) {
	checkin := r.Group("/checkin")
	checkin.Use(middleware.AuthMiddleware(verifier), middleware.RateLimitByUser(1, 5))
	{
		create := []gin.HandlerFunc{middleware.RBACAuthorize(rbacService, "attendance", "create")}
		if rdb != nil {
			create = append(create, middleware.Idempotency(rdb))
		}
		checkin.POST("", append(create, h.SubmitPunch)...)
		checkin.GET("/today", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.Today)
	}
}
