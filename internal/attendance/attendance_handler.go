package attendance

import (
	"encoding/json"
	"net/http"
	"time"

	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// NewHandlerWithRedis enables response caching for Idempotency-Key replays.
func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) SubmitPunch(c *gin.Context) {
	lockKey := c.GetString("idempotency_lock_key")
	cacheKey := c.GetString("idempotency_cache_key")

	if h.rdb != nil && lockKey != "" {
		defer h.rdb.Del(c.Request.Context(), lockKey)
	}

	var req SubmitPunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.SubmitPunch(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	envelope := response.SuccessEnvelope(res.Message, res.Punch, nil)
	if h.rdb != nil && cacheKey != "" {
		if payload, marshalErr := json.Marshal(envelope); marshalErr == nil {
			_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyTTL).Err()
		}
	}
	c.JSON(http.StatusOK, envelope)
}

func (h *Handler) Today(c *gin.Context) {
	resp, err := h.service.Today(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", resp, nil)
}
