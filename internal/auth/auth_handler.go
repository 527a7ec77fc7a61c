package auth

import (
	"net/http"
	"time"

	"go-checkin/internal/domain"
	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	secure  bool
}

// NewHandler builds the auth handler. secure marks the access_token cookie
// Secure, which production deployments need.
func NewHandler(s Service, secure bool) *Handler {
	return &Handler{service: s, secure: secure}
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := ctrl.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.ServiceError(c, err)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    resp.AccessToken,
		Path:     "/",
		MaxAge:   int(time.Until(time.Unix(resp.ExpiresAt, 0)).Seconds()),
		HttpOnly: true,
		Secure:   ctrl.secure,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, "Login success.", resp, nil)
}

func (ctrl *Handler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, "", domain.Identity{
		ID:   c.GetString("user_id"),
		Role: c.GetString("role"),
	}, nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.secure,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, "Logout success.", nil, nil)
}
