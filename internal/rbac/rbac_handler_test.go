package rbac_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-checkin/internal/domain"
	"go-checkin/internal/rbac"
	"go-checkin/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_EnforceAndPermissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	e, err := infra.NewEnforcer()
	require.NoError(t, err)
	svc, err := rbac.NewService(e, rbac.DefaultPolicy())
	require.NoError(t, err)
	h := rbac.NewHandler(svc)

	r := gin.New()
	asHR := func(c *gin.Context) { c.Set("role", domain.RoleHR) }
	r.POST("/rbac/enforce", asHR, h.Enforce)
	r.GET("/rbac/permissions", asHR, h.MyPermissions)

	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"report","action":"read"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allowed":true`)

	req = httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"report"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "report:read")
	assert.Contains(t, w.Body.String(), "attendance:create")
}
