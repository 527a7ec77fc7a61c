package rbac

import (
	"testing"

	"go-checkin/internal/domain"
	"go-checkin/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	e, err := infra.NewEnforcer()
	require.NoError(t, err)

	s, err := NewService(e, DefaultPolicy())
	require.NoError(t, err)
	return s
}

func TestRBACService_Enforce(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		{domain.RoleEmployee, "attendance", "create", true},
		{domain.RoleEmployee, "attendance", "read", true},
		{domain.RoleEmployee, "report", "read", false},
		{domain.RoleHR, "report", "read", true},
		{domain.RoleHR, "attendance", "create", true},
		{domain.RoleAdmin, "report", "read", true},
		{domain.RoleAdmin, "attendance", "create", true},
		{"GUEST", "attendance", "create", false},
		{domain.RoleHR, "report", "delete", false},
	}

	for _, tt := range tests {
		t.Run(tt.role+" "+tt.resource+":"+tt.action, func(t *testing.T) {
			allowed, err := service.Enforce(domain.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestRBACService_Permissions(t *testing.T) {
	service := newTestService(t)

	perms, err := service.Permissions(domain.RoleEmployee)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]string{
		{"EMPLOYEE", "attendance", "create"},
		{"EMPLOYEE", "attendance", "read"},
	}, perms)

	perms, err = service.Permissions(domain.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, perms, 3)
}
