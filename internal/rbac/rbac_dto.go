package rbac

import "go-checkin/internal/domain"

type Permission struct {
	Role     string
	Resource string
	Action   string
}

// Inheritance grants Role everything Parent can do.
type Inheritance struct {
	Role   string
	Parent string
}

type Policy struct {
	Permissions []Permission
	Inherits    []Inheritance
}

// DefaultPolicy: employees punch and see their own day, HR reads reports,
// admins inherit HR.
func DefaultPolicy() Policy {
	return Policy{
		Permissions: []Permission{
			{Role: domain.RoleEmployee, Resource: "attendance", Action: "create"},
			{Role: domain.RoleEmployee, Resource: "attendance", Action: "read"},
			{Role: domain.RoleHR, Resource: "report", Action: "read"},
		},
		Inherits: []Inheritance{
			{Role: domain.RoleHR, Parent: domain.RoleEmployee},
			{Role: domain.RoleAdmin, Parent: domain.RoleHR},
		},
	}
}

type EnforceCheckRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}
