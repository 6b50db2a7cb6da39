package user

import (
	"context"
	"slices"
)

// AuthorizationContext answers capability questions about the caller.
type AuthorizationContext interface {
	IsAdminOrSupervisor() bool
	HasRole(role Role) bool
}

type Permission string

const (
	PermissionDailyReportView   Permission = "daily_report.view"
	PermissionDailyReportCreate Permission = "daily_report.create"
	PermissionDailyReportUpdate Permission = "daily_report.update"
	PermissionDailyReportDelete Permission = "daily_report.delete"
	PermissionConsultationView  Permission = "consultation.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionDailyReportView,
		PermissionDailyReportCreate,
		PermissionDailyReportUpdate,
		PermissionDailyReportDelete,
		PermissionConsultationView,
	},
	RoleSupervisor: {
		PermissionDailyReportView,
		PermissionDailyReportCreate,
		PermissionDailyReportUpdate,
		PermissionDailyReportDelete,
		PermissionConsultationView,
	},
	RoleHRPayroll: {
		PermissionDailyReportView,
		PermissionDailyReportCreate,
		PermissionDailyReportUpdate,
		PermissionConsultationView,
	},
	RoleAccountingManager: {
		PermissionConsultationView,
	},
}

// Can checks whether any role held by ac grants permission.
func Can(ac AuthorizationContext, permission Permission) bool {
	if ac == nil {
		return false
	}
	for role, permissions := range RolePermissions {
		if ac.HasRole(role) && slices.Contains(permissions, permission) {
			return true
		}
	}
	return false
}

// Principal is the authenticated caller as carried by the access token.
type Principal struct {
	UserID   int64
	Username string
	Roles    []Role
}

func (p Principal) HasRole(role Role) bool {
	return slices.Contains(p.Roles, role)
}

func (p Principal) IsAdminOrSupervisor() bool {
	return p.HasRole(RoleAdmin) || p.HasRole(RoleSupervisor)
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
