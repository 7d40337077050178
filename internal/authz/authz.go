package authz

import (
	"errors"

	"github.com/kingrain94/digital-menu-api/internal/domain"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
)

// Access is the capability a route declares. The zero value is deliberately
// invalid so a route cannot be registered without choosing one.
type Access int

const (
	AccessUnspecified Access = iota
	AccessPublic
	AccessAuthenticated
	AccessSuperAdmin
	AccessTenantMember
)

func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessAuthenticated:
		return "authenticated"
	case AccessSuperAdmin:
		return "super_admin"
	case AccessTenantMember:
		return "tenant_member"
	default:
		return "unspecified"
	}
}

func (a Access) Valid() bool {
	return a >= AccessPublic && a <= AccessTenantMember
}

// IsSuperAdmin gates tenant provisioning.
func IsSuperAdmin(p domain.Principal) bool {
	return p.IsSuperAdmin()
}

// IsTenantMember is an exact match on the principal's tenant binding. A
// super-admin is not a member of any tenant.
func IsTenantMember(p domain.Principal, targetTenantID string) bool {
	tenantID, ok := p.TenantID()
	return ok && targetTenantID != "" && tenantID == targetTenantID
}

// Request is what a route check sees.
type Request struct {
	Principal domain.Principal
	// TargetTenantID is the {t} path parameter, empty on routes without one.
	TargetTenantID string
	// ResolvedTenantID is the tenant the host or header resolved to, empty
	// for the main application.
	ResolvedTenantID string
}

// Check evaluates access for req. It returns nil, ErrUnauthenticated or ErrForbidden.
func Check(access Access, req Request) error {
	switch access {
	case AccessPublic:
		return nil
	case AccessAuthenticated:
		if req.Principal.IsAnonymous() {
			return ErrUnauthenticated
		}
		return nil
	case AccessSuperAdmin:
		if req.Principal.IsAnonymous() {
			return ErrUnauthenticated
		}
		if !IsSuperAdmin(req.Principal) {
			return ErrForbidden
		}
		return nil
	case AccessTenantMember:
		if req.Principal.IsAnonymous() {
			return ErrUnauthenticated
		}
		if !IsTenantMember(req.Principal, req.TargetTenantID) {
			return ErrForbidden
		}
		if req.ResolvedTenantID != "" && req.ResolvedTenantID != req.TargetTenantID {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}
