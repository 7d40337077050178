package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/digital-menu-api/internal/domain"
)

func TestCheck(t *testing.T) {
	anon := domain.Anonymous()
	admin := domain.SuperAdmin("u1", "root")
	member := domain.TenantUser("u2", "barista", "t1")
	outsider := domain.TenantUser("u3", "spy", "t2")
	unassigned := domain.Unassigned("u4", "alice")

	tests := []struct {
		name   string
		access Access
		req    Request
		want   error
	}{
		{"public anonymous", AccessPublic, Request{Principal: anon}, nil},
		{"authenticated anonymous", AccessAuthenticated, Request{Principal: anon}, ErrUnauthenticated},
		{"authenticated unassigned", AccessAuthenticated, Request{Principal: unassigned}, nil},
		{"super admin anonymous", AccessSuperAdmin, Request{Principal: anon}, ErrUnauthenticated},
		{"super admin as member", AccessSuperAdmin, Request{Principal: member}, ErrForbidden},
		{"super admin", AccessSuperAdmin, Request{Principal: admin}, nil},
		{"member anonymous", AccessTenantMember, Request{Principal: anon, TargetTenantID: "t1"}, ErrUnauthenticated},
		{"member own tenant", AccessTenantMember, Request{Principal: member, TargetTenantID: "t1"}, nil},
		{"member other tenant", AccessTenantMember, Request{Principal: outsider, TargetTenantID: "t1"}, ErrForbidden},
		{"super admin is no member", AccessTenantMember, Request{Principal: admin, TargetTenantID: "t1"}, ErrForbidden},
		{"unassigned is no member", AccessTenantMember, Request{Principal: unassigned, TargetTenantID: "t1"}, ErrForbidden},
		{"member without target", AccessTenantMember, Request{Principal: member}, ErrForbidden},
		{"member resolved elsewhere", AccessTenantMember, Request{Principal: member, TargetTenantID: "t1", ResolvedTenantID: "t2"}, ErrForbidden},
		{"member resolved here", AccessTenantMember, Request{Principal: member, TargetTenantID: "t1", ResolvedTenantID: "t1"}, nil},
		{"unspecified fails closed", AccessUnspecified, Request{Principal: admin}, ErrForbidden},
		{"unknown fails closed", Access(99), Request{Principal: admin}, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.access, tt.req))
		})
	}
}

func TestAccessValid(t *testing.T) {
	assert.False(t, AccessUnspecified.Valid())
	assert.True(t, AccessPublic.Valid())
	assert.True(t, AccessTenantMember.Valid())
	assert.False(t, Access(42).Valid())
	assert.Equal(t, "tenant_member", AccessTenantMember.String())
}
