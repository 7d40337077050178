package tenancy

import (
	"context"

	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/utils"
)

// Context is the tenant a request resolved to. It is built once by the
// resolver and only ever read afterwards; all fields are unexported and the
// config accessor hands out a copy.
type Context struct {
	tenantID  string
	subdomain string
	config    domain.TenantConfig
}

func NewContext(t *domain.Tenant) Context {
	return Context{
		tenantID:  t.ID,
		subdomain: t.Subdomain,
		config:    copyConfig(t.Config),
	}
}

func (c Context) TenantID() string  { return c.tenantID }
func (c Context) Subdomain() string { return c.subdomain }

func (c Context) Config() domain.TenantConfig { return copyConfig(c.config) }

// WithContext attaches tc to ctx.
func WithContext(ctx context.Context, tc Context) context.Context {
	return context.WithValue(ctx, utils.TenantContextKey, tc)
}

// FromContext reports false for tenant-independent requests.
func FromContext(ctx context.Context) (Context, bool) {
	tc, ok := ctx.Value(utils.TenantContextKey).(Context)
	return tc, ok
}

func copyConfig(c domain.TenantConfig) domain.TenantConfig {
	return domain.TenantConfig{
		Theme:        c.Theme,
		Logo:         copyString(c.Logo),
		ContactEmail: copyString(c.ContactEmail),
		Address:      copyString(c.Address),
		Phone:        copyString(c.Phone),
	}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
