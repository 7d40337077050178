package domain

import (
	"regexp"
	"strings"
	"time"
)

// DefaultTheme is applied whenever a tenant config carries no theme.
const DefaultTheme = "light"

var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// TenantConfig is the public presentation settings of a tenant menu.
type TenantConfig struct {
	Theme        string  `json:"theme"`
	Logo         *string `json:"logo"`
	ContactEmail *string `json:"contact_email"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
}

// DefaultTenantConfig returns a fully populated config with every optional field null.
func DefaultTenantConfig() TenantConfig {
	return TenantConfig{Theme: DefaultTheme}
}

// Normalized backfills the theme. Nullable fields are kept exactly as given, so
// a config built from a partial payload never inherits stale values.
func (c TenantConfig) Normalized() TenantConfig {
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = DefaultTheme
	}
	return c
}

type Tenant struct {
	ID        string       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Subdomain string       `gorm:"type:text;not null;uniqueIndex" json:"subdomain"`
	Active    bool         `gorm:"not null" json:"active"`
	Config    TenantConfig `gorm:"type:jsonb;serializer:json;not null" json:"config"`
	CreatedAt time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// NormalizeSubdomain lower-cases and trims a subdomain so stored and looked-up
// values compare equal regardless of the case a client used.
func NormalizeSubdomain(subdomain string) string {
	return strings.ToLower(strings.TrimSpace(subdomain))
}

// IsValidSubdomain reports whether s is a single DNS label in normalized form.
func IsValidSubdomain(s string) bool {
	return subdomainPattern.MatchString(s)
}
