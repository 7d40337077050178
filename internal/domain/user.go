package domain

import (
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password;type:text;not null" json:"-"`
	IsSuperAdmin bool      `gorm:"not null;check:chk_users_super_admin_tenant,NOT is_super_admin OR tenant_id IS NULL" json:"is_super_admin"`
	TenantID     *string   `gorm:"type:uuid;index" json:"tenant_id"`
	Role         Role      `gorm:"type:text;not null" json:"role"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant       *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
