package domain

import "strings"

// Role is free text stored on the user row. Authorization never reads it;
// privileges come from the Principal built out of IsSuperAdmin and TenantID.
type Role string

const (
	// RoleUser is assigned to every account unless a caller names another role
	RoleUser Role = "user"
)

// RoleOrDefault trims r and falls back to RoleUser when nothing is left.
func RoleOrDefault(r string) Role {
	r = strings.TrimSpace(r)
	if r == "" {
		return RoleUser
	}
	return Role(r)
}
