package domain

// PrincipalKind discriminates the Principal variants.
type PrincipalKind int

const (
	PrincipalAnonymous PrincipalKind = iota
	PrincipalSuperAdmin
	PrincipalTenantUser
	PrincipalUnassigned
)

func (k PrincipalKind) String() string {
	switch k {
	case PrincipalSuperAdmin:
		return "super_admin"
	case PrincipalTenantUser:
		return "tenant_user"
	case PrincipalUnassigned:
		return "unassigned"
	default:
		return "anonymous"
	}
}

// Principal is the acting identity of a request. Its fields are unexported so a
// principal can only be built through the constructors below, which keeps a
// super-admin from ever carrying a tenant binding.
type Principal struct {
	kind     PrincipalKind
	userID   string
	username string
	tenantID string
}

func Anonymous() Principal {
	return Principal{kind: PrincipalAnonymous}
}

func SuperAdmin(userID, username string) Principal {
	return Principal{kind: PrincipalSuperAdmin, userID: userID, username: username}
}

func TenantUser(userID, username, tenantID string) Principal {
	return Principal{kind: PrincipalTenantUser, userID: userID, username: username, tenantID: tenantID}
}

func Unassigned(userID, username string) Principal {
	return Principal{kind: PrincipalUnassigned, userID: userID, username: username}
}

// PrincipalFromUser maps a stored user. The super-admin flag wins over a tenant
// binding; the users table forbids that combination anyway.
func PrincipalFromUser(u *User) Principal {
	switch {
	case u == nil:
		return Anonymous()
	case u.IsSuperAdmin:
		return SuperAdmin(u.ID, u.Username)
	case u.TenantID != nil && *u.TenantID != "":
		return TenantUser(u.ID, u.Username, *u.TenantID)
	default:
		return Unassigned(u.ID, u.Username)
	}
}

func (p Principal) Kind() PrincipalKind { return p.kind }
func (p Principal) UserID() string      { return p.userID }
func (p Principal) Username() string    { return p.username }

func (p Principal) IsAnonymous() bool  { return p.kind == PrincipalAnonymous }
func (p Principal) IsSuperAdmin() bool { return p.kind == PrincipalSuperAdmin }

// TenantID returns the bound tenant, only for the TenantUser variant.
func (p Principal) TenantID() (string, bool) {
	if p.kind != PrincipalTenantUser {
		return "", false
	}
	return p.tenantID, true
}
