package utils

import (
	"context"

	"github.com/kingrain94/digital-menu-api/internal/domain"
)

type ContextKey string

const (
	PrincipalKey     ContextKey = "principal"
	SessionIDKey     ContextKey = "session_id"
	TenantContextKey ContextKey = "tenant_context"
	RequestIDKey     ContextKey = "request_id"
)

// GetPrincipalFromContext returns the acting principal, or Anonymous when the
// request carried no valid credentials.
func GetPrincipalFromContext(ctx context.Context) domain.Principal {
	if p, ok := ctx.Value(PrincipalKey).(domain.Principal); ok {
		return p
	}
	return domain.Anonymous()
}

func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(SessionIDKey).(string)
	return sid, ok && sid != ""
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
