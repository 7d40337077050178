package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/authz"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/metrics"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/internal/tenancy"
	"github.com/kingrain94/digital-menu-api/internal/utils"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

// TokenAuthenticator turns a bearer token into a principal and session id.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Principal, string, error)
}

type AuthMiddleware struct {
	auth    TokenAuthenticator
	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewAuthMiddleware(auth TokenAuthenticator, metrics *metrics.Metrics, logger *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		auth:    auth,
		metrics: metrics,
		logger:  logger,
	}
}

// Authenticate attaches the principal behind the bearer token. It never
// rejects: a missing or bad token leaves the request anonymous and Enforce
// decides whether that is acceptable.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Set(string(utils.PrincipalKey), domain.Anonymous())
			c.Next()
			return
		}

		principal, sid, err := m.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidToken) {
				m.logger.Error("Failed to authenticate request", err)
			}
			c.Set(string(utils.PrincipalKey), domain.Anonymous())
			c.Next()
			return
		}

		c.Set(string(utils.PrincipalKey), principal)
		c.Set(string(utils.SessionIDKey), sid)
		c.Next()
	}
}

// Enforce is the single authorization point every route passes through
// before its handler runs.
func (m *AuthMiddleware) Enforce(access authz.Access) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := authz.Request{
			Principal:      principalOf(c),
			TargetTenantID: c.Param("t"),
		}
		if tc, ok := tenantOf(c); ok {
			req.ResolvedTenantID = tc.TenantID()
		}

		err := authz.Check(access, req)
		switch {
		case err == nil:
			m.record(access, "allow")
			c.Next()
		case errors.Is(err, authz.ErrUnauthenticated):
			m.record(access, "unauthenticated")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Authentication required"})
		default:
			m.record(access, "forbidden")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error{Error: "Insufficient permissions"})
		}
	}
}

func (m *AuthMiddleware) record(access authz.Access, decision string) {
	if m.metrics == nil {
		return
	}
	m.metrics.AuthzDecisions.WithLabelValues(access.String(), decision).Inc()
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func principalOf(c *gin.Context) domain.Principal {
	if v, ok := c.Get(string(utils.PrincipalKey)); ok {
		if p, ok := v.(domain.Principal); ok {
			return p
		}
	}
	return domain.Anonymous()
}

func tenantOf(c *gin.Context) (tenancy.Context, bool) {
	v, ok := c.Get(string(utils.TenantContextKey))
	if !ok {
		return tenancy.Context{}, false
	}
	tc, ok := v.(tenancy.Context)
	return tc, ok
}
