package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/metrics"
	"github.com/kingrain94/digital-menu-api/internal/tenancy"
	"github.com/kingrain94/digital-menu-api/internal/utils"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

type TenantMiddleware struct {
	resolver *tenancy.Resolver
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

func NewTenantMiddleware(resolver *tenancy.Resolver, metrics *metrics.Metrics, logger *logger.Logger) *TenantMiddleware {
	return &TenantMiddleware{
		resolver: resolver,
		metrics:  metrics,
		logger:   logger,
	}
}

// Resolve attaches the tenant the request host (or, outside production, the
// override header) points to. Requests for the main application continue
// without a tenant.
func (m *TenantMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		host := tenancy.Hostname(c.Request.Host)
		res, err := m.resolver.Resolve(c.Request.Context(), host, c.GetHeader(tenancy.HeaderName))

		var notFound *tenancy.NotFoundError
		switch {
		case errors.As(err, &notFound):
			m.record(res.Source, "not_found")
			c.AbortWithStatusJSON(http.StatusNotFound, dto.Error{
				Error:     "Tenant not found",
				Subdomain: notFound.Subdomain,
			})
			return
		case err != nil:
			m.record(res.Source, "error")
			m.logger.Error("Failed to resolve tenant", err, zap.String("host", host))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error{Error: "Failed to resolve tenant"})
			return
		case res.Tenant == nil:
			m.record(res.Source, "main_app")
		default:
			m.record(res.Source, "resolved")
			c.Set(string(utils.TenantContextKey), *res.Tenant)
		}

		c.Next()
	}
}

func (m *TenantMiddleware) record(source tenancy.Source, outcome string) {
	if m.metrics == nil {
		return
	}
	m.metrics.TenantResolutions.WithLabelValues(string(source), outcome).Inc()
}
