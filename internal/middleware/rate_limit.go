package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/digital-menu-api/internal/authz"
	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

// RateLimitMiddleware keeps fixed one-minute windows in Redis. A nil client
// disables limiting, which is how the in-memory deployment runs.
type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit limits requests per tenant. The tenant is the {t} path
// parameter, or the resolved tenant for routes without one; requests with
// neither are not limited here. Public routes count against their own
// bucket so menu traffic cannot starve the tenant's admin routes.
func (m *RateLimitMiddleware) TenantRateLimit(access authz.Access) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := tenantBucket(c, access)
		if key == "" {
			c.Next()
			return
		}

		limit := m.config.DefaultRateLimit
		if limit <= 0 {
			limit = 1000
		}
		m.limit(c, key, limit, "Rate limit exceeded")
	}
}

func tenantBucket(c *gin.Context, access authz.Access) string {
	tenantID := c.Param("t")
	if tenantID == "" {
		if tc, ok := tenantOf(c); ok {
			tenantID = tc.TenantID()
		}
	}
	if tenantID == "" {
		return ""
	}
	if access == authz.AccessPublic {
		return fmt.Sprintf("rate_limit:tenant_public:%s", tenantID)
	}
	return fmt.Sprintf("rate_limit:tenant:%s", tenantID)
}

// GlobalRateLimit limits requests per client IP.
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		m.limit(c, key, limit, "Global rate limit exceeded")
	}
}

func (m *RateLimitMiddleware) limit(c *gin.Context, key string, limit int, message string) {
	if m.redis == nil || limit <= 0 {
		c.Next()
		return
	}
	ctx := c.Request.Context()

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		// Fail open: Redis trouble must not take the API down.
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	reset := strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10)
	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", reset)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": message,
			"limit": limit,
		})
		return
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", reset)

	c.Next()
}
