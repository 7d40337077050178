package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

var suspiciousPatterns = compilePatterns(
	// SQL injection
	`(?i)(\bUNION\b.*\bSELECT\b)`,
	`(?i)(\bINSERT\b.*\bINTO\b)`,
	`(?i)(\bDELETE\b.*\bFROM\b)`,
	`(?i)(\bDROP\b.*\bTABLE\b)`,
	`(?i)(\bALTER\b.*\bTABLE\b)`,
	`/\*.*\*/`,
	// XSS
	`(?i)<script.*?>`,
	`(?i)javascript:`,
	`(?i)onerror=`,
	`(?i)<iframe.*?>`,
	// Path traversal
	`\.\./`,
	`\.\.\\`,
	`(?i)%2e%2e%2f`,
	`(?i)%2e%2e%5c`,
)

type ValidationMiddleware struct {
	logger *logger.Logger
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger: logger,
	}
}

// SanitizeInput strips control characters from query parameters.
func (m *ValidationMiddleware) SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		changed := false
		for key, values := range query {
			for i, value := range values {
				sanitized := sanitizeString(value)
				if sanitized != value {
					m.logger.Info("Sanitized query parameter", zap.String("key", key))
					query[key][i] = sanitized
					changed = true
				}
			}
		}
		if changed {
			c.Request.URL.RawQuery = query.Encode()
		}

		c.Next()
	}
}

// ValidateContentType ensures write requests carry an allowed content type.
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		contentType := strings.TrimSpace(strings.Split(c.GetHeader("Content-Type"), ";")[0])
		for _, allowed := range allowedTypes {
			if strings.EqualFold(contentType, allowed) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, dto.Error{
			Error: "Unsupported Content-Type, expected " + strings.Join(allowedTypes, " or "),
		})
	}
}

// ValidateRequestSize limits the request body size.
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.Error{Error: "Request body too large"})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// BlockSuspiciousPatterns rejects injection and traversal attempts in the
// path and query string.
func (m *ValidationMiddleware) BlockSuspiciousPatterns() gin.HandlerFunc {
	return func(c *gin.Context) {
		if containsSuspiciousPattern(c.Request.URL.Path) {
			m.logger.Warn("Blocked suspicious request",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Error: "Invalid request"})
			return
		}

		for key, values := range c.Request.URL.Query() {
			for _, value := range values {
				if containsSuspiciousPattern(value) {
					m.logger.Warn("Blocked suspicious query parameter",
						zap.String("key", key),
						zap.String("ip", c.ClientIP()))
					c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Error: "Invalid request"})
					return
				}
			}
		}

		c.Next()
	}
}

func compilePatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// sanitizeString drops control characters except newline, carriage return and tab.
func sanitizeString(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= 32 || r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsSuspiciousPattern(input string) bool {
	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}
