package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/authz"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/internal/utils"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

// BaseHandler carries what every handler needs to turn a request into a
// context and an error into a response.
type BaseHandler struct {
	production bool
	logger     *logger.Logger
}

func NewBaseHandler(production bool, logger *logger.Logger) *BaseHandler {
	return &BaseHandler{production: production, logger: logger}
}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// Principal returns the acting principal set by the auth middleware.
func (h *BaseHandler) Principal(c *gin.Context) domain.Principal {
	return utils.GetPrincipalFromContext(h.RequestCtx(c))
}

// BindJSON decodes the body into req and answers 400 on failure.
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[jsonFieldName(fe)] = fe.Tag()
			}
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid request body", Fields: fields})
			return false
		}
		resp := dto.Error{Error: "Malformed request body"}
		if !h.production {
			resp.Detail = err.Error()
		}
		c.JSON(http.StatusBadRequest, resp)
		return false
	}
	return true
}

// RespondError maps service, authorization and storage errors onto HTTP
// statuses. Internal error text is only exposed outside production.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Validation failed", Fields: verr.Fields})

	case errors.Is(err, authz.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})

	case errors.Is(err, authz.ErrForbidden),
		errors.Is(err, service.ErrRegistrationDisabled):
		c.JSON(http.StatusForbidden, dto.Error{Error: err.Error()})

	case errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrVariantNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})

	case errors.Is(err, service.ErrSubdomainTaken),
		errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})

	case errors.Is(err, service.ErrImageUpload):
		h.internalError(c, "Image upload failed", err)

	default:
		h.internalError(c, "Internal server error", err)
	}
}

func (h *BaseHandler) internalError(c *gin.Context, message string, err error) {
	if h.logger != nil {
		h.logger.Error(message, err)
	}
	resp := dto.Error{Error: message}
	if !h.production {
		resp.Detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// jsonFieldName converts the struct field the validator reports into the
// snake_case name used on the wire.
func jsonFieldName(fe validator.FieldError) string {
	return toSnake(fe.Field())
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (s[i-1] < 'A' || s[i-1] > 'Z') {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
