package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (*domain.Tenant, error)
	FindByID(ctx context.Context, id string) (*domain.Tenant, error)
	ListAll(ctx context.Context) ([]domain.Tenant, error)
	UpdateConfig(ctx context.Context, id string, req dto.TenantConfigRequest) (*domain.Tenant, error)
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
	users   UserService
}

func NewTenantHandler(base *BaseHandler, service TenantService, users UserService) *TenantHandler {
	return &TenantHandler{BaseHandler: base, service: service, users: users}
}

// CreateTenant godoc
// @Summary Create a new tenant
// @Description Provision a tenant; omitted config fields are backfilled with defaults
// @Tags tenants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateTenantRequest true "Tenant object"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tenant, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromTenant(tenant))
}

// ListTenants godoc
// @Summary List all tenants
// @Description Get every tenant, active or not
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TenantResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.service.ListAll(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTenants(tenants))
}

// CreateTenantUser godoc
// @Summary Create a tenant user
// @Description Create a user bound to the tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Param body body dto.CreateUserRequest true "User object"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /tenants/{t}/users [post]
func (h *TenantHandler) CreateTenantUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.users.CreateTenantUser(h.RequestCtx(c), c.Param("t"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(user))
}

// GetSettings godoc
// @Summary Get tenant settings
// @Description Return the full tenant record
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenants/{t}/settings [get]
func (h *TenantHandler) GetSettings(c *gin.Context) {
	tenant, err := h.service.FindByID(h.RequestCtx(c), c.Param("t"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTenant(tenant))
}

// UpdateSettings godoc
// @Summary Replace tenant settings
// @Description Replace the whole config; omitted fields become null and an omitted theme becomes "light"
// @Tags tenants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Param body body dto.TenantConfigRequest true "Config"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenants/{t}/settings [patch]
func (h *TenantHandler) UpdateSettings(c *gin.Context) {
	var req dto.TenantConfigRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tenant, err := h.service.UpdateConfig(h.RequestCtx(c), c.Param("t"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTenant(tenant))
}
