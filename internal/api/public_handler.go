package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
)

//go:generate mockery --name PublicService --output ../mocks
type PublicService interface {
	TenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
	Tenant(ctx context.Context, tenantID string) (*domain.Tenant, error)
	Categories(ctx context.Context, tenantID string) ([]domain.Category, error)
	Products(ctx context.Context, tenantID string) ([]domain.Product, error)
	Menu(ctx context.Context, tenantID string) (*domain.Tenant, []domain.MenuSection, error)
	Search(ctx context.Context, tenantID, query string, limit int) ([]domain.Product, error)
}

type PublicHandler struct {
	*BaseHandler
	service PublicService
}

func NewPublicHandler(base *BaseHandler, service PublicService) *PublicHandler {
	return &PublicHandler{BaseHandler: base, service: service}
}

// TenantBySubdomain godoc
// @Summary Look up a tenant by subdomain
// @Tags public
// @Produce json
// @Param s path string true "Subdomain"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} dto.Error
// @Router /public/tenant-by-subdomain/{s} [get]
func (h *PublicHandler) TenantBySubdomain(c *gin.Context) {
	tenant, err := h.service.TenantBySubdomain(h.RequestCtx(c), c.Param("s"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTenant(tenant))
}

// Categories godoc
// @Summary List a tenant's categories
// @Tags public
// @Produce json
// @Param t path string true "Tenant ID"
// @Success 200 {array} dto.CategoryResponse
// @Failure 404 {object} dto.Error
// @Router /public/categories/{t} [get]
func (h *PublicHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(h.RequestCtx(c), c.Param("t"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCategories(categories))
}

// Products godoc
// @Summary List a tenant's products
// @Description Returns active and inactive products; use the menu endpoint for the display view
// @Tags public
// @Produce json
// @Param t path string true "Tenant ID"
// @Success 200 {array} dto.ProductResponse
// @Failure 404 {object} dto.Error
// @Router /public/products/{t} [get]
func (h *PublicHandler) Products(c *gin.Context) {
	products, err := h.service.Products(h.RequestCtx(c), c.Param("t"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProducts(products))
}

// Menu godoc
// @Summary Render a tenant's menu
// @Description Active categories with their active products, both ordered; empty categories are left out
// @Tags public
// @Produce json
// @Param t path string true "Tenant ID"
// @Success 200 {object} dto.MenuResponse
// @Failure 404 {object} dto.Error
// @Router /public/menu/{t} [get]
func (h *PublicHandler) Menu(c *gin.Context) {
	tenant, sections, err := h.service.Menu(h.RequestCtx(c), c.Param("t"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromMenu(tenant, sections))
}

// Search godoc
// @Summary Search a tenant's products
// @Tags public
// @Produce json
// @Param t path string true "Tenant ID"
// @Param q query string false "Search text"
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {array} dto.ProductResponse
// @Failure 404 {object} dto.Error
// @Router /public/products/{t}/search [get]
func (h *PublicHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	products, err := h.service.Search(h.RequestCtx(c), c.Param("t"), c.Query("q"), limit)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProducts(products))
}
