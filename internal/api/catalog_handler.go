package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
)

//go:generate mockery --name CatalogService --output ../mocks
type CatalogService interface {
	CreateCategory(ctx context.Context, tenantID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, tenantID, id string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	CreateProduct(ctx context.Context, tenantID, categoryID string, req dto.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context, tenantID string) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, tenantID, categoryID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, tenantID, id string, req dto.UpdateProductRequest) (*domain.Product, error)

	CreateVariant(ctx context.Context, tenantID, productID string, req dto.CreateVariantRequest) (*domain.PricedVariant, error)
	ListVariants(ctx context.Context, tenantID, productID string) ([]domain.PricedVariant, error)
	UpdateVariant(ctx context.Context, tenantID, productID, variantID string, req dto.UpdateVariantRequest) (*domain.PricedVariant, error)
}

// CatalogHandler serves the tenant-scoped catalog. The tenant always comes
// from the {t} path parameter the route was authorized against.
type CatalogHandler struct {
	*BaseHandler
	service CatalogService
}

func NewCatalogHandler(base *BaseHandler, service CatalogService) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, service: service}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Param body body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants/{t}/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	category, err := h.service.CreateCategory(h.RequestCtx(c), c.Param("t"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromCategory(category))
}

// ListCategories godoc
// @Summary List categories
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Success 200 {array} dto.CategoryResponse
// @Failure 403 {object} dto.Error
// @Router /tenants/{t}/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(h.RequestCtx(c), c.Param("t"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCategories(categories))
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Param c path string true "Category ID"
// @Param body body dto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenants/{t}/categories/{c} [patch]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	category, err := h.service.UpdateCategory(h.RequestCtx(c), c.Param("t"), c.Param("c"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCategory(category))
}

// CreateProduct godoc
// @Summary Create a product
// @Description Inline images are uploaded before the product is stored
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Param c path string true "Category ID"
// @Param body body dto.CreateProductRequest true "Product"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants/{t}/categories/{c}/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.service.CreateProduct(h.RequestCtx(c), c.Param("t"), c.Param("c"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromProduct(product))
}

// ListProductsByCategory godoc
// @Summary List products of a category
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Param c path string true "Category ID"
// @Success 200 {array} dto.ProductResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenants/{t}/categories/{c}/products [get]
func (h *CatalogHandler) ListProductsByCategory(c *gin.Context) {
	products, err := h.service.ListProductsByCategory(h.RequestCtx(c), c.Param("t"), c.Param("c"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProducts(products))
}

// ListProducts godoc
// @Summary List all products
// @Description Every product of the tenant regardless of category or active flag
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Success 200 {array} dto.ProductResponse
// @Failure 403 {object} dto.Error
// @Router /tenants/{t}/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(h.RequestCtx(c), c.Param("t"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProducts(products))
}

// UpdateProduct godoc
// @Summary Update a product
// @Description An inline image is uploaded and replaces the stored one; a hosted image is stored as given
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Param p path string true "Product ID"
// @Param body body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants/{t}/products/{p} [patch]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.service.UpdateProduct(h.RequestCtx(c), c.Param("t"), c.Param("p"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProduct(product))
}

// CreateVariant godoc
// @Summary Create a product variant
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Param p path string true "Product ID"
// @Param body body dto.CreateVariantRequest true "Variant"
// @Success 201 {object} dto.VariantResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenants/{t}/products/{p}/variants [post]
func (h *CatalogHandler) CreateVariant(c *gin.Context) {
	var req dto.CreateVariantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	variant, err := h.service.CreateVariant(h.RequestCtx(c), c.Param("t"), c.Param("p"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromVariant(variant))
}

// ListVariants godoc
// @Summary List product variants
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Param p path string true "Product ID"
// @Success 200 {array} dto.VariantResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenants/{t}/products/{p}/variants [get]
func (h *CatalogHandler) ListVariants(c *gin.Context) {
	variants, err := h.service.ListVariants(h.RequestCtx(c), c.Param("t"), c.Param("p"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromVariants(variants))
}

// UpdateVariant godoc
// @Summary Update a product variant
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param t path string true "Tenant ID"
// @Param p path string true "Product ID"
// @Param v path string true "Variant ID"
// @Param body body dto.UpdateVariantRequest true "Fields to change"
// @Success 200 {object} dto.VariantResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenants/{t}/products/{p}/variants/{v} [patch]
func (h *CatalogHandler) UpdateVariant(c *gin.Context) {
	var req dto.UpdateVariantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	variant, err := h.service.UpdateVariant(h.RequestCtx(c), c.Param("t"), c.Param("p"), c.Param("v"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromVariant(variant))
}
