package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/mocks"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.CatalogService
	handler     *CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(mocks.CatalogService)
	s.handler = NewCatalogHandler(NewBaseHandler(true, logger.NewNop()), s.mockService)
}

func TestCatalogHandler(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestCreateCategory_PassesPathTenant() {
	req := dto.CreateCategoryRequest{Name: "Drinks"}
	s.mockService.On("CreateCategory", mock.Anything, "t1", req).
		Return(&domain.Category{ID: "c1", TenantID: "t1", Name: "Drinks", Active: true}, nil)

	c, w := newJSONContext(http.MethodPost, "/tenants/t1/categories", req)
	c.Params = gin.Params{{Key: "t", Value: "t1"}}
	s.handler.CreateCategory(c)

	s.Equal(http.StatusCreated, w.Code)
	var response dto.CategoryResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("t1", response.TenantID)
	s.True(response.Active)
}

func (s *CatalogHandlerTestSuite) TestCreateCategory_RejectsUnknownImageKind() {
	body := map[string]any{
		"name":  "Drinks",
		"image": map[string]any{"kind": "ftp", "url": "ftp://example.com/a.png"},
	}

	c, w := newJSONContext(http.MethodPost, "/tenants/t1/categories", body)
	c.Params = gin.Params{{Key: "t", Value: "t1"}}
	s.handler.CreateCategory(c)

	s.Equal(http.StatusBadRequest, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("oneof", response.Fields["kind"])
	s.mockService.AssertNotCalled(s.T(), "CreateCategory", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CatalogHandlerTestSuite) TestUpdateCategory_NotFound() {
	name := "Food"
	req := dto.UpdateCategoryRequest{Name: &name}
	s.mockService.On("UpdateCategory", mock.Anything, "t1", "other-tenant-category", req).
		Return(nil, service.ErrCategoryNotFound)

	c, w := newJSONContext(http.MethodPatch, "/tenants/t1/categories/other-tenant-category", req)
	c.Params = gin.Params{{Key: "t", Value: "t1"}, {Key: "c", Value: "other-tenant-category"}}
	s.handler.UpdateCategory(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *CatalogHandlerTestSuite) TestCreateProduct_InvalidPrice() {
	req := dto.CreateProductRequest{Name: "Cola", BasePrice: "1.999"}
	s.mockService.On("CreateProduct", mock.Anything, "t1", "c1", req).
		Return(nil, service.NewValidationError("base_price", domain.ErrPricePrecision.Error()))

	c, w := newJSONContext(http.MethodPost, "/tenants/t1/categories/c1/products", req)
	c.Params = gin.Params{{Key: "t", Value: "t1"}, {Key: "c", Value: "c1"}}
	s.handler.CreateProduct(c)

	s.Equal(http.StatusBadRequest, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("Validation failed", response.Error)
	s.Contains(response.Fields, "base_price")
}

func (s *CatalogHandlerTestSuite) TestCreateProduct_ImageUploadFailureHidesDetailInProduction() {
	req := dto.CreateProductRequest{
		Name:      "Cola",
		BasePrice: "2.00",
		Image:     &dto.ImagePayload{Kind: "inline", Data: []byte{0x89, 'P', 'N', 'G'}},
	}
	s.mockService.On("CreateProduct", mock.Anything, "t1", "c1", req).Return(nil, service.ErrImageUpload)

	c, w := newJSONContext(http.MethodPost, "/tenants/t1/categories/c1/products", req)
	c.Params = gin.Params{{Key: "t", Value: "t1"}, {Key: "c", Value: "c1"}}
	s.handler.CreateProduct(c)

	s.Equal(http.StatusInternalServerError, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("Image upload failed", response.Error)
	s.Empty(response.Detail)
}

func (s *CatalogHandlerTestSuite) TestListProductsByCategory() {
	s.mockService.On("ListProductsByCategory", mock.Anything, "t1", "c1").Return([]domain.Product{
		{ID: "p1", TenantID: "t1", CategoryID: "c1", Name: "Cola", BasePrice: "2.00"},
	}, nil)

	c, w := newJSONContext(http.MethodGet, "/tenants/t1/categories/c1/products", nil)
	c.Params = gin.Params{{Key: "t", Value: "t1"}, {Key: "c", Value: "c1"}}
	s.handler.ListProductsByCategory(c)

	s.Equal(http.StatusOK, w.Code)
	var response []dto.ProductResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 1)
	s.Equal("2.00", response[0].BasePrice)
}

func (s *CatalogHandlerTestSuite) TestListProducts_EmptyIsArray() {
	s.mockService.On("ListProducts", mock.Anything, "t1").Return([]domain.Product{}, nil)

	c, w := newJSONContext(http.MethodGet, "/tenants/t1/products", nil)
	c.Params = gin.Params{{Key: "t", Value: "t1"}}
	s.handler.ListProducts(c)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *CatalogHandlerTestSuite) TestCreateVariant_ReturnsFinalPrice() {
	req := dto.CreateVariantRequest{Name: "Large", PriceModifier: "0.50"}
	s.mockService.On("CreateVariant", mock.Anything, "t1", "p1", req).Return(&domain.PricedVariant{
		ProductVariant: domain.ProductVariant{ID: "v1", TenantID: "t1", ProductID: "p1", Name: "Large", PriceModifier: "0.50"},
		FinalPrice:     "2.50",
	}, nil)

	c, w := newJSONContext(http.MethodPost, "/tenants/t1/products/p1/variants", req)
	c.Params = gin.Params{{Key: "t", Value: "t1"}, {Key: "p", Value: "p1"}}
	s.handler.CreateVariant(c)

	s.Equal(http.StatusCreated, w.Code)
	var response dto.VariantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("2.50", response.FinalPrice)
}

func (s *CatalogHandlerTestSuite) TestUpdateVariant_UsesAllPathParams() {
	active := false
	req := dto.UpdateVariantRequest{Active: &active}
	s.mockService.On("UpdateVariant", mock.Anything, "t1", "p1", "v1", req).Return(nil, service.ErrVariantNotFound)

	c, w := newJSONContext(http.MethodPatch, "/tenants/t1/products/p1/variants/v1", req)
	c.Params = gin.Params{{Key: "t", Value: "t1"}, {Key: "p", Value: "p1"}, {Key: "v", Value: "v1"}}
	s.handler.UpdateVariant(c)

	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}
